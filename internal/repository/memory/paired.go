// Package memory implements the paired-members repository in process memory.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/lazygod321/rustplusplus/internal/entities"

	"go.uber.org/zap"
)

// Memory keeps paired members per server in insertion order.
type Memory struct {
	log *zap.SugaredLogger
	now func() time.Time

	mu     sync.RWMutex
	paired map[string][]entities.PairedMember
}

// New creates an empty in-memory repository.
func New(log *zap.SugaredLogger) *Memory {
	return &Memory{
		log:    log.Named("repo.memory"),
		now:    time.Now,
		paired: make(map[string][]entities.PairedMember),
	}
}

// OnStart is a no-op.
func (m *Memory) OnStart(_ context.Context) error { return nil }

// OnStop is a no-op.
func (m *Memory) OnStop(_ context.Context) error { return nil }

// PairMember adds a member to the paired index of a server.
func (m *Memory) PairMember(ctx context.Context, pm entities.PairedMember) (*entities.PairedMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.paired[pm.ServerID]
	if slices.ContainsFunc(list, func(e entities.PairedMember) bool { return e.MemberID == pm.MemberID }) {
		return nil, entities.ErrAlreadyPaired
	}
	pm.PairedAt = m.now().UTC()
	m.paired[pm.ServerID] = append(list, pm)

	m.log.Infow("member paired", "server_id", pm.ServerID, "member_id", pm.MemberID)
	return &pm, nil
}

// UnpairMember removes a member from the paired index of a server.
func (m *Memory) UnpairMember(ctx context.Context, serverID string, memberID entities.MemberID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.paired[serverID]
	idx := slices.IndexFunc(list, func(e entities.PairedMember) bool { return e.MemberID == memberID })
	if idx < 0 {
		return entities.ErrNotPaired
	}
	m.paired[serverID] = slices.Delete(list, idx, idx+1)

	m.log.Infow("member unpaired", "server_id", serverID, "member_id", memberID)
	return nil
}

// PairedMembers lists the paired index of a server in pairing order.
func (m *Memory) PairedMembers(ctx context.Context, serverID string) ([]entities.PairedMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.paired[serverID]), nil
}
