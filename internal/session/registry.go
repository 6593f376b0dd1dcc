// Package session keeps the live game sessions and the team each server binding observes.
package session

import (
	"fmt"
	"sync"

	"github.com/lazygod321/rustplusplus/internal/entities"

	"go.uber.org/zap"
)

type binding struct {
	title    string
	team     *Team
	sessions map[entities.MemberID]*Session
}

// Registry owns sessions grouped by server binding.
// At most one session per binding is operational.
type Registry struct {
	log      *zap.SugaredLogger
	promoter Promoter

	mu      sync.RWMutex
	servers map[string]*binding
}

// NewRegistry constructs an empty registry. promoter may be nil, in which case
// promotions are applied to the shared team state directly.
func NewRegistry(log *zap.SugaredLogger, promoter Promoter) *Registry {
	return &Registry{
		log:      log.Named("session"),
		promoter: promoter,
		servers:  make(map[string]*binding),
	}
}

// Apply stores a full session snapshot.
func (r *Registry) Apply(snap entities.SessionSnapshot) error {
	if snap.ServerID == "" || snap.ControlledPlayerID == "" {
		return fmt.Errorf("%w: server_id and player_id are required", entities.ErrInvalidArgument)
	}
	if err := snap.Team.Validate(); err != nil {
		return fmt.Errorf("%w: leader %s: %w", entities.ErrInvalidArgument, snap.Team.LeaderID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.servers[snap.ServerID]
	if !ok {
		b = &binding{team: &Team{}, sessions: make(map[entities.MemberID]*Session)}
		r.servers[snap.ServerID] = b
	}
	if snap.Title != "" {
		b.title = snap.Title
	}
	b.team.replace(snap.Team)

	s, ok := b.sessions[snap.ControlledPlayerID]
	if !ok {
		s = &Session{registry: r, serverID: snap.ServerID, playerID: snap.ControlledPlayerID, team: b.team}
		b.sessions[snap.ControlledPlayerID] = s
	}
	s.update(snap)

	if snap.Operational {
		for id, other := range b.sessions {
			if id != snap.ControlledPlayerID {
				other.setOperational(false)
			}
		}
	}

	r.log.Infow("session applied",
		"server_id", snap.ServerID,
		"player_id", snap.ControlledPlayerID,
		"operational", snap.Operational,
		"members", len(snap.Team.Members),
	)
	return nil
}

// Remove drops a session. The binding goes away with its last session.
func (r *Registry) Remove(serverID string, playerID entities.MemberID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.servers[serverID]
	if !ok {
		return entities.ErrSessionNotFound
	}
	if _, ok := b.sessions[playerID]; !ok {
		return entities.ErrSessionNotFound
	}
	delete(b.sessions, playerID)
	if len(b.sessions) == 0 {
		delete(r.servers, serverID)
	}
	r.log.Infow("session removed", "server_id", serverID, "player_id", playerID)
	return nil
}

// Operational returns the active session of a server, or nil.
func (r *Registry) Operational(serverID string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.servers[serverID]
	if !ok {
		return nil
	}
	for _, s := range b.sessions {
		if s.IsOperational() {
			return s
		}
	}
	return nil
}

// Team returns the team of a server binding and the server title.
func (r *Registry) Team(serverID string) (entities.Team, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.servers[serverID]
	if !ok {
		return entities.Team{}, "", entities.ErrSessionNotFound
	}
	return b.team.Snapshot(), b.title, nil
}

// Title returns the display title of a server binding.
func (r *Registry) Title(serverID string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if b, ok := r.servers[serverID]; ok {
		return b.title
	}
	return ""
}

func (r *Registry) session(serverID string, playerID entities.MemberID) *Session {
	if playerID == "" {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if b, ok := r.servers[serverID]; ok {
		return b.sessions[playerID]
	}
	return nil
}
