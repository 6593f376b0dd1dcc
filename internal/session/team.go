package session

import (
	"slices"
	"sync"

	"github.com/lazygod321/rustplusplus/internal/entities"
)

// Team is the roster shared by every session bound to one server.
type Team struct {
	mu       sync.RWMutex
	members  []entities.Member
	leaderID entities.MemberID
}

// Members returns a copy of the roster in server order.
func (t *Team) Members() []entities.Member {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.members)
}

// LeaderID returns the current leader id, empty when there is no team.
func (t *Team) LeaderID() entities.MemberID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.leaderID
}

// SetLeader moves leadership to id. Ids outside the roster are ignored.
func (t *Team) SetLeader(id entities.MemberID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !slices.ContainsFunc(t.members, func(m entities.Member) bool { return m.ID == id }) {
		return
	}
	t.leaderID = id
}

// Snapshot returns a copy of the team state.
func (t *Team) Snapshot() entities.Team {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return entities.Team{Members: slices.Clone(t.members), LeaderID: t.leaderID}
}

func (t *Team) replace(team entities.Team) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.members = slices.Clone(team.Members)
	t.leaderID = team.LeaderID
}

func (t *Team) has(id entities.MemberID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.ContainsFunc(t.members, func(m entities.Member) bool { return m.ID == id })
}
