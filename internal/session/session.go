package session

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/lazygod321/rustplusplus/internal/entities"
	"github.com/lazygod321/rustplusplus/internal/leader"
)

// Promoter asks the game server to promote a member, acting as playerID.
type Promoter interface {
	PromoteToLeader(ctx context.Context, serverID string, playerID, memberID entities.MemberID) error
}

// Session is one controlled player's connection to a game server.
type Session struct {
	registry *Registry
	serverID string
	playerID entities.MemberID
	team     *Team

	mu          sync.RWMutex
	operational bool
	flags       map[string]bool
}

var (
	_ leader.SessionAccessor = (*Session)(nil)
	_ leader.RemoteDelegate  = (*Session)(nil)
)

// ServerID returns the server binding of the session.
func (s *Session) ServerID() string { return s.serverID }

// Team returns the team observed by the session.
func (s *Session) Team() *Team { return s.team }

// IsOperational reports whether the session is the active one for its server.
func (s *Session) IsOperational() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.operational
}

// FeatureFlag returns a named setting; unknown flags are false.
func (s *Session) FeatureFlag(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[name]
}

// ControlledPlayerID returns the player this session acts as.
func (s *Session) ControlledPlayerID() entities.MemberID { return s.playerID }

// CurrentLeaderID returns the leader of the observed team.
func (s *Session) CurrentLeaderID() entities.MemberID { return s.team.LeaderID() }

// DelegateSession returns the session of the current leader when it is a
// different session of the same server.
func (s *Session) DelegateSession() leader.RemoteDelegate {
	d := s.registry.session(s.serverID, s.team.LeaderID())
	if d == nil || d == s {
		return nil
	}
	return d
}

// PromoteToLeader hands leadership to id using this session's authority.
func (s *Session) PromoteToLeader(ctx context.Context, id entities.MemberID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.team.LeaderID() != s.playerID {
		return fmt.Errorf("%w: %s does not lead the team", entities.ErrSessionUnavailable, s.playerID)
	}
	if !s.team.has(id) {
		return fmt.Errorf("%w: %s", entities.ErrMemberNotInTeam, id)
	}
	if p := s.registry.promoter; p != nil {
		if err := p.PromoteToLeader(ctx, s.serverID, s.playerID, id); err != nil {
			return err
		}
	}
	s.team.SetLeader(id)
	return nil
}

func (s *Session) update(snap entities.SessionSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.operational = snap.Operational
	s.flags = maps.Clone(snap.Flags)
}

func (s *Session) setOperational(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.operational = v
}
