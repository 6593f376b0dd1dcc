package leader

import (
	"context"

	"github.com/lazygod321/rustplusplus/internal/entities"
)

// SessionAccessor exposes the state of the session a command runs against.
type SessionAccessor interface {
	IsOperational() bool
	FeatureFlag(name string) bool
	CurrentLeaderID() entities.MemberID
	ControlledPlayerID() entities.MemberID
	// DelegateSession returns the session acting as leader, or nil.
	DelegateSession() RemoteDelegate
}

// RosterAccessor exposes the team roster and the per-server paired index.
type RosterAccessor interface {
	Members() []entities.Member
	PairedMemberIDs(serverID string) entities.PairedSet
}

// LocalMutator changes the team leader in place.
type LocalMutator interface {
	SetLeader(id entities.MemberID)
}

// RemoteDelegate promotes a member through the session holding leadership.
type RemoteDelegate interface {
	PromoteToLeader(ctx context.Context, id entities.MemberID) error
}
