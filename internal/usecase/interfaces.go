package usecase

import (
	"context"

	"github.com/lazygod321/rustplusplus/internal/entities"
)

// LeaderUsecaseInterface abstracts the leader command.
type LeaderUsecaseInterface interface {
	TransferLeadership(ctx context.Context, serverID, input string) (entities.Outcome, error)
}

// PairingUsecaseInterface abstracts paired-members index operations.
type PairingUsecaseInterface interface {
	PairMember(ctx context.Context, pm entities.PairedMember) (*entities.PairedMember, error)
	UnpairMember(ctx context.Context, serverID string, memberID entities.MemberID) error
	PairedMembers(ctx context.Context, serverID string) ([]entities.PairedMember, error)
}

// SessionUsecaseInterface abstracts session snapshot operations.
type SessionUsecaseInterface interface {
	ApplySession(ctx context.Context, snap entities.SessionSnapshot) error
	RemoveSession(ctx context.Context, serverID string, playerID entities.MemberID) error
	Team(ctx context.Context, serverID string) (*entities.ServerTeam, error)
}
