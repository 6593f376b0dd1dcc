// Package domain contains application services orchestrating domain logic by paired members.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/lazygod321/rustplusplus/internal/entities"
)

// PairMember adds a member to the paired index of a server.
func (u *Usecase) PairMember(ctx context.Context, pm entities.PairedMember) (*entities.PairedMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	pm.Name = strings.TrimSpace(pm.Name)
	if pm.ServerID == "" || pm.MemberID == "" {
		u.log.Errorw("failed to pair member: missing server_id or member_id")
		return nil, fmt.Errorf("%w: server_id and member_id are required", entities.ErrInvalidArgument)
	}
	return u.repo.PairMember(ctx, pm)
}

// UnpairMember removes a member from the paired index of a server.
func (u *Usecase) UnpairMember(ctx context.Context, serverID string, memberID entities.MemberID) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if serverID == "" || memberID == "" {
		return fmt.Errorf("%w: server_id and member_id are required", entities.ErrInvalidArgument)
	}
	return u.repo.UnpairMember(ctx, serverID, memberID)
}

// PairedMembers lists the paired index of a server.
func (u *Usecase) PairedMembers(ctx context.Context, serverID string) ([]entities.PairedMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if serverID == "" {
		return nil, fmt.Errorf("%w: server_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.PairedMembers(ctx, serverID)
}
