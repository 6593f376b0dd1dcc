// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/lazygod321/rustplusplus/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// PairingInterface exposes the per-server paired-members index.
type PairingInterface interface {
	PairMember(ctx context.Context, pm entities.PairedMember) (*entities.PairedMember, error)
	UnpairMember(ctx context.Context, serverID string, memberID entities.MemberID) error
	PairedMembers(ctx context.Context, serverID string) ([]entities.PairedMember, error)
}
