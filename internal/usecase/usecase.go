package usecase

import (
	"context"
	"time"

	"github.com/lazygod321/rustplusplus/internal/leader"
	"github.com/lazygod321/rustplusplus/internal/repository"
	"github.com/lazygod321/rustplusplus/internal/session"
	"github.com/lazygod321/rustplusplus/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	LeaderUsecaseInterface
	PairingUsecaseInterface
	SessionUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	sessions *session.Registry,
	resolver *leader.Resolver,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, sessions, resolver, timeout)
}
