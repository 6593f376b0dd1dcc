package domain

import (
	"context"
	"time"

	"github.com/lazygod321/rustplusplus/internal/leader"
	"github.com/lazygod321/rustplusplus/internal/repository"
	"github.com/lazygod321/rustplusplus/internal/session"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx      context.Context
	log      *zap.SugaredLogger
	repo     repository.Repository
	sessions *session.Registry
	resolver *leader.Resolver
	timeout  time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	sessions *session.Registry,
	resolver *leader.Resolver,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:      ctx,
		log:      log,
		repo:     repo,
		sessions: sessions,
		resolver: resolver,
		timeout:  timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
