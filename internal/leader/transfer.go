package leader

import (
	"context"
	"fmt"
	"time"

	"github.com/lazygod321/rustplusplus/internal/entities"
)

type transfer interface {
	path() entities.TransferPath
	apply(ctx context.Context, id entities.MemberID) error
}

type localTransfer struct {
	team LocalMutator
}

func (t localTransfer) path() entities.TransferPath { return entities.PathLocal }

func (t localTransfer) apply(_ context.Context, id entities.MemberID) error {
	t.team.SetLeader(id)
	return nil
}

type remoteTransfer struct {
	delegate RemoteDelegate
	timeout  time.Duration
}

func (t remoteTransfer) path() entities.TransferPath { return entities.PathRemote }

func (t remoteTransfer) apply(ctx context.Context, id entities.MemberID) error {
	if t.delegate == nil {
		return entities.ErrNoDelegate
	}
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.delegate.PromoteToLeader(ctx, id); err != nil {
		return fmt.Errorf("promote %s: %w", id, err)
	}
	return nil
}

// selectTransfer picks the local path when the controlled player leads the team.
func (r *Resolver) selectTransfer(req Request) transfer {
	if req.Session.ControlledPlayerID() == req.Session.CurrentLeaderID() {
		return localTransfer{team: req.Mutator}
	}
	return remoteTransfer{delegate: req.Session.DelegateSession(), timeout: r.remoteTimeout}
}
