// Package leader resolves a free-text member name and hands team leadership to it.
//
// A call to Resolver.Resolve walks a fixed sequence of steps: session guards,
// fuzzy name resolution, checks on the resolved member, and finally the
// transfer itself. The first failing step ends the run with a reason code;
// no step is revisited and nothing is kept between runs.
package leader

import (
	"context"
	"sync"
	"time"

	"github.com/lazygod321/rustplusplus/internal/entities"
	"github.com/lazygod321/rustplusplus/internal/fuzzy"

	"go.uber.org/zap"
)

// Request carries everything one leader command needs.
// Mutator must be set; it is used when the controlled player leads the team.
type Request struct {
	Session  SessionAccessor
	Roster   RosterAccessor
	Mutator  LocalMutator
	ServerID string
	Input    string
}

// Resolver runs leader commands. Runs for the same server are serialized.
type Resolver struct {
	log           *zap.SugaredLogger
	matcher       fuzzy.Matcher
	threshold     float64
	remoteTimeout time.Duration

	locks sync.Map // server id -> *sync.Mutex
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithThreshold sets the highest accepted match score.
func WithThreshold(threshold float64) Option {
	return func(r *Resolver) { r.threshold = threshold }
}

// WithRemoteTimeout bounds the delegate promote call. Zero means no bound
// other than the caller's context.
func WithRemoteTimeout(timeout time.Duration) Option {
	return func(r *Resolver) { r.remoteTimeout = timeout }
}

// New constructs a Resolver around matcher.
func New(log *zap.SugaredLogger, matcher fuzzy.Matcher, opts ...Option) *Resolver {
	r := &Resolver{
		log:       log.Named("leader"),
		matcher:   matcher,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve runs one leader command and always returns exactly one outcome.
func (r *Resolver) Resolve(ctx context.Context, req Request) entities.Outcome {
	mu := r.lock(req.ServerID)
	mu.Lock()
	defer mu.Unlock()

	paired, out, ok := check(req)
	if !ok {
		return out
	}

	member, ok := r.resolve(req.Input, req.Roster.Members())
	if !ok {
		return entities.Failure(entities.StageResolving, entities.ReasonMemberNotFound, req.Input)
	}

	if out, ok = postCheck(req, paired, member); !ok {
		return out
	}

	t := r.selectTransfer(req)
	if err := t.apply(ctx, member.ID); err != nil {
		r.log.Warnw("leadership transfer failed",
			"server_id", req.ServerID,
			"member_id", member.ID,
			"path", t.path(),
			"error", err,
		)
		fail := entities.Failure(entities.StageExecuting, entities.ReasonRemoteTransferFailed, member.Name)
		fail.Err = err
		return fail
	}

	return entities.Success(member, t.path())
}

func (r *Resolver) lock(serverID string) *sync.Mutex {
	mu, _ := r.locks.LoadOrStore(serverID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
