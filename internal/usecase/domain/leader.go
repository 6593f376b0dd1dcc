// Package domain contains application services orchestrating domain logic by leader command.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/lazygod321/rustplusplus/internal/entities"
	"github.com/lazygod321/rustplusplus/internal/leader"
	"github.com/lazygod321/rustplusplus/internal/session"

	"github.com/google/uuid"
)

type roster struct {
	team   *session.Team
	paired entities.PairedSet
}

func (r roster) Members() []entities.Member                  { return r.team.Members() }
func (r roster) PairedMemberIDs(_ string) entities.PairedSet { return r.paired }

// TransferLeadership resolves input to a team member of the server's operational
// session and hands leadership to it. Command failures are reported in the
// outcome; the error is reserved for invalid input and storage failures.
func (u *Usecase) TransferLeadership(ctx context.Context, serverID, input string) (entities.Outcome, error) {
	input = strings.TrimSpace(input)
	if serverID == "" || input == "" {
		return entities.Outcome{}, fmt.Errorf("%w: server_id and member are required", entities.ErrInvalidArgument)
	}

	invocationID := uuid.NewString()
	log := u.log.With("invocation_id", invocationID, "server_id", serverID)
	log.Infow("leader command", "value", input)

	req := leader.Request{ServerID: serverID, Input: input}

	// A nil *session.Session must stay a nil interface.
	if sess := u.sessions.Operational(serverID); sess != nil {
		paired, err := u.pairedSet(ctx, serverID)
		if err != nil {
			log.Errorw("failed to load paired members", "error", err)
			return entities.Outcome{}, err
		}
		req.Session = sess
		req.Roster = roster{team: sess.Team(), paired: paired}
		req.Mutator = sess.Team()
	}

	out := u.resolver.Resolve(ctx, req)
	if out.OK() {
		log.Infow("leadership transferred",
			"member_id", out.Member.ID,
			"member", out.Member.Name,
			"path", out.Path,
		)
		return out, nil
	}

	log.Warnw("leader command rejected",
		"reason", out.Reason,
		"stage", out.Stage,
		"detail", out.Detail,
		"error", out.Err,
	)
	return out, nil
}

func (u *Usecase) pairedSet(ctx context.Context, serverID string) (entities.PairedSet, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	list, err := u.repo.PairedMembers(ctx, serverID)
	if err != nil {
		return nil, fmt.Errorf("paired members: %w", err)
	}
	return entities.NewPairedSet(list), nil
}
