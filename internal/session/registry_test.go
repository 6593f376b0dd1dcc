package session

import (
	"context"
	"errors"
	"testing"

	"github.com/lazygod321/rustplusplus/internal/entities"
	"github.com/lazygod321/rustplusplus/internal/fuzzy"
	"github.com/lazygod321/rustplusplus/internal/leader"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type promoterMock struct{ mock.Mock }

func (m *promoterMock) PromoteToLeader(ctx context.Context, serverID string, playerID, memberID entities.MemberID) error {
	args := m.Called(ctx, serverID, playerID, memberID)
	return args.Error(0)
}

var roster = []entities.Member{{ID: "1", Name: "Alice"}, {ID: "2", Name: "Bob"}, {ID: "3", Name: "Carol"}}

func snapshot(player entities.MemberID, operational bool) entities.SessionSnapshot {
	return entities.SessionSnapshot{
		ServerID:           "srv-1",
		Title:              "Rustafied EU Main",
		ControlledPlayerID: player,
		Operational:        operational,
		Flags:              map[string]bool{entities.FlagLeaderCommandEnabled: true},
		Team:               entities.Team{Members: roster, LeaderID: "1"},
	}
}

func newRegistry(promoter Promoter) *Registry {
	return NewRegistry(zap.NewNop().Sugar(), promoter)
}

func TestApply_Validation(t *testing.T) {
	r := newRegistry(nil)

	snap := snapshot("1", true)
	snap.ServerID = ""
	require.ErrorIs(t, r.Apply(snap), entities.ErrInvalidArgument)

	snap = snapshot("", true)
	require.ErrorIs(t, r.Apply(snap), entities.ErrInvalidArgument)

	snap = snapshot("1", true)
	snap.Team.LeaderID = "9"
	err := r.Apply(snap)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	require.ErrorIs(t, err, entities.ErrMemberNotInTeam)

	_, _, err = r.Team("srv-1")
	require.ErrorIs(t, err, entities.ErrSessionNotFound)
}

func TestApply_OneOperationalSessionPerServer(t *testing.T) {
	r := newRegistry(nil)

	require.NoError(t, r.Apply(snapshot("1", true)))
	require.Equal(t, entities.MemberID("1"), r.Operational("srv-1").ControlledPlayerID())

	require.NoError(t, r.Apply(snapshot("3", true)))
	op := r.Operational("srv-1")
	require.NotNil(t, op)
	require.Equal(t, entities.MemberID("3"), op.ControlledPlayerID())
	require.False(t, r.session("srv-1", "1").IsOperational())

	require.NoError(t, r.Apply(snapshot("3", false)))
	require.Nil(t, r.Operational("srv-1"))
	require.Nil(t, r.Operational("srv-unknown"))
}

func TestApply_SharesTeamAcrossSessions(t *testing.T) {
	r := newRegistry(nil)

	require.NoError(t, r.Apply(snapshot("1", false)))
	require.NoError(t, r.Apply(snapshot("3", true)))
	require.Same(t, r.session("srv-1", "1").Team(), r.session("srv-1", "3").Team())

	snap := snapshot("3", true)
	snap.Title = ""
	snap.Team.LeaderID = "2"
	require.NoError(t, r.Apply(snap))

	team, title, err := r.Team("srv-1")
	require.NoError(t, err)
	require.Equal(t, entities.MemberID("2"), team.LeaderID)
	require.Equal(t, roster, team.Members)
	require.Equal(t, "Rustafied EU Main", title)
	require.Equal(t, "Rustafied EU Main", r.Title("srv-1"))
	require.Empty(t, r.Title("srv-unknown"))
}

func TestApply_CopiesFlags(t *testing.T) {
	r := newRegistry(nil)

	snap := snapshot("1", true)
	require.NoError(t, r.Apply(snap))
	snap.Flags[entities.FlagLeaderCommandEnabled] = false

	s := r.Operational("srv-1")
	require.True(t, s.FeatureFlag(entities.FlagLeaderCommandEnabled))
	require.False(t, s.FeatureFlag("unknown"))
}

func TestRemove(t *testing.T) {
	r := newRegistry(nil)

	require.NoError(t, r.Apply(snapshot("1", true)))
	require.NoError(t, r.Apply(snapshot("3", false)))

	require.ErrorIs(t, r.Remove("srv-unknown", "1"), entities.ErrSessionNotFound)
	require.ErrorIs(t, r.Remove("srv-1", "9"), entities.ErrSessionNotFound)

	require.NoError(t, r.Remove("srv-1", "1"))
	_, _, err := r.Team("srv-1")
	require.NoError(t, err)

	require.NoError(t, r.Remove("srv-1", "3"))
	_, _, err = r.Team("srv-1")
	require.ErrorIs(t, err, entities.ErrSessionNotFound)
}

func TestDelegateSession(t *testing.T) {
	r := newRegistry(nil)

	require.NoError(t, r.Apply(snapshot("3", true)))
	s := r.Operational("srv-1")
	require.Nil(t, s.DelegateSession())

	require.NoError(t, r.Apply(snapshot("1", false)))
	d := s.DelegateSession()
	require.NotNil(t, d)
	require.Same(t, r.session("srv-1", "1"), d)

	require.Nil(t, r.session("srv-1", "1").DelegateSession())
}

func TestPromoteToLeader(t *testing.T) {
	p := &promoterMock{}
	r := newRegistry(p)

	require.NoError(t, r.Apply(snapshot("1", false)))
	require.NoError(t, r.Apply(snapshot("3", true)))
	lead := r.session("srv-1", "1")

	require.ErrorIs(t, r.session("srv-1", "3").PromoteToLeader(context.Background(), "2"), entities.ErrSessionUnavailable)
	require.ErrorIs(t, lead.PromoteToLeader(context.Background(), "9"), entities.ErrMemberNotInTeam)

	rpcErr := errors.New("rpc: timeout")
	p.On("PromoteToLeader", mock.Anything, "srv-1", entities.MemberID("1"), entities.MemberID("2")).Return(rpcErr).Once()
	require.ErrorIs(t, lead.PromoteToLeader(context.Background(), "2"), rpcErr)
	require.Equal(t, entities.MemberID("1"), lead.CurrentLeaderID())

	p.On("PromoteToLeader", mock.Anything, "srv-1", entities.MemberID("1"), entities.MemberID("2")).Return(nil).Once()
	require.NoError(t, lead.PromoteToLeader(context.Background(), "2"))
	require.Equal(t, entities.MemberID("2"), lead.CurrentLeaderID())
	p.AssertExpectations(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, lead.PromoteToLeader(ctx, "1"), context.Canceled)
}

func TestTeam_SetLeaderIgnoresStrangers(t *testing.T) {
	team := &Team{}
	team.replace(entities.Team{Members: roster, LeaderID: "1"})

	team.SetLeader("9")
	require.Equal(t, entities.MemberID("1"), team.LeaderID())

	team.SetLeader("3")
	require.Equal(t, entities.MemberID("3"), team.LeaderID())

	members := team.Members()
	members[0].Name = "Mallory"
	require.Equal(t, "Alice", team.Members()[0].Name)
}

type pairedRoster struct {
	team   *Team
	paired entities.PairedSet
}

func (p pairedRoster) Members() []entities.Member                { return p.team.Members() }
func (p pairedRoster) PairedMemberIDs(string) entities.PairedSet { return p.paired }

func TestResolveThroughDelegate(t *testing.T) {
	r := newRegistry(nil)
	require.NoError(t, r.Apply(snapshot("1", false)))
	require.NoError(t, r.Apply(snapshot("3", true)))

	m, err := fuzzy.New(fuzzy.KindBitap)
	require.NoError(t, err)
	res := leader.New(zap.NewNop().Sugar(), m)

	s := r.Operational("srv-1")
	out := res.Resolve(context.Background(), leader.Request{
		Session:  s,
		Roster:   pairedRoster{team: s.Team(), paired: entities.PairedSet{"1": {}, "2": {}, "3": {}}},
		Mutator:  s.Team(),
		ServerID: s.ServerID(),
		Input:    "bob",
	})
	require.True(t, out.OK())
	require.Equal(t, entities.PathRemote, out.Path)

	team, _, err := r.Team("srv-1")
	require.NoError(t, err)
	require.Equal(t, entities.MemberID("2"), team.LeaderID)
}
