package memory

import (
	"context"
	"testing"
	"time"

	"github.com/lazygod321/rustplusplus/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPairedMembers(t *testing.T) {
	ctx := context.Background()
	m := New(zap.NewNop().Sugar())
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	m.now = func() time.Time { return fixed }

	require.NoError(t, m.OnStart(ctx))

	got, err := m.PairMember(ctx, entities.PairedMember{ServerID: "srv-1", MemberID: "2", Name: "Bob"})
	require.NoError(t, err)
	require.Equal(t, fixed.UTC(), got.PairedAt)

	_, err = m.PairMember(ctx, entities.PairedMember{ServerID: "srv-1", MemberID: "1", Name: "Alice"})
	require.NoError(t, err)
	_, err = m.PairMember(ctx, entities.PairedMember{ServerID: "srv-2", MemberID: "1", Name: "Alice"})
	require.NoError(t, err)

	_, err = m.PairMember(ctx, entities.PairedMember{ServerID: "srv-1", MemberID: "2", Name: "Bob"})
	require.ErrorIs(t, err, entities.ErrAlreadyPaired)

	list, err := m.PairedMembers(ctx, "srv-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, entities.MemberID("2"), list[0].MemberID)
	require.Equal(t, entities.MemberID("1"), list[1].MemberID)

	require.NoError(t, m.UnpairMember(ctx, "srv-1", "2"))
	require.ErrorIs(t, m.UnpairMember(ctx, "srv-1", "2"), entities.ErrNotPaired)

	list, err = m.PairedMembers(ctx, "srv-1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = m.PairedMembers(ctx, "srv-unknown")
	require.NoError(t, err)
	require.Empty(t, list)

	require.NoError(t, m.OnStop(ctx))
}

func TestPairedMembers_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := New(zap.NewNop().Sugar())

	_, err := m.PairMember(ctx, entities.PairedMember{ServerID: "srv-1", MemberID: "1", Name: "Alice"})
	require.NoError(t, err)

	list, err := m.PairedMembers(ctx, "srv-1")
	require.NoError(t, err)
	list[0].Name = "Mallory"

	list, err = m.PairedMembers(ctx, "srv-1")
	require.NoError(t, err)
	require.Equal(t, "Alice", list[0].Name)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := New(zap.NewNop().Sugar())

	_, err := m.PairMember(ctx, entities.PairedMember{ServerID: "srv-1", MemberID: "1"})
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, m.UnpairMember(ctx, "srv-1", "1"), context.Canceled)
	_, err = m.PairedMembers(ctx, "srv-1")
	require.ErrorIs(t, err, context.Canceled)
}
