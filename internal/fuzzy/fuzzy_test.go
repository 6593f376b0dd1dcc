package fuzzy

import (
	"testing"

	"github.com/lazygod321/rustplusplus/internal/entities"

	"github.com/stretchr/testify/require"
)

var roster = []entities.Member{
	{ID: "1", Name: "Alice"},
	{ID: "2", Name: "Bob"},
	{ID: "3", Name: "Bobby"},
	{ID: "4", Name: "Åsa"},
}

func TestNew(t *testing.T) {
	m, err := New(KindBitap)
	require.NoError(t, err)
	require.IsType(t, Bitap{}, m)

	m, err = New(KindSubsequence)
	require.NoError(t, err)
	require.IsType(t, Subsequence{}, m)

	_, err = New("soundex")
	require.Error(t, err)
}

func TestBitapTypo(t *testing.T) {
	res := Bitap{}.Search("alise", roster)
	require.NotEmpty(t, res)
	require.Equal(t, entities.MemberID("1"), res[0].Candidate.ID)
	require.InDelta(t, 0.2, res[0].Score, 1e-9)
}

func TestBitapNoMatch(t *testing.T) {
	require.Empty(t, Bitap{}.Search("zzz", roster))
}

func TestBitapEmptyQuery(t *testing.T) {
	require.Empty(t, Bitap{}.Search("   ", roster))
}

func TestBitapPrefixRanksBehindExact(t *testing.T) {
	bobbyFirst := []entities.Member{{ID: "3", Name: "Bobby"}, {ID: "2", Name: "Bob"}}
	res := Bitap{}.Search("bob", bobbyFirst)
	require.Len(t, res, 2)
	require.Equal(t, entities.MemberID("2"), res[0].Candidate.ID)
	require.Zero(t, res[0].Score)
	require.Equal(t, 1, res[0].Index)
}

func TestBitapProximityPenalty(t *testing.T) {
	res := Bitap{Distance: 100}.Search("bob", []entities.Member{{ID: "1", Name: "xxbob"}, {ID: "2", Name: "bobxx"}})
	require.Len(t, res, 2)
	require.Equal(t, entities.MemberID("2"), res[0].Candidate.ID)
	require.InDelta(t, 0.02, res[1].Score, 1e-9)
}

func TestBitapCaseAndNormalization(t *testing.T) {
	res := Bitap{}.Search("ÅSA", roster)
	require.NotEmpty(t, res)
	require.Equal(t, entities.MemberID("4"), res[0].Candidate.ID)
	require.Zero(t, res[0].Score)

	// decomposed A + ring above folds to the same name
	res = Bitap{}.Search("A\u030asa", roster)
	require.NotEmpty(t, res)
	require.Equal(t, entities.MemberID("4"), res[0].Candidate.ID)
}

func TestExactNameIsTopMatch(t *testing.T) {
	for _, m := range []Matcher{Bitap{}, Subsequence{}} {
		for _, member := range roster {
			res := m.Search(member.Name, roster)
			require.NotEmpty(t, res)
			require.Equal(t, member.ID, res[0].Candidate.ID, "%T %s", m, member.Name)
			require.Zero(t, res[0].Score)
		}
	}
}

func TestSubsequence(t *testing.T) {
	res := Subsequence{}.Search("bb", roster)
	require.Len(t, res, 2)
	require.Equal(t, entities.MemberID("2"), res[0].Candidate.ID)
	require.Equal(t, entities.MemberID("3"), res[1].Candidate.ID)
	require.Less(t, res[0].Score, res[1].Score)
	require.LessOrEqual(t, res[1].Score, 0.5)

	require.Empty(t, Subsequence{}.Search("alise", roster))
}

func TestRankKeepsOrderOnTies(t *testing.T) {
	res := rank([]Result{
		{Index: 2, Score: 0.1},
		{Index: 0, Score: 0.2},
		{Index: 1, Score: 0.1},
	})
	require.Equal(t, []int{1, 2, 0}, []int{res[0].Index, res[1].Index, res[2].Index})
}
