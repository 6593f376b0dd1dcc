package fuzzy

import (
	"unicode/utf8"

	"github.com/lazygod321/rustplusplus/internal/entities"

	subseq "github.com/sahilm/fuzzy"
)

// Subsequence accepts names that contain every query character in order.
// The score grows with the share of the name the query leaves unmatched,
// capped at 0.5 so that any subsequence hit is a weaker match than an edit-free one.
type Subsequence struct{}

type memberSource []entities.Member

func (s memberSource) String(i int) string { return normalize(s[i].Name) }
func (s memberSource) Len() int            { return len(s) }

// Search implements Matcher.
func (Subsequence) Search(query string, candidates []entities.Member) []Result {
	q := normalize(query)
	if q == "" {
		return nil
	}

	matches := subseq.FindFrom(q, memberSource(candidates))
	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		score := 0.0
		if m.Str != q {
			total := utf8.RuneCountInString(m.Str)
			score = max(0.5*(1-float64(len(m.MatchedIndexes))/float64(total)), inexactFloor)
		}
		results = append(results, Result{Index: m.Index, Candidate: candidates[m.Index], Score: score})
	}
	return rank(results)
}
