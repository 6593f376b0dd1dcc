// Package fuzzy ranks team members against noisy name input.
package fuzzy

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/lazygod321/rustplusplus/internal/entities"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const (
	// KindBitap selects the typo tolerant approximate matcher.
	KindBitap = "bitap"
	// KindSubsequence selects the ordered-subsequence matcher.
	KindSubsequence = "subsequence"
)

// Result is one candidate scored against a query.
// Score runs from 0 (identical) to 1 (unrelated).
type Result struct {
	Index     int
	Candidate entities.Member
	Score     float64
}

// Matcher scores candidates against a query and returns them best-first.
type Matcher interface {
	Search(query string, candidates []entities.Member) []Result
}

// New constructs a matcher by name.
func New(kind string) (Matcher, error) {
	switch kind {
	case KindBitap, "":
		return Bitap{Distance: defaultDistance}, nil
	case KindSubsequence:
		return Subsequence{}, nil
	default:
		return nil, fmt.Errorf("unknown matcher: %s", kind)
	}
}

func normalize(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// rank orders results by score, keeping candidate order for equal scores.
func rank(results []Result) []Result {
	slices.SortStableFunc(results, func(a, b Result) int {
		if c := cmp.Compare(a.Score, b.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})
	return results
}
