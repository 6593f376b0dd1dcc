package leader

import (
	"github.com/lazygod321/rustplusplus/internal/entities"
	"github.com/lazygod321/rustplusplus/internal/fuzzy"
)

// DefaultThreshold is the highest score a name may have to count as a match.
const DefaultThreshold = 0.3

// resolve picks the best scoring roster member within threshold.
func (r *Resolver) resolve(input string, members []entities.Member) (entities.Member, bool) {
	var best *fuzzy.Result
	for _, res := range r.matcher.Search(input, members) {
		res := res
		if res.Score > r.threshold {
			continue
		}
		if best == nil || res.Score < best.Score || (res.Score == best.Score && res.Index < best.Index) {
			best = &res
		}
	}
	if best == nil {
		return entities.Member{}, false
	}
	return best.Candidate, true
}
