package fuzzy

import "github.com/lazygod321/rustplusplus/internal/entities"

const (
	defaultDistance = 100
	// inexactFloor keeps any non-identical name ranked behind an identical one.
	inexactFloor = 0.001
)

// Bitap scores a query by the fewest edits needed to find it inside a name,
// plus a penalty for how far from the start of the name the match begins.
// An edit count equal to the query length scores 1.
type Bitap struct {
	Distance int
}

// Search implements Matcher.
func (b Bitap) Search(query string, candidates []entities.Member) []Result {
	pattern := []rune(normalize(query))
	if len(pattern) == 0 {
		return nil
	}

	results := make([]Result, 0, len(candidates))
	for i, c := range candidates {
		name := normalize(c.Name)
		score := 0.0
		if name != string(pattern) {
			score = max(b.score(pattern, []rune(name)), inexactFloor)
		}
		if score >= 1 {
			continue
		}
		results = append(results, Result{Index: i, Candidate: c, Score: score})
	}
	return rank(results)
}

func (b Bitap) score(pattern, text []rune) float64 {
	distance := b.Distance
	if distance <= 0 {
		distance = defaultDistance
	}

	// row[j] is the edit count of the pattern prefix against the best text
	// substring ending at j; from[j] is where that substring begins.
	row := make([]int, len(text)+1)
	from := make([]int, len(text)+1)
	for j := range from {
		from[j] = j
	}

	next := make([]int, len(text)+1)
	nextFrom := make([]int, len(text)+1)
	for i := 1; i <= len(pattern); i++ {
		next[0], nextFrom[0] = i, 0
		for j := 1; j <= len(text); j++ {
			cost := 1
			if pattern[i-1] == text[j-1] {
				cost = 0
			}
			best, start := row[j-1]+cost, from[j-1]
			if v := row[j] + 1; v < best {
				best, start = v, from[j]
			}
			if v := next[j-1] + 1; v < best {
				best, start = v, nextFrom[j-1]
			}
			next[j], nextFrom[j] = best, start
		}
		row, next = next, row
		from, nextFrom = nextFrom, from
	}

	best := 1.0
	for j := range row {
		s := float64(row[j])/float64(len(pattern)) + float64(from[j])/float64(distance)
		if s < best {
			best = s
		}
	}
	return best
}
