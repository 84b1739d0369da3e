package seed

import (
	"math/rand/v2"
	"sort"
)

const (
	// MaxGroupSize is the capacity of a group
	MaxGroupSize = 30
	// MinGroupSize is the smallest group the default sizing is expected to produce
	MinGroupSize = 10

	// drawCandidates is the number of weighted draws a candidate is picked from
	drawCandidates = 3
)

// Assignment is the outcome of distributing students across groups
type Assignment struct {
	Groups *Groups
	// Dropped holds students whose candidate group was already full
	Dropped []StudentName
}

// AssignStudentsToGroups puts students into groups, favouring the least populated.
//
// For every student, in order, the groups are ranked by size and weighted by the
// room they have left (capacity - size). Three weighted draws with replacement
// are made and the candidate is picked uniformly among them. The student joins
// the candidate if it is below capacity and is dropped otherwise; no retry is
// made. A full group has weight 0 and is never drawn, so in practice a student is
// only dropped once every group is full.
//
// With the default sizing (200 students, 10 groups, capacity 30) every group ends
// up with MinGroupSize..MaxGroupSize members; this is not guaranteed for other inputs.
func AssignStudentsToGroups(rng *rand.Rand, students []StudentName, groups *Groups, capacity int) *Assignment {
	if capacity <= 0 {
		capacity = MaxGroupSize
	}

	result := &Assignment{Groups: groups, Dropped: []StudentName{}}
	for _, student := range students {
		ranked := groups.rankBySize()
		weights := make([]float64, len(ranked))
		for i, name := range ranked {
			if room := capacity - groups.Size(name); room > 0 {
				weights[i] = float64(room)
			}
		}

		picks, ok := weightedChoices(rng, ranked, weights, drawCandidates)
		if !ok {
			result.Dropped = append(result.Dropped, student)
			continue
		}

		candidate := picks[rng.IntN(len(picks))]
		if groups.Size(candidate) < capacity {
			groups.append(candidate, student)
		} else {
			result.Dropped = append(result.Dropped, student)
		}
	}
	return result
}

// weightedChoices draws k items with replacement, each with probability
// proportional to its weight. It returns false when no item has a positive weight.
func weightedChoices(rng *rand.Rand, items []string, weights []float64, k int) ([]string, bool) {
	cumulative := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		total += w
		cumulative[i] = total
	}
	if len(items) == 0 || total <= 0 {
		return nil, false
	}

	picks := make([]string, k)
	for i := range picks {
		x := rng.Float64() * total
		idx := sort.Search(len(cumulative), func(j int) bool { return cumulative[j] > x })
		if idx == len(items) {
			idx = len(items) - 1
		}
		picks[i] = items[idx]
	}
	return picks, true
}
