package pareto

import (
	"math"
	"sort"
)

const numObjectives = 3

// CalculateCrowdingDistance assigns each candidate an NSGA-II crowding
// distance: the sum, over each objective, of the normalized gap between its
// neighbors once sorted by that objective. Boundary candidates (the best
// and worst on any objective) get infinite distance, so they always survive
// a crowding-based cut. Pools of two or fewer get infinite distance for
// everyone, since there is no interior to measure.
func CalculateCrowdingDistance(candidates []ParetoCandidate) []ParetoCandidate {
	n := len(candidates)
	if n <= 2 {
		for i := range candidates {
			candidates[i].CrowdingDistance = math.Inf(1)
		}
		return candidates
	}

	for i := range candidates {
		candidates[i].CrowdingDistance = 0
	}

	for m := 0; m < numObjectives; m++ {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		sort.SliceStable(indices, func(a, b int) bool {
			return candidates[indices[a]].Objectives[m] < candidates[indices[b]].Objectives[m]
		})

		candidates[indices[0]].CrowdingDistance = math.Inf(1)
		candidates[indices[n-1]].CrowdingDistance = math.Inf(1)

		objRange := candidates[indices[n-1]].Objectives[m] - candidates[indices[0]].Objectives[m]
		if objRange == 0 {
			continue
		}

		for i := 1; i < n-1; i++ {
			prevIdx := indices[i-1]
			currIdx := indices[i]
			nextIdx := indices[i+1]

			delta := (candidates[nextIdx].Objectives[m] - candidates[prevIdx].Objectives[m]) / objRange
			if !math.IsInf(candidates[currIdx].CrowdingDistance, 1) {
				candidates[currIdx].CrowdingDistance += delta
			}
		}
	}

	return candidates
}

// sortByCrowdingDistanceDescending orders candidates from most to least
// diverse (infinite-distance boundary candidates sort first). Ties keep
// their input order, so SelectTopK's cut point is deterministic.
func sortByCrowdingDistanceDescending(candidates []ParetoCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CrowdingDistance > candidates[j].CrowdingDistance
	})
}
