package pareto

import "github.com/katalvlaran/shaperun/pathfind"

// FilterNonDominated returns every candidate not dominated by any other
// candidate in the pool.
func FilterNonDominated(candidates []*pathfind.PathCandidate) []ParetoCandidate {
	if len(candidates) == 0 {
		return nil
	}

	pool := make([]ParetoCandidate, len(candidates))
	for i, c := range candidates {
		pool[i] = fromPathCandidate(c)
	}

	nonDominated := make([]ParetoCandidate, 0, len(pool))
	for i, candidate := range pool {
		dominated := false
		for j, other := range pool {
			if i == j {
				continue
			}
			if dominates(other.Objectives, candidate.Objectives) {
				dominated = true
				break
			}
		}
		if !dominated {
			nonDominated = append(nonDominated, candidate)
		}
	}

	return nonDominated
}

// SelectTopK returns up to k diverse candidates: the non-dominated front,
// further narrowed by crowding distance (highest distance first) if the
// front itself has more than k members. If candidates has k or fewer
// entries, all of them are returned unfiltered.
func SelectTopK(candidates []*pathfind.PathCandidate, k int) []*pathfind.PathCandidate {
	if len(candidates) == 0 {
		return nil
	}
	if len(candidates) <= k {
		return candidates
	}

	front := FilterNonDominated(candidates)
	if len(front) <= k {
		out := make([]*pathfind.PathCandidate, len(front))
		for i, c := range front {
			out[i] = c.Path
		}
		return out
	}

	front = CalculateCrowdingDistance(front)
	sortByCrowdingDistanceDescending(front)

	out := make([]*pathfind.PathCandidate, k)
	for i := 0; i < k; i++ {
		out[i] = front[i].Path
	}

	return out
}

// GetParetoRanks assigns every candidate a Pareto rank: rank 0 is the
// non-dominated front, rank 1 is the front remaining once rank 0 is
// removed, and so on.
func GetParetoRanks(candidates []*pathfind.PathCandidate) []ParetoCandidate {
	if len(candidates) == 0 {
		return nil
	}

	pool := make([]ParetoCandidate, len(candidates))
	for i, c := range candidates {
		pool[i] = fromPathCandidate(c)
	}

	remaining := make([]int, len(pool))
	for i := range remaining {
		remaining[i] = i
	}

	currentRank := 0
	for len(remaining) > 0 {
		nonDominatedIdx := make([]int, 0, len(remaining))

		for _, i := range remaining {
			dominated := false
			for _, j := range remaining {
				if i == j {
					continue
				}
				if dominates(pool[j].Objectives, pool[i].Objectives) {
					dominated = true
					break
				}
			}
			if !dominated {
				nonDominatedIdx = append(nonDominatedIdx, i)
			}
		}

		for _, idx := range nonDominatedIdx {
			pool[idx].Rank = currentRank
		}

		remaining = removeAll(remaining, nonDominatedIdx)
		currentRank++
	}

	return pool
}

func removeAll(from []int, remove []int) []int {
	removeSet := make(map[int]struct{}, len(remove))
	for _, i := range remove {
		removeSet[i] = struct{}{}
	}

	out := make([]int, 0, len(from))
	for _, i := range from {
		if _, ok := removeSet[i]; !ok {
			out = append(out, i)
		}
	}

	return out
}
