package pareto

import (
	"math"
	"testing"

	"github.com/katalvlaran/shaperun/pathfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(shape, length, crossing float64) *pathfind.PathCandidate {
	return &pathfind.PathCandidate{
		Path:            []int64{1, 2, 3, 1},
		ShapeDistance:   shape,
		LengthPenalty:   length,
		CrossingPenalty: crossing,
	}
}

func TestDominatesRequiresAllLEQAndOneStrict(t *testing.T) {
	assert.True(t, Dominates([3]float64{1, 1, 1}, [3]float64{2, 1, 1}))
	assert.False(t, Dominates([3]float64{1, 1, 1}, [3]float64{1, 1, 1}))
	assert.False(t, Dominates([3]float64{2, 1, 1}, [3]float64{1, 2, 1}))
}

func TestDominatesIsIrreflexive(t *testing.T) {
	obj := [3]float64{0.3, 0.2, 0.1}
	assert.False(t, Dominates(obj, obj))
}

func TestFilterNonDominatedRemovesDominatedCandidates(t *testing.T) {
	candidates := []*pathfind.PathCandidate{
		candidate(0.1, 0.1, 0.1), // dominates the next one
		candidate(0.2, 0.2, 0.2),
		candidate(0.05, 0.5, 0.05), // non-dominated trade-off
	}

	front := FilterNonDominated(candidates)
	require.Len(t, front, 2)

	for _, c := range front {
		assert.NotEqual(t, [3]float64{0.2, 0.2, 0.2}, c.Objectives)
	}
}

func TestFilterNonDominatedEmptyInput(t *testing.T) {
	assert.Nil(t, FilterNonDominated(nil))
}

func TestCalculateCrowdingDistanceSmallPoolIsAllInfinite(t *testing.T) {
	pool := []ParetoCandidate{
		fromPathCandidate(candidate(0.1, 0.1, 0.1)),
		fromPathCandidate(candidate(0.2, 0.2, 0.2)),
	}

	result := CalculateCrowdingDistance(pool)
	for _, c := range result {
		assert.True(t, math.IsInf(c.CrowdingDistance, 1))
	}
}

func TestCalculateCrowdingDistanceBoundariesAreInfinite(t *testing.T) {
	pool := []ParetoCandidate{
		fromPathCandidate(candidate(0.0, 0.5, 0.5)),
		fromPathCandidate(candidate(0.5, 0.5, 0.5)),
		fromPathCandidate(candidate(1.0, 0.5, 0.5)),
	}

	result := CalculateCrowdingDistance(pool)
	assert.True(t, math.IsInf(result[0].CrowdingDistance, 1))
	assert.True(t, math.IsInf(result[2].CrowdingDistance, 1))
	assert.False(t, math.IsInf(result[1].CrowdingDistance, 1))
}

func TestSelectTopKReturnsAllWhenPoolSmallerThanK(t *testing.T) {
	candidates := []*pathfind.PathCandidate{
		candidate(0.1, 0.1, 0.1),
		candidate(0.2, 0.2, 0.2),
	}

	top := SelectTopK(candidates, 5)
	assert.Len(t, top, 2)
}

func TestSelectTopKNarrowsToKDiverseCandidates(t *testing.T) {
	candidates := []*pathfind.PathCandidate{
		candidate(0.0, 0.9, 0.9),
		candidate(0.3, 0.6, 0.6),
		candidate(0.5, 0.5, 0.5),
		candidate(0.6, 0.3, 0.3),
		candidate(0.9, 0.0, 0.0),
		candidate(1.0, 1.0, 1.0), // dominated by all of the above; must be excluded
	}

	top := SelectTopK(candidates, 3)
	assert.Len(t, top, 3)
	for _, c := range top {
		assert.NotEqual(t, [3]float64{1.0, 1.0, 1.0}, [3]float64{c.ShapeDistance, c.LengthPenalty, c.CrossingPenalty})
	}
}

func TestGetParetoRanksLayersFrontsByDominance(t *testing.T) {
	candidates := []*pathfind.PathCandidate{
		candidate(0.0, 0.0, 0.0), // rank 0, dominates everything
		candidate(0.5, 0.5, 0.5), // rank 1
		candidate(1.0, 1.0, 1.0), // rank 2
	}

	ranked := GetParetoRanks(candidates)
	require.Len(t, ranked, 3)
	assert.Equal(t, 0, ranked[0].Rank)
	assert.Equal(t, 1, ranked[1].Rank)
	assert.Equal(t, 2, ranked[2].Rank)
}

func TestGetParetoRanksEmptyInput(t *testing.T) {
	assert.Nil(t, GetParetoRanks(nil))
}
