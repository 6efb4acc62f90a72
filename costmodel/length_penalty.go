package costmodel

import (
	"math"

	"github.com/katalvlaran/shaperun/roadgraph"
)

// LengthPenaltyCalculator scores how far a path's realized length deviates
// from a target length.
type LengthPenaltyCalculator struct {
	targetDistanceKm float64
}

// NewLengthPenaltyCalculator validates targetDistanceKm (> 0).
func NewLengthPenaltyCalculator(targetDistanceKm float64) (*LengthPenaltyCalculator, error) {
	if targetDistanceKm <= 0 {
		return nil, ErrInvalidInput
	}

	return &LengthPenaltyCalculator{targetDistanceKm: targetDistanceKm}, nil
}

// PathLength sums edge lengths (km) along consecutive nodes in path.
func (c *LengthPenaltyCalculator) PathLength(path []int64, g *roadgraph.RoadGraph) float64 {
	if len(path) < 2 {
		return 0
	}

	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		if e, ok := g.EdgeBetween(path[i], path[i+1]); ok {
			total += e.LengthKm()
		}
	}

	return total
}

// Penalty returns the absolute deviation (km) of realized from the target.
func (c *LengthPenaltyCalculator) Penalty(realizedKm float64) float64 {
	return math.Abs(realizedKm - c.targetDistanceKm)
}

// NormalizedPenalty returns Penalty divided by the target distance.
func (c *LengthPenaltyCalculator) NormalizedPenalty(path []int64, g *roadgraph.RoadGraph) float64 {
	return c.Penalty(c.PathLength(path, g)) / c.targetDistanceKm
}
