package costmodel

import "github.com/katalvlaran/shaperun/roadgraph"

// CrossingPenaltyCalculator scores how far a path's intermediate
// traffic-light count exceeds a crossing budget.
type CrossingPenaltyCalculator struct {
	maxCrossings int
}

// NewCrossingPenaltyCalculator validates maxCrossings (>= 0).
func NewCrossingPenaltyCalculator(maxCrossings int) (*CrossingPenaltyCalculator, error) {
	if maxCrossings < 0 {
		return nil, ErrInvalidInput
	}

	return &CrossingPenaltyCalculator{maxCrossings: maxCrossings}, nil
}

// CountTrafficLights counts traffic-light nodes strictly between the first
// and last node of path (start/end of a closed walk are never counted as an
// intermediate crossing, even if the start node itself has a light).
func (c *CrossingPenaltyCalculator) CountTrafficLights(path []int64, g *roadgraph.RoadGraph) int {
	if len(path) < 3 {
		return 0
	}

	count := 0
	for _, id := range path[1 : len(path)-1] {
		if n, ok := g.GetNode(id); ok && n.HasTrafficLight {
			count++
		}
	}

	return count
}

// Penalty returns max(0, count - maxCrossings).
func (c *CrossingPenaltyCalculator) Penalty(count int) float64 {
	overshoot := count - c.maxCrossings
	if overshoot < 0 {
		return 0
	}

	return float64(overshoot)
}

// NormalizedPenalty returns Penalty divided by (maxCrossings + 1).
func (c *CrossingPenaltyCalculator) NormalizedPenalty(path []int64, g *roadgraph.RoadGraph) float64 {
	count := c.CountTrafficLights(path, g)
	return c.Penalty(count) / float64(c.maxCrossings+1)
}
