package costmodel

import (
	"github.com/katalvlaran/shaperun/geo"
	"github.com/katalvlaran/shaperun/roadgraph"
)

// CostCalculator combines the three sub-costs into the single TotalCost
// objective, and exposes a per-edge variant used as the A* step cost.
type CostCalculator struct {
	shape    *ShapeDistanceCalculator
	length   *LengthPenaltyCalculator
	crossing *CrossingPenaltyCalculator
}

// NewCostCalculator builds a CostCalculator for a fixed target curve,
// target distance, and crossing budget.
func NewCostCalculator(targetCurve []geo.Coordinate, targetDistanceKm float64, maxCrossings int) (*CostCalculator, error) {
	shape, err := NewShapeDistanceCalculator(targetCurve, targetDistanceKm)
	if err != nil {
		return nil, err
	}

	length, err := NewLengthPenaltyCalculator(targetDistanceKm)
	if err != nil {
		return nil, err
	}

	crossing, err := NewCrossingPenaltyCalculator(maxCrossings)
	if err != nil {
		return nil, err
	}

	return &CostCalculator{shape: shape, length: length, crossing: crossing}, nil
}

// Calculate scores a full closed-walk path against the target shape, length,
// and crossing budget, combining the three sub-costs with weights.
func (c *CostCalculator) Calculate(path []int64, g *roadgraph.RoadGraph, weights WeightVector) (CostResult, error) {
	if len(path) < 2 {
		return CostResult{}, ErrInvalidInput
	}

	pathLengthKm := c.length.PathLength(path, g)
	trafficLightCount := c.crossing.CountTrafficLights(path, g)

	shapeDist := c.shape.NormalizedDistance(path, g)
	lengthPen := c.length.NormalizedPenalty(path, g)
	crossingPen := c.crossing.NormalizedPenalty(path, g)

	total := weights.Alpha*shapeDist + weights.Beta*lengthPen + weights.Gamma*crossingPen

	return CostResult{
		ShapeDistance:     shapeDist,
		LengthPenalty:     lengthPen,
		CrossingPenalty:   crossingPen,
		TotalCost:         total,
		PathLengthKm:      pathLengthKm,
		TrafficLightCount: trafficLightCount,
	}, nil
}

// EdgeCost returns the incremental weighted cost of traversing the edge from
// node1 to node2, used as the A* step cost. It mirrors Calculate's
// normalization per-edge rather than over the whole path: the shape term
// uses this edge's sampled distance, the length term this edge's length
// contribution, and the crossing term whether node2 itself is a signal.
func (c *CostCalculator) EdgeCost(node1, node2 roadgraph.Node, edge roadgraph.Edge, weights WeightVector) float64 {
	shapeTerm := c.shape.EdgeDistance(node1, node2) / c.shape.targetDistanceKm
	lengthTerm := edge.LengthKm() / c.length.targetDistanceKm

	crossingTerm := 0.0
	if node2.HasTrafficLight {
		crossingTerm = 1.0 / float64(c.crossing.maxCrossings+1)
	}

	return weights.Alpha*shapeTerm + weights.Beta*lengthTerm + weights.Gamma*crossingTerm
}

// Heuristic returns an admissible-ish estimate of the remaining cost to close
// the walk back at goal, used by the A* search. It omits the crossing term
// (crossings along an unexplored remainder can't be estimated without a
// concrete path) and scales the shape+length estimate by 0.5 to stay under
// the true cost in the common case.
func (c *CostCalculator) Heuristic(current, goal roadgraph.Node, weights WeightVector) float64 {
	remainingKm := geo.Haversine(
		geo.Coordinate{Lat: current.Lat, Lng: current.Lng},
		geo.Coordinate{Lat: goal.Lat, Lng: goal.Lng},
	)

	shapeTerm := c.shape.MinDistanceToCurve(current) / c.shape.targetDistanceKm
	lengthTerm := remainingKm / c.length.targetDistanceKm

	return 0.5 * (weights.Alpha*shapeTerm + weights.Beta*lengthTerm)
}
