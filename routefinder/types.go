package routefinder

import "github.com/katalvlaran/shaperun/geo"

// RouteInfo is a single recommended closed-loop route, ready for display.
type RouteInfo struct {
	RouteID           int
	Coordinates       []geo.Coordinate
	TotalDistanceKm   float64
	TrafficLightCount int
	ShapeSimilarity   float64
	// CurvatureSimilarity is a rotation-independent diagnostic comparing the
	// route's turn-by-turn curvature against the target curve's via DTW; it
	// does not influence ranking (see costmodel.DTWShapeSimilarity).
	CurvatureSimilarity float64
}
