package costmodel

import (
	"github.com/katalvlaran/shaperun/geo"
	"github.com/katalvlaran/shaperun/roadgraph"
)

// minEdgeSamples is the minimum number of equally-spaced points sampled
// along an edge when measuring its distance to the target curve.
const minEdgeSamples = 3

// ShapeDistanceCalculator measures how closely a path follows a target
// curve, by sampling points along each edge and averaging their distance to
// the nearest curve segment.
type ShapeDistanceCalculator struct {
	targetCurve      []geo.Coordinate
	targetDistanceKm float64
}

// NewShapeDistanceCalculator validates targetCurve (>= 2 points) and
// targetDistanceKm (> 0).
func NewShapeDistanceCalculator(targetCurve []geo.Coordinate, targetDistanceKm float64) (*ShapeDistanceCalculator, error) {
	if len(targetCurve) < 2 {
		return nil, ErrInvalidInput
	}
	if targetDistanceKm <= 0 {
		return nil, ErrInvalidInput
	}

	return &ShapeDistanceCalculator{targetCurve: targetCurve, targetDistanceKm: targetDistanceKm}, nil
}

// EdgeDistance returns the mean distance (km) from minEdgeSamples points
// sampled along the node1-node2 segment to the target curve.
func (c *ShapeDistanceCalculator) EdgeDistance(node1, node2 roadgraph.Node) float64 {
	samples := sampleSegment(node1, node2, minEdgeSamples)

	total := 0.0
	for _, s := range samples {
		total += geo.PointToCurveDistance(s, c.targetCurve)
	}

	return total / float64(len(samples))
}

// PathDistance sums EdgeDistance over every consecutive pair of nodes in path.
func (c *ShapeDistanceCalculator) PathDistance(path []int64, g *roadgraph.RoadGraph) float64 {
	if len(path) < 2 {
		return 0
	}

	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		n1, ok1 := g.GetNode(path[i])
		n2, ok2 := g.GetNode(path[i+1])
		if ok1 && ok2 {
			total += c.EdgeDistance(n1, n2)
		}
	}

	return total
}

// NormalizedDistance returns PathDistance divided by the target distance.
func (c *ShapeDistanceCalculator) NormalizedDistance(path []int64, g *roadgraph.RoadGraph) float64 {
	return c.PathDistance(path, g) / c.targetDistanceKm
}

// MinDistanceToCurve returns the minimum distance from node to the target
// curve. Used by the A* heuristic.
func (c *ShapeDistanceCalculator) MinDistanceToCurve(node roadgraph.Node) float64 {
	return geo.PointToCurveDistance(geo.Coordinate{Lat: node.Lat, Lng: node.Lng}, c.targetCurve)
}

// sampleSegment returns n equally-spaced points along node1-node2, inclusive
// of both endpoints.
func sampleSegment(node1, node2 roadgraph.Node, n int) []geo.Coordinate {
	samples := make([]geo.Coordinate, 0, n)
	for i := 0; i < n; i++ {
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		samples = append(samples, geo.Coordinate{
			Lat: node1.Lat + t*(node2.Lat-node1.Lat),
			Lng: node1.Lng + t*(node2.Lng-node1.Lng),
		})
	}

	return samples
}
