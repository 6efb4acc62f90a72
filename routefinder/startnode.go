package routefinder

import (
	"github.com/katalvlaran/shaperun/geo"
	"github.com/katalvlaran/shaperun/roadgraph"
)

// selectStartNode picks the intersection node (>= 2 neighbors) nearest to
// the first point of the target curve, since only a branching node can
// seed a closed walk. Falls back to the graph's nearest node overall if no
// intersection exists.
func selectStartNode(g *roadgraph.RoadGraph, firstPoint geo.Coordinate) (roadgraph.Node, bool) {
	var best roadgraph.Node
	bestDist := -1.0
	found := false

	for _, n := range g.AllNodes() {
		if len(g.Neighbors(n.ID)) < 2 {
			continue
		}

		d := geo.Haversine(geo.Coordinate{Lat: n.Lat, Lng: n.Lng}, firstPoint)
		if !found || d < bestDist {
			found = true
			bestDist = d
			best = n
		}
	}

	if found {
		return best, true
	}

	return g.NearestNode(firstPoint.Lat, firstPoint.Lng)
}
