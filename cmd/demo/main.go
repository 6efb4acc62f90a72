// Package main demonstrates RouteFinder end to end: a small hand-built
// road grid standing in for a real bounding-box load, a rough circle as
// the target shape, and a search over it.
package main

import (
	"fmt"
	"log"
	"math"

	"github.com/katalvlaran/shaperun/geo"
	"github.com/katalvlaran/shaperun/roadgraph"
	"github.com/katalvlaran/shaperun/routefinder"
)

func main() {
	log.Println("building demo road grid...")
	g := buildGridGraph(6, 6, 0.002)
	log.Printf("grid ready: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	curve := circleCurve(geo.Coordinate{Lat: 0.005, Lng: 0.005}, 0.004, 24)

	finder := routefinder.New(g, routefinder.DefaultConfig())

	routes, err := finder.Search(curve, 1.2, 2, nil)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}

	fmt.Printf("found %d candidate routes\n", len(routes))
	for _, r := range routes {
		fmt.Printf("route %d: %.2fkm, %d signals, shape similarity %.3f, %d points\n",
			r.RouteID, r.TotalDistanceKm, r.TrafficLightCount, r.ShapeSimilarity, len(r.Coordinates))
	}
}

// buildGridGraph lays out a rows x cols mesh of two-way streets spaced step
// degrees apart, marking every third intersection as signalized.
func buildGridGraph(rows, cols int, step float64) *roadgraph.RoadGraph {
	g := roadgraph.New()

	id := func(r, c int) int64 { return int64(r*cols + c) }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.AddNode(roadgraph.Node{
				ID:              id(r, c),
				Lat:             float64(r) * step,
				Lng:             float64(c) * step,
				HasTrafficLight: (r+c)%3 == 0,
			})
		}
	}

	edgeID := int64(1_000_000)
	addStreet := func(a, b int64, lengthM float64) {
		g.AddEdge(roadgraph.Edge{ID: edgeID, SourceID: a, TargetID: b, LengthM: lengthM, RoadType: roadgraph.RoadTypeResidential})
		edgeID++
		g.AddEdge(roadgraph.Edge{ID: edgeID, SourceID: b, TargetID: a, LengthM: lengthM, RoadType: roadgraph.RoadTypeResidential})
		edgeID++
	}

	blockLengthM := step * 111_000 // rough degrees-to-meters at the equator
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				addStreet(id(r, c), id(r, c+1), blockLengthM)
			}
			if r+1 < rows {
				addStreet(id(r, c), id(r+1, c), blockLengthM)
			}
		}
	}

	return g
}

func circleCurve(center geo.Coordinate, radius float64, points int) []geo.Coordinate {
	curve := make([]geo.Coordinate, 0, points)
	for i := 0; i < points; i++ {
		angle := 2 * math.Pi * float64(i) / float64(points)
		curve = append(curve, geo.Coordinate{
			Lat: center.Lat + radius*math.Sin(angle),
			Lng: center.Lng + radius*math.Cos(angle),
		})
	}

	return curve
}
