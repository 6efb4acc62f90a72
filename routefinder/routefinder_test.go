package routefinder

import (
	"testing"

	"github.com/katalvlaran/shaperun/costmodel"
	"github.com/katalvlaran/shaperun/geo"
	"github.com/katalvlaran/shaperun/roadgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareTestGraph() *roadgraph.RoadGraph {
	g := roadgraph.New()
	g.AddNode(roadgraph.Node{ID: 1, Lat: 37.5, Lng: 127.0})
	g.AddNode(roadgraph.Node{ID: 2, Lat: 37.5, Lng: 127.01})
	g.AddNode(roadgraph.Node{ID: 3, Lat: 37.51, Lng: 127.01})
	g.AddNode(roadgraph.Node{ID: 4, Lat: 37.51, Lng: 127.0})

	g.AddEdge(roadgraph.Edge{ID: 101, SourceID: 1, TargetID: 2, LengthM: 880})
	g.AddEdge(roadgraph.Edge{ID: 102, SourceID: 2, TargetID: 3, LengthM: 1110})
	g.AddEdge(roadgraph.Edge{ID: 103, SourceID: 3, TargetID: 4, LengthM: 880})
	g.AddEdge(roadgraph.Edge{ID: 104, SourceID: 4, TargetID: 1, LengthM: 1110})

	return g
}

func squareTestCurve() []geo.Coordinate {
	return []geo.Coordinate{
		{Lat: 37.5, Lng: 127.0},
		{Lat: 37.5, Lng: 127.01},
		{Lat: 37.51, Lng: 127.01},
		{Lat: 37.51, Lng: 127.0},
		{Lat: 37.5, Lng: 127.0},
	}
}

func smallConfig() RouteSearchConfig {
	c := DefaultConfig()
	c.NWeightSamples = 5
	c.NRotations = 1
	c.MaxIterations = 500
	return c
}

func TestSearchSquareGraphFindsNearMatch(t *testing.T) {
	finder := New(squareTestGraph(), smallConfig())
	routes, err := finder.Search(squareTestCurve(), 3.98, 0, nil)
	require.NoError(t, err)
	require.NotEmpty(t, routes)

	best := routes[0]
	assert.InDelta(t, 3.98, best.TotalDistanceKm, 0.12)
	assert.Equal(t, 0, best.TrafficLightCount)
	assert.Greater(t, best.ShapeSimilarity, 0.9)
	assert.Equal(t, best.Coordinates[0], best.Coordinates[len(best.Coordinates)-1])
	assert.GreaterOrEqual(t, len(best.Coordinates), 4)
}

func TestSearchWithSignalsRaisesCrossingCost(t *testing.T) {
	g := squareTestGraph()
	n2, _ := g.GetNode(2)
	n2.HasTrafficLight = true
	g.AddNode(n2)
	n4, _ := g.GetNode(4)
	n4.HasTrafficLight = true
	g.AddNode(n4)

	finder := New(g, smallConfig())
	routes, err := finder.Search(squareTestCurve(), 3.98, 0, nil)
	require.NoError(t, err)
	require.NotEmpty(t, routes)

	for _, r := range routes {
		if r.ShapeSimilarity > 0.9 {
			assert.Greater(t, r.TrafficLightCount, 0)
		}
	}
}

func TestSearchEmptyCurveReturnsEmptyResult(t *testing.T) {
	finder := New(squareTestGraph(), smallConfig())
	routes, err := finder.Search(nil, 4.0, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, routes)

	routes, err = finder.Search([]geo.Coordinate{{Lat: 0, Lng: 0}}, 4.0, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestSearchInvalidDistanceOrCrossingsReturnsError(t *testing.T) {
	finder := New(squareTestGraph(), smallConfig())

	_, err := finder.Search(squareTestCurve(), 0, 0, nil)
	assert.ErrorIs(t, err, costmodel.ErrInvalidInput)

	_, err = finder.Search(squareTestCurve(), 4.0, -1, nil)
	assert.ErrorIs(t, err, costmodel.ErrInvalidInput)
}

func TestSearchEmptyGraphReturnsEmptyResult(t *testing.T) {
	finder := New(roadgraph.New(), smallConfig())
	routes, err := finder.Search(squareTestCurve(), 4.0, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestSearchUnreachableClosureReturnsEmptyResult(t *testing.T) {
	g := roadgraph.New()
	g.AddNode(roadgraph.Node{ID: 1, Lat: 0, Lng: 0})
	g.AddNode(roadgraph.Node{ID: 2, Lat: 0, Lng: 0.01})
	g.AddNode(roadgraph.Node{ID: 3, Lat: 0.01, Lng: 0.01})
	g.AddNode(roadgraph.Node{ID: 4, Lat: 0.01, Lng: 0})
	g.AddEdge(roadgraph.Edge{ID: 1, SourceID: 1, TargetID: 2, LengthM: 1000})
	g.AddEdge(roadgraph.Edge{ID: 2, SourceID: 2, TargetID: 3, LengthM: 1000})
	g.AddEdge(roadgraph.Edge{ID: 3, SourceID: 3, TargetID: 4, LengthM: 1000})

	finder := New(g, smallConfig())
	routes, err := finder.Search(squareTestCurve(), 3.0, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestSearchSeedReproducibility(t *testing.T) {
	cfg := smallConfig()
	cfg.Seed = 42

	g := squareTestGraph()
	a, err := New(g, cfg).Search(squareTestCurve(), 3.98, 0, nil)
	require.NoError(t, err)

	b, err := New(g, cfg).Search(squareTestCurve(), 3.98, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSearchSequentialAndParallelFindSameCandidateSet(t *testing.T) {
	g := squareTestGraph()

	seqCfg := smallConfig()
	seqCfg.UseParallel = false
	seqRoutes, err := New(g, seqCfg).Search(squareTestCurve(), 3.98, 0, nil)
	require.NoError(t, err)

	parCfg := smallConfig()
	parCfg.UseParallel = true
	parRoutes, err := New(g, parCfg).Search(squareTestCurve(), 3.98, 0, nil)
	require.NoError(t, err)

	seqDistances := make([]float64, len(seqRoutes))
	for i, r := range seqRoutes {
		seqDistances[i] = r.TotalDistanceKm
	}
	parDistances := make([]float64, len(parRoutes))
	for i, r := range parRoutes {
		parDistances[i] = r.TotalDistanceKm
	}

	assert.ElementsMatch(t, seqDistances, parDistances)
}

func TestNewUsesDefaultConfigForZeroValue(t *testing.T) {
	finder := New(squareTestGraph(), RouteSearchConfig{})
	assert.Equal(t, 20, finder.config.NWeightSamples)
	assert.Equal(t, 6, finder.config.NRotations)
	assert.NotNil(t, finder.config.Logger)
}
