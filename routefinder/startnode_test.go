package routefinder

import (
	"testing"

	"github.com/katalvlaran/shaperun/geo"
	"github.com/katalvlaran/shaperun/roadgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectStartNodePrefersIntersectionOverDeadEnd(t *testing.T) {
	g := roadgraph.New()
	g.AddNode(roadgraph.Node{ID: 1, Lat: 0, Lng: 0})   // dead end, nearest to target
	g.AddNode(roadgraph.Node{ID: 2, Lat: 0, Lng: 0.02})
	g.AddNode(roadgraph.Node{ID: 3, Lat: 0.01, Lng: 0.02})

	g.AddEdge(roadgraph.Edge{ID: 1, SourceID: 1, TargetID: 2, LengthM: 2000, IsOneway: false})
	g.AddEdge(roadgraph.Edge{ID: 2, SourceID: 2, TargetID: 3, LengthM: 1200, IsOneway: false})

	node, ok := selectStartNode(g, geo.Coordinate{Lat: 0, Lng: 0})
	require.True(t, ok)
	assert.EqualValues(t, 2, node.ID) // only node 2 has >=2 neighbors
}

func TestSelectStartNodeFallsBackToNearestWhenNoIntersection(t *testing.T) {
	g := roadgraph.New()
	g.AddNode(roadgraph.Node{ID: 1, Lat: 0, Lng: 0})
	g.AddNode(roadgraph.Node{ID: 2, Lat: 0, Lng: 0.01})
	g.AddEdge(roadgraph.Edge{ID: 1, SourceID: 1, TargetID: 2, LengthM: 1000})

	node, ok := selectStartNode(g, geo.Coordinate{Lat: 0, Lng: 0})
	require.True(t, ok)
	assert.EqualValues(t, 1, node.ID)
}

func TestSelectStartNodeEmptyGraph(t *testing.T) {
	g := roadgraph.New()
	_, ok := selectStartNode(g, geo.Coordinate{Lat: 0, Lng: 0})
	assert.False(t, ok)
}
