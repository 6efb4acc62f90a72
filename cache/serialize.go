package cache

import (
	"encoding/json"

	"github.com/katalvlaran/shaperun/roadgraph"
)

// graphEntry is the on-disk/on-wire JSON shape for a cached graph:
//
//	{ "nodes": [{id, lat, lng, has_traffic_light}],
//	  "edges": [{id, source_id, target_id, length_m, road_type, name, is_oneway}] }
type graphEntry struct {
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

type jsonNode struct {
	ID              int64   `json:"id"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	HasTrafficLight bool    `json:"has_traffic_light"`
}

type jsonEdge struct {
	ID       int64   `json:"id"`
	SourceID int64   `json:"source_id"`
	TargetID int64   `json:"target_id"`
	LengthM  float64 `json:"length_m"`
	RoadType string  `json:"road_type"`
	Name     string  `json:"name"`
	IsOneway bool    `json:"is_oneway"`
}

// graphEntrySource is satisfied by *roadgraph.RoadGraph; Set takes this
// interface rather than the concrete type so callers can pass a pre-built
// snapshot in tests without constructing a full graph.
type graphEntrySource interface {
	AllNodes() []roadgraph.Node
	EdgeList() []roadgraph.Edge
}

func entryFromGraph(source graphEntrySource) graphEntry {
	nodes := source.AllNodes()
	edges := source.EdgeList()

	entry := graphEntry{
		Nodes: make([]jsonNode, len(nodes)),
		Edges: make([]jsonEdge, len(edges)),
	}

	for i, n := range nodes {
		entry.Nodes[i] = jsonNode{ID: n.ID, Lat: n.Lat, Lng: n.Lng, HasTrafficLight: n.HasTrafficLight}
	}
	for i, e := range edges {
		entry.Edges[i] = jsonEdge{
			ID:       e.ID,
			SourceID: e.SourceID,
			TargetID: e.TargetID,
			LengthM:  e.LengthM,
			RoadType: string(e.RoadType),
			Name:     e.Name,
			IsOneway: e.IsOneway,
		}
	}

	return entry
}

// ToRoadGraph rebuilds a roadgraph.RoadGraph from a cached entry.
func (e graphEntry) ToRoadGraph() *roadgraph.RoadGraph {
	g := roadgraph.New()

	for _, n := range e.Nodes {
		g.AddNode(roadgraph.Node{ID: n.ID, Lat: n.Lat, Lng: n.Lng, HasTrafficLight: n.HasTrafficLight})
	}
	for _, e := range e.Edges {
		g.AddEdge(roadgraph.Edge{
			ID:       e.ID,
			SourceID: e.SourceID,
			TargetID: e.TargetID,
			LengthM:  e.LengthM,
			RoadType: roadgraph.RoadType(e.RoadType),
			Name:     e.Name,
			IsOneway: e.IsOneway,
		})
	}

	return g
}

func marshalEntry(e graphEntry) ([]byte, error) {
	return json.Marshal(e)
}

func unmarshalEntry(data []byte) (graphEntry, error) {
	var e graphEntry
	err := json.Unmarshal(data, &e)
	return e, err
}
