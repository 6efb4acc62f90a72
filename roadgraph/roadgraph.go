package roadgraph

import (
	"sort"
	"sync"

	"github.com/katalvlaran/shaperun/geo"
)

// RoadGraph is a flat, id-addressed store of Node and Edge values plus an
// adjacency index derived from the edges on insertion.
//
// Invariant: for every edge (u,v), v is reachable from u via Neighbors(u);
// if the edge is two-way, u is also reachable from v via Neighbors(v).
//
// RoadGraph is built once per search area and is read-only during a search:
// multiple A* workers may call its read methods concurrently. mu exists to
// make that safe even while the graph is still being assembled by a loader.
type RoadGraph struct {
	mu sync.RWMutex

	nodes map[int64]Node
	edges map[int64]Edge

	// adjacency maps a node id to the set of edge ids reachable from it,
	// keyed by the neighbor node id. byEndpoints[u][v] is the edge id of the
	// edge traversable from u to v (whichever edge was added last wins if
	// callers insert a duplicate (u,v) pair, matching a flat last-write-wins
	// store rather than a multigraph).
	byEndpoints map[int64]map[int64]int64
}

// New returns an empty RoadGraph ready for AddNode/AddEdge.
func New() *RoadGraph {
	return &RoadGraph{
		nodes:       make(map[int64]Node),
		edges:       make(map[int64]Edge),
		byEndpoints: make(map[int64]map[int64]int64),
	}
}

// AddNode inserts or replaces a node. Safe for concurrent use during loading
// (though loading itself is expected to be single-threaded; see package
// repository).
func (g *RoadGraph) AddNode(n Node) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes[n.ID] = n
	if _, ok := g.byEndpoints[n.ID]; !ok {
		g.byEndpoints[n.ID] = make(map[int64]int64)
	}
}

// AddEdge inserts or replaces an edge and updates the adjacency index.
// Two-way edges (IsOneway == false) populate both directions.
func (g *RoadGraph) AddEdge(e Edge) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.edges[e.ID] = e

	if _, ok := g.byEndpoints[e.SourceID]; !ok {
		g.byEndpoints[e.SourceID] = make(map[int64]int64)
	}
	if _, ok := g.byEndpoints[e.TargetID]; !ok {
		g.byEndpoints[e.TargetID] = make(map[int64]int64)
	}

	g.byEndpoints[e.SourceID][e.TargetID] = e.ID
	if !e.IsOneway {
		g.byEndpoints[e.TargetID][e.SourceID] = e.ID
	}
}

// GetNode returns the node with the given id, and whether it was found.
//
// Complexity: O(1).
func (g *RoadGraph) GetNode(id int64) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	return n, ok
}

// Neighbors returns the ids of nodes directly reachable from id, honoring
// one-way semantics, sorted ascending.
//
// The sort matters beyond cosmetics: callers that expand neighbors in order
// and break ties on visitation order (see package pathfind) need a
// deterministic order here, and Go's map iteration order is randomized.
//
// Complexity: O(degree(id) log degree(id)).
func (g *RoadGraph) Neighbors(id int64) []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.byEndpoints[id]
	if !ok {
		return nil
	}

	out := make([]int64, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// EdgeBetween returns the edge traversable from u to v: the stored edge if
// (u,v) is one-way and matches, or if it is two-way in either direction.
//
// Complexity: O(1).
func (g *RoadGraph) EdgeBetween(u, v int64) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.byEndpoints[u]
	if !ok {
		return Edge{}, false
	}

	edgeID, ok := nbrs[v]
	if !ok {
		return Edge{}, false
	}

	e, ok := g.edges[edgeID]
	return e, ok
}

// NearestNode returns the node closest to (lat, lng) by haversine distance,
// or false if the graph has no nodes.
//
// Graphs here are bounding-box-small, so a brute-force scan is acceptable; a
// spatial index is a legal optimization but is not required by this package.
//
// Complexity: O(V).
func (g *RoadGraph) NearestNode(lat, lng float64) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.nodes) == 0 {
		return Node{}, false
	}

	target := geo.Coordinate{Lat: lat, Lng: lng}

	var best Node
	bestDist := -1.0
	for _, n := range g.nodes {
		d := geo.Haversine(target, geo.Coordinate{Lat: n.Lat, Lng: n.Lng})
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = n
		}
	}

	return best, true
}

// NodeCount returns the number of nodes in the graph.
func (g *RoadGraph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges in the graph.
func (g *RoadGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// AllNodes returns every node in the graph, in no particular order.
func (g *RoadGraph) AllNodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}

	return out
}

// EdgeList returns every edge in the graph, in no particular order.
func (g *RoadGraph) EdgeList() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}

	return out
}

// TrafficLightNodes returns every node with HasTrafficLight set.
func (g *RoadGraph) TrafficLightNodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0)
	for _, n := range g.nodes {
		if n.HasTrafficLight {
			out = append(out, n)
		}
	}

	return out
}

// BoundingBox returns the geographic extent of all nodes in the graph. The
// zero BoundingBox is returned for an empty graph.
func (g *RoadGraph) BoundingBox() geo.BoundingBox {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.nodes) == 0 {
		return geo.BoundingBox{}
	}

	first := true
	var bb geo.BoundingBox
	for _, n := range g.nodes {
		if first {
			bb = geo.BoundingBox{North: n.Lat, South: n.Lat, East: n.Lng, West: n.Lng}
			first = false
			continue
		}
		if n.Lat > bb.North {
			bb.North = n.Lat
		}
		if n.Lat < bb.South {
			bb.South = n.Lat
		}
		if n.Lng > bb.East {
			bb.East = n.Lng
		}
		if n.Lng < bb.West {
			bb.West = n.Lng
		}
	}

	return bb
}
