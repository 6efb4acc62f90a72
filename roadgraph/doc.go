// Package roadgraph defines the road-network graph that the route-planning
// engine searches over: Node, Edge, and RoadGraph.
//
// Design goals:
//   - Thread-safety: RoadGraph is built once per search area, then read by
//     many A* workers concurrently. A single sync.RWMutex guards both the
//     node/edge tables and the adjacency index.
//   - Flat, id-addressed storage: nodes and edges live in maps keyed by
//     stable integer ids, with adjacency derived on insertion rather than
//     carried as pointers. This avoids lifetime entanglement between nodes
//     and edges and makes the graph trivially shareable across goroutines.
//   - No hidden I/O: RoadGraph has no notion of where its data came from;
//     that is the repository/cache packages' concern (see package
//     repository and package cache).
package roadgraph
