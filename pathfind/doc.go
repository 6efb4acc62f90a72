// Package pathfind searches a roadgraph.RoadGraph for closed walks (and,
// for goal-directed queries, open paths) that approximate a target shape
// under a cost model supplied by costmodel.
//
// The search is A*-style: a container/heap priority queue of partial-path
// items, a visited set to prune dominated states, and a heuristic that never
// overestimates remaining cost by more than the admissible bound the cost
// model's Heuristic documents.
//
// Closed-walk search differs from a textbook shortest path: the goal state
// is "back at the start node with at least four nodes visited", so the
// visited set is keyed on (node, length bucket) rather than node alone, so
// a node reached again along a longer walk is still expanded. A return to
// the start node that closes the loop is scored before the visited set is
// consulted.
package pathfind
