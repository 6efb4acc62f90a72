package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/shaperun/costmodel"
	"github.com/katalvlaran/shaperun/roadgraph"
)

// defaultMaxIterations bounds a search that never converges (e.g. a graph
// with no cycle through the start node).
const defaultMaxIterations = 10000

// AStarFinder searches a RoadGraph for paths scored by a costmodel.CostCalculator.
type AStarFinder struct {
	graph   *roadgraph.RoadGraph
	cost    *costmodel.CostCalculator
	weights costmodel.WeightVector
}

// NewAStarFinder builds an AStarFinder over graph, scoring candidate paths
// with cost under the given weights.
func NewAStarFinder(graph *roadgraph.RoadGraph, cost *costmodel.CostCalculator, weights costmodel.WeightVector) *AStarFinder {
	return &AStarFinder{graph: graph, cost: cost, weights: weights}
}

// FindPath searches for the lowest-cost closed walk starting and ending at
// startNodeID, requiring at least four nodes (three edges) to count as a
// loop. It explores up to maxIterations states (defaultMaxIterations if <=0)
// and returns the best candidate found, or nil if none closed the loop.
func (f *AStarFinder) FindPath(startNodeID int64, maxIterations int) (*PathCandidate, error) {
	if maxIterations <= 0 {
		maxIterations = defaultMaxIterations
	}

	startNode, ok := f.graph.GetNode(startNodeID)
	if !ok {
		return nil, ErrStartNodeNotFound
	}

	open := &pathPQ{}
	heap.Init(open)
	var seq int64
	heap.Push(open, &pathItem{
		nodeID: startNodeID,
		path:   []int64{startNodeID},
		seq:    seq,
	})

	visited := make(map[[2]int64]float64)

	var best *PathCandidate
	bestCost := -1.0

	inPath := func(path []int64, id int64) bool {
		for _, n := range path[1:] {
			if n == id {
				return true
			}
		}
		return false
	}

	for iterations := 0; open.Len() > 0 && iterations < maxIterations; iterations++ {
		current := heap.Pop(open).(*pathItem)

		if current.nodeID == startNodeID && len(current.path) > 3 {
			result, err := f.cost.Calculate(current.path, f.graph, f.weights)
			if err != nil {
				continue
			}
			if best == nil || result.TotalCost < bestCost {
				bestCost = result.TotalCost
				pathCopy := append([]int64(nil), current.path...)
				best = &PathCandidate{
					Path:              pathCopy,
					GCost:             current.gCost,
					FCost:             result.TotalCost,
					ShapeDistance:     result.ShapeDistance,
					LengthPenalty:     result.LengthPenalty,
					CrossingPenalty:   result.CrossingPenalty,
					PathLengthKm:      result.PathLengthKm,
					TrafficLightCount: result.TrafficLightCount,
				}
			}
			continue
		}

		key := [2]int64{current.nodeID, int64(lengthBucket(current.pathLengthKm))}
		if prevCost, ok := visited[key]; ok && prevCost <= current.gCost {
			continue
		}
		visited[key] = current.gCost

		currentNode, ok := f.graph.GetNode(current.nodeID)
		if !ok {
			continue
		}

		for _, neighborID := range f.graph.Neighbors(current.nodeID) {
			if inPath(current.path, neighborID) {
				continue
			}

			neighborNode, ok := f.graph.GetNode(neighborID)
			if !ok {
				continue
			}

			edge, ok := f.graph.EdgeBetween(current.nodeID, neighborID)
			if !ok {
				continue
			}

			newPath := append(append([]int64(nil), current.path...), neighborID)
			newLength := current.pathLengthKm + edge.LengthKm()

			newLights := current.trafficLightCount
			if neighborNode.HasTrafficLight && neighborID != startNodeID {
				newLights++
			}

			edgeCost := f.cost.EdgeCost(currentNode, neighborNode, edge, f.weights)
			newG := current.gCost + edgeCost

			hCost := f.cost.Heuristic(neighborNode, startNode, f.weights)
			fCost := newG + hCost

			seq++
			heap.Push(open, &pathItem{
				nodeID:            neighborID,
				path:              newPath,
				gCost:             newG,
				fCost:             fCost,
				pathLengthKm:      newLength,
				trafficLightCount: newLights,
				seq:               seq,
			})
		}
	}

	return best, nil
}

// FindPathToGoal searches for the lowest-cost path from startNodeID to
// goalNodeID, returning the first one popped (A* guarantees it is optimal
// under an admissible heuristic). Returns nil if no path is found within
// maxIterations.
func (f *AStarFinder) FindPathToGoal(startNodeID, goalNodeID int64, maxIterations int) (*PathCandidate, error) {
	if maxIterations <= 0 {
		maxIterations = defaultMaxIterations
	}

	if _, ok := f.graph.GetNode(startNodeID); !ok {
		return nil, ErrStartNodeNotFound
	}
	goalNode, ok := f.graph.GetNode(goalNodeID)
	if !ok {
		return nil, ErrGoalNodeNotFound
	}

	open := &pathPQ{}
	heap.Init(open)
	var seq int64
	heap.Push(open, &pathItem{
		nodeID: startNodeID,
		path:   []int64{startNodeID},
		seq:    seq,
	})

	visited := make(map[int64]float64)

	inPath := func(path []int64, id int64) bool {
		for _, n := range path {
			if n == id {
				return true
			}
		}
		return false
	}

	for iterations := 0; open.Len() > 0 && iterations < maxIterations; iterations++ {
		current := heap.Pop(open).(*pathItem)

		if current.nodeID == goalNodeID {
			result, err := f.cost.Calculate(current.path, f.graph, f.weights)
			if err != nil {
				return nil, err
			}

			return &PathCandidate{
				Path:              current.path,
				GCost:             current.gCost,
				FCost:             result.TotalCost,
				ShapeDistance:     result.ShapeDistance,
				LengthPenalty:     result.LengthPenalty,
				CrossingPenalty:   result.CrossingPenalty,
				PathLengthKm:      result.PathLengthKm,
				TrafficLightCount: result.TrafficLightCount,
			}, nil
		}

		if prevCost, ok := visited[current.nodeID]; ok && prevCost <= current.gCost {
			continue
		}
		visited[current.nodeID] = current.gCost

		currentNode, ok := f.graph.GetNode(current.nodeID)
		if !ok {
			continue
		}

		for _, neighborID := range f.graph.Neighbors(current.nodeID) {
			if inPath(current.path, neighborID) {
				continue
			}

			neighborNode, ok := f.graph.GetNode(neighborID)
			if !ok {
				continue
			}

			edge, ok := f.graph.EdgeBetween(current.nodeID, neighborID)
			if !ok {
				continue
			}

			newPath := append(append([]int64(nil), current.path...), neighborID)
			newLength := current.pathLengthKm + edge.LengthKm()

			newLights := current.trafficLightCount
			if neighborNode.HasTrafficLight {
				newLights++
			}

			edgeCost := f.cost.EdgeCost(currentNode, neighborNode, edge, f.weights)
			newG := current.gCost + edgeCost

			hCost := f.cost.Heuristic(neighborNode, goalNode, f.weights)
			fCost := newG + hCost

			seq++
			heap.Push(open, &pathItem{
				nodeID:            neighborID,
				path:              newPath,
				gCost:             newG,
				fCost:             fCost,
				pathLengthKm:      newLength,
				trafficLightCount: newLights,
				seq:               seq,
			})
		}
	}

	return nil, nil
}
