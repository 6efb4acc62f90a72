package routefinder

import (
	"github.com/katalvlaran/shaperun/costmodel"
	"github.com/katalvlaran/shaperun/geo"
	"github.com/katalvlaran/shaperun/pareto"
	"github.com/katalvlaran/shaperun/pathfind"
	"github.com/katalvlaran/shaperun/roadgraph"
	"github.com/katalvlaran/shaperun/weightsample"
)

// RouteFinder is the engine's single public entry point: it combines weight
// sampling, shape rotation, A* search, and Pareto filtering into one call.
type RouteFinder struct {
	graph  *roadgraph.RoadGraph
	config RouteSearchConfig
}

// New builds a RouteFinder over graph. A zero config is replaced with
// DefaultConfig().
func New(graph *roadgraph.RoadGraph, config RouteSearchConfig) *RouteFinder {
	if config.NWeightSamples == 0 && config.NRotations == 0 && config.MaxIterations == 0 {
		config = DefaultConfig()
	}
	if config.Logger == nil {
		config.Logger = DefaultConfig().Logger
	}

	return &RouteFinder{graph: graph, config: config}
}

// Search finds up to config.MaxResults diverse closed-loop routes
// approximating targetCurve, scored against targetDistanceKm length and a
// budget of maxCrossings intermediate traffic lights. Neither is a hard
// limit: a route over the crossing budget or off the target length is
// penalized in its cost, not excluded. startNodeID, if non-nil,
// forces the search origin; otherwise one is chosen automatically.
//
// Returns an empty slice (not an error) when the graph has no nodes, the
// curve is empty, or no candidate closes a loop. Returns
// costmodel.ErrInvalidInput when targetDistanceKm <= 0 or maxCrossings < 0.
func (f *RouteFinder) Search(targetCurve []geo.Coordinate, targetDistanceKm float64, maxCrossings int, startNodeID *int64) ([]RouteInfo, error) {
	logger := f.config.logger()
	logger.Printf("routefinder: search start distance=%.2fkm max_crossings=%d nodes=%d edges=%d",
		targetDistanceKm, maxCrossings, f.graph.NodeCount(), f.graph.EdgeCount())

	if len(targetCurve) < 2 {
		logger.Printf("routefinder: target curve has fewer than 2 points, returning empty result")
		return []RouteInfo{}, nil
	}
	if targetDistanceKm <= 0 || maxCrossings < 0 {
		return nil, costmodel.ErrInvalidInput
	}
	if f.graph.NodeCount() == 0 {
		logger.Printf("routefinder: graph has no nodes, returning empty result")
		return []RouteInfo{}, nil
	}

	start, ok := f.resolveStartNode(targetCurve[0], startNodeID)
	if !ok {
		logger.Printf("routefinder: no usable start node found, returning empty result")
		return []RouteInfo{}, nil
	}
	logger.Printf("routefinder: start node=%d", start)

	weights, err := f.sampleWeights()
	if err != nil {
		return nil, err
	}
	logger.Printf("routefinder: sampled %d weight vectors", len(weights))

	curves := rotatedCurves(targetCurve, f.config.NRotations)
	logger.Printf("routefinder: generated %d rotated curves", len(curves))

	jobs := buildJobs(curves, weights)
	logger.Printf("routefinder: sweeping %d combinations", len(jobs))

	var candidates []*pathfind.PathCandidate
	if f.config.UseParallel {
		candidates = searchParallel(f.graph, jobs, targetDistanceKm, maxCrossings, start, f.config.MaxIterations, f.config.MaxWorkers, logger)
	} else {
		candidates = searchSequential(f.graph, jobs, targetDistanceKm, maxCrossings, start, f.config.MaxIterations)
	}
	logger.Printf("routefinder: %d candidates closed a loop", len(candidates))

	top := pareto.SelectTopK(candidates, f.config.MaxResults)
	logger.Printf("routefinder: %d routes after Pareto filtering", len(top))

	return f.toRouteInfos(top, targetCurve), nil
}

func (f *RouteFinder) resolveStartNode(firstPoint geo.Coordinate, startNodeID *int64) (int64, bool) {
	if startNodeID != nil {
		if _, ok := f.graph.GetNode(*startNodeID); ok {
			return *startNodeID, true
		}
		return 0, false
	}

	node, ok := selectStartNode(f.graph, firstPoint)
	return node.ID, ok
}

func (f *RouteFinder) sampleWeights() ([]costmodel.WeightVector, error) {
	sampler := weightsample.NewWeightSampler(f.config.Seed)

	additional := f.config.NWeightSamples - 4
	if additional < 0 {
		additional = 0
	}

	return sampler.SampleWithCorners(additional)
}

func buildJobs(curves [][]geo.Coordinate, weights []costmodel.WeightVector) []sweepJob {
	jobs := make([]sweepJob, 0, len(curves)*len(weights))
	for _, curve := range curves {
		for _, w := range weights {
			jobs = append(jobs, sweepJob{curve: curve, weights: w})
		}
	}

	return jobs
}

func (f *RouteFinder) toRouteInfos(candidates []*pathfind.PathCandidate, targetCurve []geo.Coordinate) []RouteInfo {
	infos := make([]RouteInfo, 0, len(candidates))

	for i, c := range candidates {
		coords := make([]geo.Coordinate, 0, len(c.Path))
		for _, nodeID := range c.Path {
			if n, ok := f.graph.GetNode(nodeID); ok {
				coords = append(coords, geo.Coordinate{Lat: n.Lat, Lng: n.Lng})
			}
		}

		infos = append(infos, RouteInfo{
			RouteID:             i + 1,
			Coordinates:         coords,
			TotalDistanceKm:     c.PathLengthKm,
			TrafficLightCount:   c.TrafficLightCount,
			ShapeSimilarity:     1.0 / (1.0 + c.ShapeDistance),
			CurvatureSimilarity: costmodel.DTWShapeSimilarity(coords, targetCurve),
		})
	}

	return infos
}
