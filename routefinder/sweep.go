package routefinder

import (
	"log"
	"sync"

	"github.com/katalvlaran/shaperun/costmodel"
	"github.com/katalvlaran/shaperun/geo"
	"github.com/katalvlaran/shaperun/pathfind"
	"github.com/katalvlaran/shaperun/roadgraph"
)

// sweepJob is one (rotated curve, weight vector) combination to search.
type sweepJob struct {
	curve   []geo.Coordinate
	weights costmodel.WeightVector
}

// searchOne runs a single A* closed-walk search for one job, returning nil
// if the curve/distance/crossing combination is malformed or no loop closes.
func searchOne(g *roadgraph.RoadGraph, job sweepJob, targetDistanceKm float64, maxCrossings int, startNodeID int64, maxIterations int) (*pathfind.PathCandidate, error) {
	cost, err := costmodel.NewCostCalculator(job.curve, targetDistanceKm, maxCrossings)
	if err != nil {
		return nil, err
	}

	finder := pathfind.NewAStarFinder(g, cost, job.weights)
	return finder.FindPath(startNodeID, maxIterations)
}

// searchSequential runs every job in order on the calling goroutine.
func searchSequential(g *roadgraph.RoadGraph, jobs []sweepJob, targetDistanceKm float64, maxCrossings int, startNodeID int64, maxIterations int) []*pathfind.PathCandidate {
	candidates := make([]*pathfind.PathCandidate, 0, len(jobs))

	for _, job := range jobs {
		candidate, err := searchOne(g, job, targetDistanceKm, maxCrossings, startNodeID, maxIterations)
		if err == nil && candidate != nil {
			candidates = append(candidates, candidate)
		}
	}

	return candidates
}

// searchParallel runs jobs over a fixed-size worker pool, isolating each
// job's panics so one bad worker logs and is dropped rather than aborting
// the whole sweep — the reason this is a hand-rolled pool rather than
// errgroup, which is fail-fast.
func searchParallel(g *roadgraph.RoadGraph, jobs []sweepJob, targetDistanceKm float64, maxCrossings int, startNodeID int64, maxIterations, maxWorkers int, logger *log.Logger) []*pathfind.PathCandidate {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	jobCh := make(chan sweepJob, len(jobs))
	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)

	results := make(chan *pathfind.PathCandidate, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for job := range jobCh {
				result := runJobSafely(g, job, targetDistanceKm, maxCrossings, startNodeID, maxIterations, logger)
				if result != nil {
					results <- result
				}
			}
		}()
	}

	wg.Wait()
	close(results)

	candidates := make([]*pathfind.PathCandidate, 0, len(jobs))
	for c := range results {
		candidates = append(candidates, c)
	}

	return candidates
}

// runJobSafely executes one sweepJob, recovering from a panic in the A*
// engine so the rest of the pool keeps running.
func runJobSafely(g *roadgraph.RoadGraph, job sweepJob, targetDistanceKm float64, maxCrossings int, startNodeID int64, maxIterations int, logger *log.Logger) (result *pathfind.PathCandidate) {
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("routefinder: worker panic on weight %+v: %v", job.weights, r)
			result = nil
		}
	}()

	candidate, err := searchOne(g, job, targetDistanceKm, maxCrossings, startNodeID, maxIterations)
	if err != nil {
		logger.Printf("routefinder: worker error on weight %+v: %v", job.weights, err)
		return nil
	}

	return candidate
}
