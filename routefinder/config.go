package routefinder

import "log"

// RouteSearchConfig tunes a single Search invocation.
//
// Zero value is not meaningful; use DefaultConfig() and override fields.
type RouteSearchConfig struct {
	// NWeightSamples is the total number of weight vectors to sweep,
	// including the 4 fixed corner vectors. Default: 20.
	NWeightSamples int

	// NRotations is the number of rotated target curves to sweep, truncated
	// to the 6 fixed angles {0,60,120,180,240,300}. Default: 6.
	NRotations int

	// MaxIterations bounds each A* invocation. Default: 10000.
	MaxIterations int

	// MaxResults bounds the size of the returned route list. Default: 5.
	MaxResults int

	// UseParallel selects the fixed-size worker pool over sequential sweep.
	// Default: true.
	UseParallel bool

	// MaxWorkers bounds pool concurrency when UseParallel is set. Default: 4.
	MaxWorkers int

	// Seed drives the weight sampler's RNG. 0 selects weightsample's fixed
	// default seed. Same seed and inputs always produce the same routes.
	Seed int64

	// Logger receives boundary-layer log lines (search start/finish,
	// candidate counts, worker panics). Defaults to log.Default().
	Logger *log.Logger
}

// DefaultConfig returns reasonable defaults: 20 weight samples, 6 rotations,
// a 10000-iteration budget, 5 results, parallel execution with 4 workers.
func DefaultConfig() RouteSearchConfig {
	return RouteSearchConfig{
		NWeightSamples: 20,
		NRotations:     6,
		MaxIterations:  10000,
		MaxResults:     5,
		UseParallel:    true,
		MaxWorkers:     4,
		Seed:           0,
		Logger:         log.Default(),
	}
}

func (c RouteSearchConfig) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	return log.Default()
}
