package pareto

import (
	"errors"

	"github.com/katalvlaran/shaperun/pathfind"
)

// ErrDimensionMismatch reports objective vectors of different lengths.
// Dominates and dominates take fixed [3]float64 triples and return only a
// bool, so no function in this package returns it.
var ErrDimensionMismatch = errors.New("pareto: objective dimension mismatch")

// ParetoCandidate wraps a pathfind.PathCandidate with its objective vector,
// Pareto rank, and crowding distance.
type ParetoCandidate struct {
	Path             *pathfind.PathCandidate
	Objectives       [3]float64
	Rank             int
	CrowdingDistance float64
}

// fromPathCandidate builds a ParetoCandidate from a scored path.
func fromPathCandidate(c *pathfind.PathCandidate) ParetoCandidate {
	return ParetoCandidate{
		Path: c,
		Objectives: [3]float64{
			c.ShapeDistance,
			c.LengthPenalty,
			c.CrossingPenalty,
		},
	}
}

// dominates reports whether obj1 Pareto-dominates obj2: every component of
// obj1 is <= the corresponding component of obj2, and at least one is
// strictly less.
func dominates(obj1, obj2 [3]float64) bool {
	allLEQ := true
	anyLT := false

	for i := range obj1 {
		if obj1[i] > obj2[i] {
			allLEQ = false
			break
		}
		if obj1[i] < obj2[i] {
			anyLT = true
		}
	}

	return allLEQ && anyLT
}

// Dominates reports whether obj1 Pareto-dominates obj2, using the same rule
// as dominates. Exported for callers that want to reuse the dominance
// relation directly (e.g. tests, or a future interactive comparison tool).
func Dominates(obj1, obj2 [3]float64) bool {
	return dominates(obj1, obj2)
}
