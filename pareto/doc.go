// Package pareto selects a diverse set of non-dominated PathCandidate
// values from a larger pool, using standard multi-objective techniques:
// Pareto dominance, non-dominated front extraction, NSGA-II-style crowding
// distance, and layered rank assignment.
//
// Objectives are the normalized (shapeDistance, lengthPenalty,
// crossingPenalty) triple from costmodel.CostResult — all minimized.
package pareto
