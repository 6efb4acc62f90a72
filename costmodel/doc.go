// Package costmodel implements the three normalized sub-costs that score a
// candidate walk against a target shape — shape distance, length penalty,
// and crossing penalty — and the weighted total that combines them.
//
// Design goals:
//   - Mathematical rigor: explicit invariants (WeightVector sums to 1 on the
//     2-simplex), strict sentinel errors for malformed input.
//   - A single calculator type (CostCalculator) shared by the full-path
//     evaluation (used by the Pareto filter) and the single-edge evaluation
//     (used as the A* step cost), so both consumers see identical costs.
//   - No package-level mutable state; every calculator is built from an
//     explicit target curve, target distance, and crossing budget.
//
// # Costs
//
//	ShapeDistance   — sum over edges of the mean haversine distance from
//	                  sampled points along that edge to the nearest
//	                  target-curve segment, normalized by target distance.
//	LengthPenalty   — |realized length - target length| / target length.
//	CrossingPenalty — max(0, intermediate signal count - max crossings),
//	                  normalized by (max crossings + 1).
//	TotalCost       — alpha*ShapeDistance + beta*LengthPenalty + gamma*CrossingPenalty.
//
// Errors are never wrapped with fmt.Errorf where ErrInvalidInput suffices.
package costmodel
