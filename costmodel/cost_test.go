package costmodel

import (
	"testing"

	"github.com/katalvlaran/shaperun/geo"
	"github.com/katalvlaran/shaperun/roadgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareGraph() *roadgraph.RoadGraph {
	g := roadgraph.New()
	g.AddNode(roadgraph.Node{ID: 1, Lat: 0, Lng: 0})
	g.AddNode(roadgraph.Node{ID: 2, Lat: 0, Lng: 0.01})
	g.AddNode(roadgraph.Node{ID: 3, Lat: 0.01, Lng: 0.01, HasTrafficLight: true})
	g.AddNode(roadgraph.Node{ID: 4, Lat: 0.01, Lng: 0})

	g.AddEdge(roadgraph.Edge{ID: 101, SourceID: 1, TargetID: 2, LengthM: 1100})
	g.AddEdge(roadgraph.Edge{ID: 102, SourceID: 2, TargetID: 3, LengthM: 1110})
	g.AddEdge(roadgraph.Edge{ID: 103, SourceID: 3, TargetID: 4, LengthM: 1100})
	g.AddEdge(roadgraph.Edge{ID: 104, SourceID: 4, TargetID: 1, LengthM: 1110})

	return g
}

func squareCurve() []geo.Coordinate {
	return []geo.Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 0.01},
		{Lat: 0.01, Lng: 0.01},
		{Lat: 0.01, Lng: 0},
		{Lat: 0, Lng: 0},
	}
}

func TestNewWeightVectorValidation(t *testing.T) {
	_, err := NewWeightVector(0.4, 0.4, 0.2)
	require.NoError(t, err)

	_, err = NewWeightVector(0.5, 0.5, 0.5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewWeightVector(-0.1, 0.6, 0.5)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestShapeDistanceCalculatorOnShapeMatchingPath(t *testing.T) {
	calc, err := NewShapeDistanceCalculator(squareCurve(), 4.42)
	require.NoError(t, err)

	path := []int64{1, 2, 3, 4, 1}
	dist := calc.PathDistance(path, squareGraph())
	assert.InDelta(t, 0, dist, 1e-6)
}

func TestShapeDistanceCalculatorRejectsDegenerateCurve(t *testing.T) {
	_, err := NewShapeDistanceCalculator([]geo.Coordinate{{Lat: 0, Lng: 0}}, 1.0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewShapeDistanceCalculator(squareCurve(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLengthPenaltyCalculator(t *testing.T) {
	calc, err := NewLengthPenaltyCalculator(4.0)
	require.NoError(t, err)

	g := squareGraph()
	path := []int64{1, 2, 3, 4, 1}
	length := calc.PathLength(path, g)
	assert.InDelta(t, 4.42, length, 0.01)
	assert.InDelta(t, 0.42, calc.Penalty(length), 0.01)
}

func TestCrossingPenaltyCalculatorCountsOnlyIntermediateNodes(t *testing.T) {
	calc, err := NewCrossingPenaltyCalculator(0)
	require.NoError(t, err)

	g := squareGraph()
	path := []int64{1, 2, 3, 4, 1}
	count := calc.CountTrafficLights(path, g)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1.0, calc.Penalty(count))
}

func TestCrossingPenaltyCalculatorWithinBudgetIsZero(t *testing.T) {
	calc, err := NewCrossingPenaltyCalculator(2)
	require.NoError(t, err)

	g := squareGraph()
	path := []int64{1, 2, 3, 4, 1}
	assert.Equal(t, 0.0, calc.Penalty(calc.CountTrafficLights(path, g)))
}

func TestCrossingPenaltyCalculatorRejectsNegativeBudget(t *testing.T) {
	_, err := NewCrossingPenaltyCalculator(-1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCostCalculatorCalculateCombinesSubCosts(t *testing.T) {
	calc, err := NewCostCalculator(squareCurve(), 4.0, 0)
	require.NoError(t, err)

	weights, err := NewWeightVector(0.5, 0.3, 0.2)
	require.NoError(t, err)

	path := []int64{1, 2, 3, 4, 1}
	result, err := calc.Calculate(path, squareGraph(), weights)
	require.NoError(t, err)

	assert.InDelta(t, 0, result.ShapeDistance, 1e-6)
	assert.Greater(t, result.LengthPenalty, 0.0)
	assert.Equal(t, 1, result.TrafficLightCount)
	assert.InDelta(t,
		weights.Alpha*result.ShapeDistance+weights.Beta*result.LengthPenalty+weights.Gamma*result.CrossingPenalty,
		result.TotalCost, 1e-9)
}

func TestCostCalculatorCalculateRejectsShortPath(t *testing.T) {
	calc, err := NewCostCalculator(squareCurve(), 4.0, 0)
	require.NoError(t, err)

	weights, err := NewWeightVector(1, 0, 0)
	require.NoError(t, err)

	_, err = calc.Calculate([]int64{1}, squareGraph(), weights)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCostCalculatorEdgeCostIsNonNegative(t *testing.T) {
	calc, err := NewCostCalculator(squareCurve(), 4.0, 0)
	require.NoError(t, err)

	weights, err := NewWeightVector(0.4, 0.4, 0.2)
	require.NoError(t, err)

	g := squareGraph()
	n1, _ := g.GetNode(2)
	n2, _ := g.GetNode(3)
	e, _ := g.EdgeBetween(2, 3)

	cost := calc.EdgeCost(n1, n2, e, weights)
	assert.Greater(t, cost, 0.0)
}

func TestCostCalculatorHeuristicIsZeroAtGoal(t *testing.T) {
	calc, err := NewCostCalculator(squareCurve(), 4.0, 0)
	require.NoError(t, err)

	weights, err := NewWeightVector(0.5, 0.5, 0)
	require.NoError(t, err)

	g := squareGraph()
	n1, _ := g.GetNode(1)

	h := calc.Heuristic(n1, n1, weights)
	assert.InDelta(t, 0, h, 1e-6)
}
