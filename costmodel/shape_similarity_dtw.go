package costmodel

import "github.com/katalvlaran/shaperun/geo"

// DTWShapeSimilarity scores how closely pathCoords' turn-by-turn curvature
// matches targetCurve's, independent of the path's absolute rotation on the
// map. It is a supplementary diagnostic alongside CostResult.ShapeDistance,
// not part of the weighted total cost: a route can align well on sampled
// point distance while still "feeling" like a different shape, and vice
// versa, so callers may report both.
//
// Returns a value in (0,1], 1 meaning identical turn sequences. Either input
// having fewer than 3 points (not enough to form a turn) yields 0.
func DTWShapeSimilarity(pathCoords, targetCurve []geo.Coordinate) float64 {
	a := turnAngles(pathCoords)
	b := turnAngles(targetCurve)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	dist := dtwDistance(a, b)
	normalized := dist / float64(len(a)+len(b))

	return 1.0 / (1.0 + normalized/180.0)
}

// dtwDistance computes the Dynamic Time Warping distance between a and b
// under an unconstrained warping window, using the standard rolling-two-row
// dynamic program (no path backtrace needed here, so full-matrix storage is
// unnecessary).
func dtwDistance(a, b []float64) float64 {
	n, m := len(a), len(b)

	prevRow := make([]float64, m+1)
	currRow := make([]float64, m+1)

	for j := 1; j <= m; j++ {
		prevRow[j] = infinity
	}

	for i := 1; i <= n; i++ {
		currRow[0] = infinity
		for j := 1; j <= m; j++ {
			cost := abs(a[i-1] - b[j-1])
			best := min3(prevRow[j-1], prevRow[j], currRow[j-1])
			currRow[j] = cost + best
		}
		prevRow, currRow = currRow, prevRow
	}

	return prevRow[m]
}

const infinity = 1e18

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// turnAngles returns the signed heading change, in degrees within
// (-180,180], at each interior point of curve. A straight line yields
// near-zero entries; a sharp left or right turn approaches ±180.
func turnAngles(curve []geo.Coordinate) []float64 {
	if len(curve) < 3 {
		return nil
	}

	angles := make([]float64, 0, len(curve)-2)
	for i := 1; i < len(curve)-1; i++ {
		in := geo.Bearing(curve[i-1], curve[i])
		out := geo.Bearing(curve[i], curve[i+1])

		delta := out - in
		for delta > 180 {
			delta -= 360
		}
		for delta <= -180 {
			delta += 360
		}

		angles = append(angles, delta)
	}

	return angles
}
