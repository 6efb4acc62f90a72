package routefinder

import (
	"math"

	"github.com/katalvlaran/shaperun/geo"
)

// rotationAngles are the fixed 60-degree-spaced angles the orchestrator
// sweeps, truncated to the configured NRotations.
var rotationAngles = [6]float64{0, 60, 120, 180, 240, 300}

// rotatedCurves returns curve rotated about its centroid by each of the
// first n rotationAngles (n clamped to [1,6]).
func rotatedCurves(curve []geo.Coordinate, n int) [][]geo.Coordinate {
	if n > len(rotationAngles) {
		n = len(rotationAngles)
	}
	if n < 1 {
		n = 1
	}

	centerLat, centerLng := centroid(curve)

	out := make([][]geo.Coordinate, 0, n)
	for _, angle := range rotationAngles[:n] {
		out = append(out, rotateAboutCenter(curve, centerLat, centerLng, angle))
	}

	return out
}

func centroid(curve []geo.Coordinate) (lat, lng float64) {
	for _, c := range curve {
		lat += c.Lat
		lng += c.Lng
	}

	return lat / float64(len(curve)), lng / float64(len(curve))
}

// rotateAboutCenter rotates each point of curve by angleDeg (counterclockwise)
// about (centerLat, centerLng), treating (lng, lat) as planar (x, y) —
// acceptable for the small bounding boxes this engine operates over.
func rotateAboutCenter(curve []geo.Coordinate, centerLat, centerLng, angleDeg float64) []geo.Coordinate {
	angleRad := angleDeg * math.Pi / 180
	cos, sin := math.Cos(angleRad), math.Sin(angleRad)

	out := make([]geo.Coordinate, len(curve))
	for i, c := range curve {
		x := c.Lng - centerLng
		y := c.Lat - centerLat

		newX := x*cos - y*sin
		newY := x*sin + y*cos

		out[i] = geo.Coordinate{Lat: centerLat + newY, Lng: centerLng + newX}
	}

	return out
}
