package geo

// Coordinate is a decimal-degree WGS84 point.
type Coordinate struct {
	Lat float64
	Lng float64
}

// BoundingBox is a rectangular geographic search area.
//
// Invariant: North >= South and East >= West. Callers are responsible for
// constructing valid boxes; this package does not validate on read.
type BoundingBox struct {
	North float64
	South float64
	East  float64
	West  float64
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Coordinate {
	return Coordinate{
		Lat: (b.North + b.South) / 2,
		Lng: (b.East + b.West) / 2,
	}
}

// Contains reports whether c falls within the box, inclusive of the edges.
func (b BoundingBox) Contains(c Coordinate) bool {
	return b.South <= c.Lat && c.Lat <= b.North && b.West <= c.Lng && c.Lng <= b.East
}
