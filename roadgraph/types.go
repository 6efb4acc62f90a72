package roadgraph

// RoadType classifies the way a road segment is used. Mirrors the on-disk
// cache entry format (see package cache): one of primary | secondary |
// tertiary | residential | footway | path | cycleway | unknown.
type RoadType string

const (
	RoadTypePrimary     RoadType = "primary"
	RoadTypeSecondary   RoadType = "secondary"
	RoadTypeTertiary    RoadType = "tertiary"
	RoadTypeResidential RoadType = "residential"
	RoadTypeFootway     RoadType = "footway"
	RoadTypePath        RoadType = "path"
	RoadTypeCycleway    RoadType = "cycleway"
	RoadTypeUnknown     RoadType = "unknown"
)

// Node is an intersection or waypoint in the road network.
//
// Node is immutable once built: all fields are set at construction and never
// mutated afterward, so a Node value is safe to share across goroutines
// without locking.
type Node struct {
	ID              int64
	Lat             float64
	Lng             float64
	HasTrafficLight bool
}

// Edge is a road segment connecting two nodes.
//
// Edge is immutable once built, for the same reason as Node.
type Edge struct {
	ID       int64
	SourceID int64
	TargetID int64
	LengthM  float64
	RoadType RoadType
	Name     string
	IsOneway bool
}

// LengthKm returns the edge length in kilometers.
func (e Edge) LengthKm() float64 {
	return e.LengthM / 1000.0
}
