package repository

import (
	"context"
	"errors"

	"github.com/katalvlaran/shaperun/geo"
	"github.com/katalvlaran/shaperun/roadgraph"
)

// ErrGraphFetch is returned when a GraphRepository cannot produce a graph
// for the requested bounding box.
var ErrGraphFetch = errors.New("repository: failed to fetch graph")

// NetworkType selects the kind of road network to load (e.g. driving vs
// walking); it is also a component of the on-disk cache key (see package
// cache).
type NetworkType string

// Network types this engine plans routes over.
const (
	NetworkWalk  NetworkType = "walk"
	NetworkBike  NetworkType = "bike"
	NetworkDrive NetworkType = "drive"
)

// GraphRepository loads a RoadGraph for a bounding box and network type.
// Implementations may hit a database, a map provider, or a test fixture;
// the engine only ever depends on this interface.
type GraphRepository interface {
	GetGraphByBBox(ctx context.Context, bbox geo.BoundingBox, networkType NetworkType) (*roadgraph.RoadGraph, error)
}
