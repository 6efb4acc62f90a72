package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/katalvlaran/shaperun/geo"
	"github.com/katalvlaran/shaperun/repository"
)

// GraphCacheService caches a built roadgraph.RoadGraph keyed by the query
// that produced it, so repeated searches over the same area skip
// GraphRepository entirely.
type GraphCacheService interface {
	Get(ctx context.Context, key string) (*graphEntry, bool, error)
	Set(ctx context.Context, key string, graph graphEntrySource) error
	Delete(ctx context.Context, key string) error
	ClearAll(ctx context.Context) (int, error)
}

// BBoxKey derives a deterministic cache key from a bounding box and network
// type by formatting "bbox_{n}_{s}_{e}_{w}_{type}" and hashing it with MD5.
func BBoxKey(bbox geo.BoundingBox, networkType repository.NetworkType) string {
	raw := fmt.Sprintf("bbox_%v_%v_%v_%v_%s", bbox.North, bbox.South, bbox.East, bbox.West, networkType)
	return hashKey(raw)
}

// PointKey derives a deterministic cache key from a center point, radius,
// and network type, using the same "point_{...}" + MD5 scheme as BBoxKey.
func PointKey(lat, lng, distanceM float64, networkType repository.NetworkType) string {
	raw := fmt.Sprintf("point_%v_%v_%v_%s", lat, lng, distanceM, networkType)
	return hashKey(raw)
}

func hashKey(raw string) string {
	sum := md5.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}
