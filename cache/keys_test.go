package cache

import (
	"testing"

	"github.com/katalvlaran/shaperun/geo"
	"github.com/katalvlaran/shaperun/repository"
	"github.com/stretchr/testify/assert"
)

func TestBBoxKeyIsDeterministic(t *testing.T) {
	bbox := geo.BoundingBox{North: 1, South: 0, East: 1, West: 0}

	k1 := BBoxKey(bbox, repository.NetworkWalk)
	k2 := BBoxKey(bbox, repository.NetworkWalk)

	assert.Equal(t, k1, k2)
	assert.Len(t, k1, 32) // md5 hex digest
}

func TestBBoxKeyDiffersByNetworkType(t *testing.T) {
	bbox := geo.BoundingBox{North: 1, South: 0, East: 1, West: 0}

	assert.NotEqual(t, BBoxKey(bbox, repository.NetworkWalk), BBoxKey(bbox, repository.NetworkDrive))
}

func TestBBoxKeyDiffersByExtent(t *testing.T) {
	a := geo.BoundingBox{North: 1, South: 0, East: 1, West: 0}
	b := geo.BoundingBox{North: 2, South: 0, East: 1, West: 0}

	assert.NotEqual(t, BBoxKey(a, repository.NetworkWalk), BBoxKey(b, repository.NetworkWalk))
}

func TestPointKeyIsDeterministic(t *testing.T) {
	k1 := PointKey(37.5, 127.0, 500, repository.NetworkBike)
	k2 := PointKey(37.5, 127.0, 500, repository.NetworkBike)

	assert.Equal(t, k1, k2)
	assert.Len(t, k1, 32)
}

func TestPointKeyDiffersFromBBoxKeyForSameNetwork(t *testing.T) {
	bbox := geo.BoundingBox{North: 1, South: 0, East: 1, West: 0}
	pointKey := PointKey(1, 1, 0, repository.NetworkWalk)

	assert.NotEqual(t, BBoxKey(bbox, repository.NetworkWalk), pointKey)
}
