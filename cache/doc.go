// Package cache implements GraphCacheService, the collaborator interface
// that lets an application avoid rebuilding a roadgraph.RoadGraph for every
// search over the same area.
//
// Two backends are provided: a JSON file-backed cache and a Redis-backed
// cache (github.com/redis/go-redis/v9) storing the same JSON payload as a
// string value. Both key on the output of BBoxKey or PointKey, an MD5 hash
// of the query that produced the graph.
package cache
