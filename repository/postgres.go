package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/katalvlaran/shaperun/geo"
	"github.com/katalvlaran/shaperun/roadgraph"
)

// PostgresRepository loads a RoadGraph from a nodes/edges table pair: one
// query for nodes in the bounding box, one for edges between them, logged
// plainly at the start and end of the load.
type PostgresRepository struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgresRepository wraps an already-configured pgx pool. logger
// defaults to log.Default() when nil.
func NewPostgresRepository(pool *pgxpool.Pool, logger *log.Logger) *PostgresRepository {
	if logger == nil {
		logger = log.Default()
	}

	return &PostgresRepository{pool: pool, logger: logger}
}

// GetGraphByBBox loads every node within bbox and every edge whose both
// endpoints are in that node set.
func (r *PostgresRepository) GetGraphByBBox(ctx context.Context, bbox geo.BoundingBox, networkType NetworkType) (*roadgraph.RoadGraph, error) {
	r.logger.Printf("repository: loading graph bbox=%+v network=%s", bbox, networkType)

	g := roadgraph.New()

	nodeRows, err := r.pool.Query(ctx, `
		SELECT id, lat, lng, has_traffic_light
		FROM nodes
		WHERE network_type = $1
		  AND lat BETWEEN $2 AND $3
		  AND lng BETWEEN $4 AND $5
	`, string(networkType), bbox.South, bbox.North, bbox.West, bbox.East)
	if err != nil {
		return nil, fmt.Errorf("%w: loading nodes: %v", ErrGraphFetch, err)
	}
	defer nodeRows.Close()

	nodeIDs := make(map[int64]struct{})
	for nodeRows.Next() {
		var n roadgraph.Node
		if err := nodeRows.Scan(&n.ID, &n.Lat, &n.Lng, &n.HasTrafficLight); err != nil {
			r.logger.Printf("repository: skipping malformed node row: %v", err)
			continue
		}
		g.AddNode(n)
		nodeIDs[n.ID] = struct{}{}
	}
	if err := nodeRows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading nodes: %v", ErrGraphFetch, err)
	}

	edgeRows, err := r.pool.Query(ctx, `
		SELECT id, source_id, target_id, length_m, road_type, name, is_oneway
		FROM edges
		WHERE network_type = $1
	`, string(networkType))
	if err != nil {
		return nil, fmt.Errorf("%w: loading edges: %v", ErrGraphFetch, err)
	}
	defer edgeRows.Close()

	edgeCount := 0
	for edgeRows.Next() {
		var e roadgraph.Edge
		var roadType string
		if err := edgeRows.Scan(&e.ID, &e.SourceID, &e.TargetID, &e.LengthM, &roadType, &e.Name, &e.IsOneway); err != nil {
			r.logger.Printf("repository: skipping malformed edge row: %v", err)
			continue
		}

		if _, sourceOK := nodeIDs[e.SourceID]; !sourceOK {
			continue
		}
		if _, targetOK := nodeIDs[e.TargetID]; !targetOK {
			continue
		}

		e.RoadType = roadgraph.RoadType(roadType)
		g.AddEdge(e)
		edgeCount++
	}
	if err := edgeRows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading edges: %v", ErrGraphFetch, err)
	}

	r.logger.Printf("repository: loaded graph with %d nodes, %d edges", g.NodeCount(), edgeCount)

	return g, nil
}
