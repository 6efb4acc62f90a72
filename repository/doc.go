// Package repository defines the collaborator interface the engine uses to
// obtain a roadgraph.RoadGraph for a bounding box, plus a Postgres-backed
// implementation querying a plain nodes/edges table schema.
//
// The engine itself depends only on GraphRepository, never on pgx directly:
// PostgresRepository is a concrete adapter an application wires in, not
// something routefinder calls.
package repository
