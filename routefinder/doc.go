// Package routefinder is the orchestrator that ties the rest of the engine
// together: it samples weight vectors, rotates the target shape, runs an
// A* search for every (rotation, weight) combination, and hands the
// surviving candidates to the Pareto filter for a diverse top-K.
//
// This is the only package in the module meant to be called directly by an
// application; everything below it (costmodel, weightsample, pathfind,
// pareto) is a pure, silent library. This package logs plainly with the
// standard log package at its boundaries — search start/finish, candidate
// counts, worker panics — and nowhere else.
package routefinder
