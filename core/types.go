// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN or ±Inf edge weight.
	ErrBadWeight = errors.New("core: bad weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second, conflicting edge between the same pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Index is the insertion position of the vertex (0-based).
	Index int
}

// Edge represents an undirected weighted connection.
// From/To keep the orientation in which the edge was first added.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// pairKey is the normalised unordered pair {a,b} with a < b.
type pairKey struct {
	a, b string
}

// newPairKey orders the endpoints so that {u,v} and {v,u} share one key.
func newPairKey(u, v string) pairKey {
	if v < u {
		u, v = v, u
	}

	return pairKey{a: u, b: v}
}

// Graph is the core in-memory graph data structure.
//
// mu protects every field below it.
type Graph struct {
	mu sync.RWMutex

	order    []string            // vertex IDs in insertion order
	vertices map[string]*Vertex  // vertex ID → Vertex
	adj      map[string][]string // vertex ID → neighbour IDs in link order
	weights  map[pairKey]float64 // {u,v} → weight
	edges    []Edge              // edges in insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]*Vertex),
		adj:      make(map[string][]string),
		weights:  make(map[pairKey]float64),
	}
}
