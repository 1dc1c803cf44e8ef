// File: methods_edges.go
// Role: Edge insertion & queries on the undirected weighted graph.
package core

import "math"

// AddEdge links from and to with weight w, creating missing endpoints.
//
// Implementation:
//   - Stage 1: validate IDs, loop and weight.
//   - Stage 2: under the write lock, add endpoints (insertion order: from, then to).
//   - Stage 3: an existing {from,to} edge is accepted only with an identical weight.
//   - Stage 4: store the weight, append mirror adjacency and the edge record.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrBadWeight, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortised.
func (g *Graph) AddEdge(from, to string, w float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := newPairKey(from, to)
	if prev, ok := g.weights[key]; ok {
		if prev == w {
			return nil // same edge restated
		}

		return ErrMultiEdgeNotAllowed
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.weights[key] = w
	g.adj[from] = append(g.adj[from], to)
	g.adj[to] = append(g.adj[to], from)
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: w})

	return nil
}

// HasEdge reports whether u and v are linked (in either orientation).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.weights[newPairKey(u, v)]

	return ok
}

// Weight returns the weight of edge {u,v}.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound (either endpoint), ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (float64, error) {
	if u == "" || v == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[u]; !ok {
		return 0, ErrVertexNotFound
	}
	if _, ok := g.vertices[v]; !ok {
		return 0, ErrVertexNotFound
	}
	w, ok := g.weights[newPairKey(u, v)]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// NeighborIDs returns the neighbours of id in the order they were linked.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(deg(id)) (copy).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return append([]string(nil), g.adj[id]...), nil
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Edge(nil), g.edges...)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
