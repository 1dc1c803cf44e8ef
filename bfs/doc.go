// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and the visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Edge weights are ignored; only adjacency matters.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - WithOddCycleCheck stops at the first link inside a layer and returns
//     *OddCycleError carrying the closed cycle.
//   - Forest covers every component with one shared visited set.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbours in link order, and BFS enqueues
//	them in that order, so the visit sequence is reproducible for a given
//	sequence of AddEdge calls.
//
// Layering
//
//	Depth parity is a proper 2-colouring of the reached component whenever
//	one exists. BFSResult.Side exposes it; the bipartite package uses it to
//	split a graph into left and right vertex sets, and relies on the odd
//	cycle check to reject graphs that have no such split.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
