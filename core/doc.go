// Package core provides a thread-safe, in-memory, undirected weighted Graph
// with deterministic (insertion-ordered) enumeration.
//
// Graph G = (V,E) is the validated intermediate form of decoded input:
//
//   - Weights are float64 and must be finite (ErrBadWeight otherwise).
//   - Self-loops are rejected (ErrLoopNotAllowed).
//   - At most one edge per unordered pair {u,v}. Re-adding an edge with the
//     same weight is a no-op; a different weight is ErrMultiEdgeNotAllowed.
//   - Vertices(), NeighborIDs() and Edges() return results in the order the
//     vertices or links were first introduced, never in map order.
//
// Concurrency:
//
//	A single sync.RWMutex guards all storage. Queries take the read lock and
//	return copies, so callers may iterate results while other goroutines
//	mutate the graph.
//
// Complexity:
//
//	AddVertex, AddEdge, HasVertex, HasEdge, Weight: O(1) amortised.
//	Vertices, NeighborIDs, Edges: O(V), O(deg), O(E) (copies).
package core
