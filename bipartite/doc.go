// SPDX-License-Identifier: MIT

// Package bipartite turns a weighted adjacency description into an
// assignment problem and renders the solution.
//
// Pipeline:
//
//	DecodeJSON / DecodeYAML → Input → core.Graph → Split → Partition
//	  → CostMatrix → assignment.Solve → Report → WriteJSON / WriteYAML / WriteText
//
// Input shape (JSON; YAML is the same mapping):
//
//	{
//	  "alice": {"db": 3, "web": 1},
//	  "bob":   {"db": 2, "web": 4}
//	}
//
// Every top-level key is a node; its value maps neighbour IDs to finite
// weights. Key order is preserved throughout, so the same document always
// produces the same partition, matrix and report.
//
// Partition rule:
//
//	The graph is 2-coloured by breadth-first search. Each component is
//	seeded from its earliest vertex, which is always a listed node with at
//	least one edge; that side is Left. An edge joining two vertices of the
//	same colour fails with ErrNotBipartite. The two sides must have equal
//	size, otherwise ErrDimensionMismatch; nothing is padded or truncated.
//
// Absent pairs (Left[i], Right[j]) cost DefaultWeight.
//
// The package does not log; callers own that concern.
package bipartite
