// SPDX-License-Identifier: MIT

package bipartite

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bimatch/core"
)

// Edge is one weighted link listed under a Node.
type Edge struct {
	To     string
	Weight float64
}

// Node is a listed vertex with its outgoing links in document order.
type Node struct {
	ID    string
	Edges []Edge
}

// Input is the validated, ordered form of an adjacency document.
type Input struct {
	Nodes []Node
}

// Validate checks the invariants the decoders guarantee. It is useful for
// Input values built by hand.
//
// Errors: ErrMalformedInput (empty or duplicate IDs), ErrInvalidWeight.
func (in Input) Validate() error {
	seen := make(map[string]struct{}, len(in.Nodes))
	for _, n := range in.Nodes {
		if n.ID == "" {
			return fmt.Errorf("%w: empty node id", ErrMalformedInput)
		}
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("%w: duplicate node %q", ErrMalformedInput, n.ID)
		}
		seen[n.ID] = struct{}{}

		targets := make(map[string]struct{}, len(n.Edges))
		for _, e := range n.Edges {
			if e.To == "" {
				return fmt.Errorf("%w: empty neighbour id under %q", ErrMalformedInput, n.ID)
			}
			if _, dup := targets[e.To]; dup {
				return fmt.Errorf("%w: duplicate neighbour %q under %q", ErrMalformedInput, e.To, n.ID)
			}
			targets[e.To] = struct{}{}
			if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
				return fmt.Errorf("%w: %s→%s = %v", ErrInvalidWeight, n.ID, e.To, e.Weight)
			}
		}
	}

	return nil
}

// Graph builds the undirected weighted graph of in.
//
// Implementation:
//   - Stage 1: Validate.
//   - Stage 2: add every listed edge, node by node, in document order.
//   - Stage 3: add listed nodes that gained no vertex in Stage 2.
//
// Stage 3 runs last so that the first vertex of any component with edges is
// a listed source, which Split then places on the left.
//
// Errors: those of Validate; ErrNotBipartite for self-loops; ErrMalformedInput
// when a mirrored edge restates a pair with a different weight.
func (in Input) Graph() (*core.Graph, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph()
	var err error
	for _, n := range in.Nodes {
		for _, e := range n.Edges {
			if err = g.AddEdge(n.ID, e.To, e.Weight); err != nil {
				return nil, edgeError(n.ID, e.To, err)
			}
		}
	}
	for _, n := range in.Nodes {
		if err = g.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	}

	return g, nil
}

// edgeError translates core sentinels into package sentinels.
func edgeError(from, to string, err error) error {
	switch err {
	case core.ErrLoopNotAllowed:
		return fmt.Errorf("%w: self-loop on %q", ErrNotBipartite, from)
	case core.ErrMultiEdgeNotAllowed:
		return fmt.Errorf("%w: conflicting weights for %s–%s", ErrMalformedInput, from, to)
	case core.ErrBadWeight:
		return fmt.Errorf("%w: %s→%s", ErrInvalidWeight, from, to)
	default:
		return fmt.Errorf("%w: %s→%s: %v", ErrMalformedInput, from, to, err)
	}
}
