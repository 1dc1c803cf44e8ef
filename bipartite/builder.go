// SPDX-License-Identifier: MIT

package bipartite

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/matrix"
)

// DefaultWeight is the cost of a (left, right) pair with no edge.
const DefaultWeight = 0.0

// CostMatrix builds C with C[i][j] = weight(Left[i], Right[j]), or
// DefaultWeight when the pair is not linked.
//
// Implementation:
//   - Stage 1: p.Validate (square requirement).
//   - Stage 2: allocate n×n; NewSquare zero-fills, which is DefaultWeight.
//   - Stage 3: one pass over g.Edges(), placing each weight through the
//     two Index tables; edges with an endpoint outside p are skipped.
//
// Errors: ErrDimensionMismatch; ErrInvalidWeight is impossible for a
// core.Graph but any matrix error is wrapped as-is.
// Complexity: O(n² + E).
func CostMatrix(g *core.Graph, p Partition) (*matrix.Dense, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.Len()
	c, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("bipartite: cost matrix: %w", err)
	}

	var (
		left  = NewIndex(p.Left)
		right = NewIndex(p.Right)
		i, j  int
		ok    bool
	)
	for _, e := range g.Edges() {
		if i, ok = left.Pos(e.From); ok {
			j, ok = right.Pos(e.To)
		} else if i, ok = left.Pos(e.To); ok {
			j, ok = right.Pos(e.From)
		}
		if !ok {
			continue
		}
		if err = c.Set(i, j, e.Weight); err != nil {
			return nil, fmt.Errorf("bipartite: cost matrix: %w", err)
		}
	}

	return c, nil
}
