// SPDX-License-Identifier: MIT

package bipartite

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/bimatch/assignment"
	"github.com/katalvlaran/bimatch/bfs"
	"github.com/katalvlaran/bimatch/core"
)

// Partition is the pair of disjoint ordered vertex sets of a bipartite graph.
type Partition struct {
	Left  []string
	Right []string
}

// Len returns |Left|. It equals |Right| once Validate has passed.
func (p Partition) Len() int { return len(p.Left) }

// Validate requires |Left| == |Right|.
func (p Partition) Validate() error {
	if len(p.Left) != len(p.Right) {
		return fmt.Errorf("%w: %d left vs %d right vertices", ErrDimensionMismatch, len(p.Left), len(p.Right))
	}

	return nil
}

// Split 2-colours g and returns the two colour classes.
//
// Implementation:
//   - Stage 1: bfs.Forest seeds one tree per component in insertion order
//     and stops at the first link inside a layer (an odd cycle).
//   - Stage 2: even depth goes Left, odd depth goes Right; within each side
//     vertices keep their insertion order.
//
// g is only read. The result is freshly allocated on every call.
//
// Errors: ErrNotBipartite (also matching bfs.ErrOddCycle); bfs errors
// wrapped as-is.
// Complexity: O(V + E).
func Split(g *core.Graph) (Partition, error) {
	return split(context.Background(), g)
}

// split is Split under ctx; cancellation surfaces as assignment.ErrCancelled.
func split(ctx context.Context, g *core.Graph) (Partition, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	trees, err := bfs.Forest(g, bfs.WithContext(ctx), bfs.WithOddCycleCheck())
	switch {
	case err == nil:
	case errors.Is(err, bfs.ErrOddCycle):
		return Partition{}, fmt.Errorf("%w: %w", ErrNotBipartite, err)
	case ctx.Err() != nil:
		return Partition{}, fmt.Errorf("%w: during split: %w", assignment.ErrCancelled, err)
	default:
		return Partition{}, fmt.Errorf("bipartite: split: %w", err)
	}

	side := make(map[string]int, g.VertexCount())
	for _, t := range trees {
		for _, id := range t.Order {
			side[id], _ = t.Side(id)
		}
	}

	var p Partition
	for _, id := range g.Vertices() {
		if side[id] == 0 {
			p.Left = append(p.Left, id)
		} else {
			p.Right = append(p.Right, id)
		}
	}

	return p, nil
}
