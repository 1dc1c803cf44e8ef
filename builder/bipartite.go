// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bimatch/bipartite"
)

const methodCompleteBipartite = "CompleteBipartite"

// CompleteBipartite returns an n×n assignment instance.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Left IDs "{left}{i}", right IDs "{right}{j}", i,j ∈ [0,n).
//   - Edge Li–Rj is listed under Li; it is kept when i == j or the density
//     draw succeeds. With density 1 no draw is made.
//   - Weights come from the configured WeightFn, one call per kept edge.
//
// Complexity: O(n²) time and space.
func CompleteBipartite(n int, opts ...BuilderOption) (bipartite.Input, error) {
	if n < 1 {
		return bipartite.Input{}, fmt.Errorf("%s: n=%d (must be ≥ 1): %w", methodCompleteBipartite, n, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	right := make([]string, n)
	for j := range right {
		right[j] = fmt.Sprintf("%s%d", cfg.rightPrefix, j)
	}

	in := bipartite.Input{Nodes: make([]bipartite.Node, n)}
	for i := 0; i < n; i++ {
		node := bipartite.Node{ID: fmt.Sprintf("%s%d", cfg.leftPrefix, i)}
		for j := 0; j < n; j++ {
			if i != j && cfg.density < 1 && cfg.rng.Float64() >= cfg.density {
				continue
			}
			w := cfg.weightFn(cfg.rng)
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return bipartite.Input{}, fmt.Errorf("%s: weight %s→%s: %w", methodCompleteBipartite, node.ID, right[j], bipartite.ErrInvalidWeight)
			}
			node.Edges = append(node.Edges, bipartite.Edge{To: right[j], Weight: w})
		}
		in.Nodes[i] = node
	}

	return in, nil
}
