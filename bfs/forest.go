// SPDX-License-Identifier: MIT

package bfs

import (
	"github.com/katalvlaran/bimatch/core"
)

// Forest runs BFS once per connected component of g. Roots are taken in
// vertex insertion order: the first vertex not reached by an earlier tree
// seeds the next one. One visited set serves every tree.
//
// On error the trees completed so far are returned together with the
// partial tree that failed.
//
// Errors: ErrGraphNil, and anything BFS returns.
// Complexity: O(V + E) overall.
func Forest(g *core.Graph, opts ...Option) ([]*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var (
		vertices = g.Vertices()
		w        = newWalker(g, opts, make(map[string]bool, len(vertices)))
		trees    []*BFSResult
	)
	for _, id := range vertices {
		if w.seen[id] {
			continue
		}
		res, err := w.tree(id)
		trees = append(trees, res)
		if err != nil {
			return trees, err
		}
	}

	return trees, nil
}
