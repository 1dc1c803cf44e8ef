// SPDX-License-Identifier: MIT

package bipartite

import (
	"context"

	"github.com/katalvlaran/bimatch/assignment"
	"github.com/katalvlaran/bimatch/core"
)

// Match runs the full pipeline on a decoded document.
//
// Errors: anything from Input.Graph, Split, CostMatrix and assignment.Solve
// (including assignment.ErrCancelled when ctx is done).
func Match(ctx context.Context, in Input, objective assignment.Objective) (Report, error) {
	g, err := in.Graph()
	if err != nil {
		return Report{}, err
	}

	return MatchGraph(ctx, g, objective)
}

// MatchGraph is Match for an already built graph.
func MatchGraph(ctx context.Context, g *core.Graph, objective assignment.Objective) (Report, error) {
	p, err := split(ctx, g)
	if err != nil {
		return Report{}, err
	}
	c, err := CostMatrix(g, p)
	if err != nil {
		return Report{}, err
	}

	res, err := assignment.Solve(c,
		assignment.WithObjective(objective),
		assignment.WithContext(ctx),
	)
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		Objective:  objective,
		Assignment: make([]Pair, len(res.Assignment)),
		Weight:     res.TotalCost,
	}
	for i, j := range res.Assignment {
		w, _ := c.At(i, j)
		rep.Assignment[i] = Pair{Left: p.Left[i], Right: p.Right[j], Weight: w}
	}

	return rep, nil
}
