// Package bimatch computes optimal one-to-one pairings between the two sides
// of a weighted bipartite graph: the linear assignment problem, solved with
// the Kuhn–Munkres (Hungarian) method in O(n³).
//
// Layout:
//
//	assignment/  the solver: square cost matrix → optimal permutation + cost
//	matrix/      Matrix interface, Dense storage, validators
//	core/        thread-safe weighted undirected Graph, insertion-ordered
//	bfs/         breadth-first traversal with hooks (used for 2-colouring)
//	bipartite/   decode documents, split sides, build C, render reports
//	builder/     reproducible random instances
//	cmd/bimatch  CLI (solve, generate, serve, version)
//
// Quick start:
//
//	res, err := assignment.SolveSlices([][]float64{
//		{4, 2, 8},
//		{4, 3, 7},
//		{3, 1, 6},
//	})
//	// res.TotalCost == 12
//
// End to end:
//
//	in, _ := bipartite.DecodeJSON(r)
//	rep, _ := bipartite.Match(ctx, in, assignment.Maximize)
//	_ = bipartite.WriteJSON(os.Stdout, rep)
//
// Library packages never log and never panic on user input; every failure
// is a sentinel error matched with errors.Is.
package bimatch
