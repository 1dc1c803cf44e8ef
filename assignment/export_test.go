package assignment

import "github.com/katalvlaran/bimatch/matrix"

// SolveWithDuals exposes the final row/column potentials (0-based) to the
// external test package. The potentials refer to the working matrix, i.e.
// −C under Maximize.
func SolveWithDuals(cost matrix.Matrix, opts ...Option) (Result, []float64, []float64, error) {
	res, k, err := solve(cost, opts)
	if err != nil {
		return Result{}, nil, nil, err
	}
	u, v := k.duals()

	return res, u, v, nil
}
