// SPDX-License-Identifier: MIT
// Package assignment - input validation and working-copy construction.
//
// All error conditions of the solver are detected here, before the first
// phase runs:
//  1. Shape: non-nil and square (n ≥ 0)  → ErrDimensionMismatch.
//  2. Values: every entry finite         → ErrInvalidWeight.
//
// The same row-major pass that checks finiteness fills the flat working
// copy (negated when maximising), so validation costs no extra scan.
package assignment

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bimatch/matrix"
)

// loadCost validates cost and returns its order n together with a flat
// row-major copy c (len n*n). When negate is true c holds −C.
//
// Complexity: O(n²) time, O(n²) space.
func loadCost(cost matrix.Matrix, negate bool) (int, []float64, error) {
	// Stage 1: shape.
	if err := matrix.ValidateSquareNonNil(cost); err != nil {
		if cost == nil || errors.Is(err, matrix.ErrNilMatrix) {
			return 0, nil, fmt.Errorf("%w: nil cost matrix", ErrDimensionMismatch)
		}

		return 0, nil, fmt.Errorf("%w: cost matrix is %d×%d", ErrDimensionMismatch, cost.Rows(), cost.Cols())
	}

	// Stage 2: values, copied in fixed i→j order.
	var (
		n    = cost.Rows()
		c    = make([]float64, n*n)
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = cost.At(i, j); err != nil {
				return 0, nil, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
			}
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return 0, nil, fmt.Errorf("%w: C[%d][%d]=%v", ErrInvalidWeight, i, j, x)
			}
			if negate {
				x = -x
			}
			c[i*n+j] = x
		}
	}

	return n, c, nil
}

// denseFromSlices converts raw rows into a Dense, translating matrix
// sentinels into solver sentinels.
func denseFromSlices(rows [][]float64) (*matrix.Dense, error) {
	d, err := matrix.NewDenseFrom(rows)
	switch {
	case err == nil:
		return d, nil
	case errors.Is(err, matrix.ErrNaNInf):
		return nil, fmt.Errorf("%w: %v", ErrInvalidWeight, err)
	default:
		return nil, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
	}
}

// totalCost recomputes Σ C[i][a[i]] from the caller's matrix in row order.
// The matrix has already been validated, so At cannot fail here.
func totalCost(cost matrix.Matrix, a []int) float64 {
	var (
		sum float64
		x   float64
	)
	for i, j := range a {
		x, _ = cost.At(i, j)
		sum += x
	}

	return sum
}
