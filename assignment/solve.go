// SPDX-License-Identifier: MIT
// Package assignment - public entry points.
//
//   - Solve:       validate a matrix.Matrix and run the Hungarian kernel.
//   - SolveSlices: convenience wrapper for raw [][]float64 rows.
//   - SolveBatch:  parallel Solve over independent matrices (batch.go).
//
// Design principles:
//   - Deterministic: fixed loop orders, strict tie-breaking, no randomness.
//   - Strict sentinels: every failure matches one of the errors in types.go.
//   - Stable cost: TotalCost is recomputed from the caller's matrix, never
//     accumulated from potentials.
package assignment

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bimatch/matrix"
)

// Solve returns an optimal assignment for the square cost matrix.
//
// Contracts:
//   - cost must be non-nil and n×n with n ≥ 0 (n == 0 ⇒ empty assignment, cost 0).
//   - every entry must be finite.
//   - magnitudes must leave float64 headroom: an optimal total or a reduced
//     cost c − u − v beyond ±MaxFloat64 fails with ErrInvalidWeight, so
//     TotalCost is always finite.
//   - cost is never mutated.
//
// Errors: ErrDimensionMismatch, ErrInvalidWeight, ErrUnknownObjective,
// ErrCancelled (also wrapping the context error).
//
// Complexity: O(n³) time, O(n²) space.
func Solve(cost matrix.Matrix, opts ...Option) (Result, error) {
	res, _, err := solve(cost, opts)

	return res, err
}

// SolveSlices is Solve for a row-major [][]float64.
// Ragged rows (or a row-less non-empty input) fail with ErrDimensionMismatch,
// NaN/±Inf with ErrInvalidWeight.
//
// Complexity: O(n²) copy + O(n³) solve.
func SolveSlices(cost [][]float64, opts ...Option) (Result, error) {
	d, err := denseFromSlices(cost)
	if err != nil {
		return Result{}, err
	}

	return Solve(d, opts...)
}

// solve is the shared implementation; it also returns the final kernel so
// tests can inspect the potentials.
func solve(cost matrix.Matrix, opts []Option) (Result, *kernel, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, nil, err
	}

	// Stage 1: validate and copy (negated for maximisation).
	n, c, err := loadCost(cost, o.Objective == Maximize)
	if err != nil {
		return Result{}, nil, err
	}

	// Stage 2: trivial instance.
	if n == 0 {
		return Result{Assignment: []int{}, TotalCost: 0}, newKernel(0, c), nil
	}

	// Stage 3: n phases.
	k := newKernel(n, c)
	if err = k.run(o.Ctx); err != nil {
		return Result{}, nil, err
	}

	// Stage 4: extract and price against the caller's matrix.
	a := k.assignment()
	total := totalCost(cost, a)
	if math.IsInf(total, 0) || math.IsNaN(total) {
		return Result{}, nil, fmt.Errorf("%w: total cost %v overflows float64", ErrInvalidWeight, total)
	}

	return Result{Assignment: a, TotalCost: total}, k, nil
}
