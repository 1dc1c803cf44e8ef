// SPDX-License-Identifier: MIT

// Package assignment solves the linear assignment problem on a square cost
// matrix: find the permutation σ of [0,n) minimising (or maximising)
// Σ C[i][σ(i)].
//
// Algorithm:
//
//	Kuhn–Munkres (Hungarian) in its shortest-augmenting-path form with row
//	potentials u and column potentials v. Each of the n phases inserts one
//	row, runs a label-setting (Dijkstra-like) search over columns on the
//	reduced costs C[i][j] − u[i] − v[j], augments along the predecessor
//	chain and shifts the potentials, preserving
//
//	  u[i] + v[j] ≤ C[i][j]         for all i, j
//	  u[i] + v[σ(i)] = C[i][σ(i)]   on every matched pair.
//
//	- Complexity: O(n³) time, O(n²) space (a working copy of C).
//	- Deterministic: among equal slacks the smallest column index wins.
//
// Inputs are validated up front: a nil or non-square matrix fails with
// ErrDimensionMismatch, a NaN/±Inf entry with ErrInvalidWeight. Once the
// input is accepted the solver cannot fail; the only runtime outcome other
// than success is ErrCancelled, observed between phases when the context
// passed via WithContext is done.
//
// Maximisation negates the working copy, solves the minimisation and
// recomputes TotalCost from the caller's matrix, so
//
//	Solve(C, WithMaximize()).Assignment == Solve(−C).Assignment
//	Solve(C, WithMaximize()).TotalCost  == −Solve(−C).TotalCost
//
// Solve is a pure function of its input; independent calls may run
// concurrently. SolveBatch does exactly that for a slice of matrices.
package assignment
