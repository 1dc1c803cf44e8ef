// SPDX-License-Identifier: MIT

package assignment

import (
	"errors"
	"strings"
)

// Sentinel errors for assignment solving.
var (
	// ErrDimensionMismatch is returned when the cost matrix is nil, ragged
	// or not square.
	ErrDimensionMismatch = errors.New("assignment: dimension mismatch")

	// ErrInvalidWeight is returned when a cost entry is NaN or ±Inf.
	ErrInvalidWeight = errors.New("assignment: invalid weight")

	// ErrCancelled is returned when the context is done between two phases.
	// The error also wraps the context error.
	ErrCancelled = errors.New("assignment: cancelled")

	// ErrUnknownObjective is returned for an unrecognised Objective value or name.
	ErrUnknownObjective = errors.New("assignment: unknown objective")
)

// Objective selects the optimisation direction.
type Objective int

const (
	// Minimize selects the permutation of least total cost (default).
	Minimize Objective = iota

	// Maximize selects the permutation of greatest total cost.
	Maximize
)

// String returns the canonical lower-case name.
func (o Objective) String() string {
	switch o {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return "unknown"
	}
}

// ParseObjective accepts "min", "minimize", "max" and "maximize"
// (case-insensitive, surrounding blanks ignored). The empty string maps to
// Minimize.
func ParseObjective(s string) (Objective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "min", "minimize", "minimise":
		return Minimize, nil
	case "max", "maximize", "maximise":
		return Maximize, nil
	default:
		return Minimize, ErrUnknownObjective
	}
}

// Result holds the outcome of a solve.
type Result struct {
	// Assignment maps row i to column Assignment[i]; it is a permutation of [0,n).
	Assignment []int

	// TotalCost is Σ C[i][Assignment[i]], recomputed from the input matrix.
	TotalCost float64
}

// Pairs returns the matched (row, column) pairs in row order.
func (r Result) Pairs() [][2]int {
	out := make([][2]int, len(r.Assignment))
	for i, j := range r.Assignment {
		out[i] = [2]int{i, j}
	}

	return out
}

// Inverse returns the column-to-row mapping.
func (r Result) Inverse() []int {
	out := make([]int, len(r.Assignment))
	for i, j := range r.Assignment {
		out[j] = i
	}

	return out
}
