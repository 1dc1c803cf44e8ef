// SPDX-License-Identifier: MIT
// Package assignment - Kuhn–Munkres kernel (shortest augmenting path with potentials).
//
// Layout:
//   - Rows and columns are 1-based inside the kernel; index 0 is a virtual
//     column whose "match" is the row currently being inserted. This removes
//     the special case for the phase root from both the search and the
//     augmentation loop.
//   - p[j]   row matched to column j (0 = free), j ∈ [1..n].
//   - way[j] previous column on the shortest alternating path to j.
//   - minv[j] smallest reduced cost found so far to reach column j.
//   - used[j] column j is already labelled (permanently) in this phase.
//
// Invariants between phases:
//   - u[i] + v[j] ≤ c[i][j] for all rows i, columns j (dual feasibility);
//   - u[i] + v[j] = c[i][j] whenever p[j] == i (complementary slackness).
package assignment

import (
	"context"
	"fmt"
	"math"
)

// kernel holds the call-local working state for one solve.
type kernel struct {
	n    int       // matrix order
	c    []float64 // flat row-major working costs (0-based), len n*n
	u    []float64 // row potentials, 1-based, len n+1
	v    []float64 // column potentials, 1-based, len n+1 (v[0] absorbs the root shift)
	p    []int     // column → matched row (1-based), len n+1
	way  []int     // predecessor column on the augmenting path, len n+1
	minv []float64 // tentative reduced-cost labels, len n+1
	used []bool    // permanent labels, len n+1
}

// newKernel allocates all auxiliary arrays once and seeds the potentials:
// u[i] = min_j c[i][j], v[j] = 0, which is dual-feasible for any finite c.
//
// Complexity: O(n²) for the row minima, O(n) extra space.
func newKernel(n int, c []float64) *kernel {
	k := &kernel{
		n:    n,
		c:    c,
		u:    make([]float64, n+1),
		v:    make([]float64, n+1),
		p:    make([]int, n+1),
		way:  make([]int, n+1),
		minv: make([]float64, n+1),
		used: make([]bool, n+1),
	}

	var (
		i, j int
		m    float64
	)
	for i = 1; i <= n; i++ {
		m = c[(i-1)*n] // first entry of row i
		for j = 1; j < n; j++ {
			if c[(i-1)*n+j] < m {
				m = c[(i-1)*n+j]
			}
		}
		k.u[i] = m
	}

	return k
}

// run executes the n phases, checking ctx before each one.
// Returns ErrCancelled (wrapping ctx.Err()) if the context is done.
//
// Complexity: O(n³) time overall.
func (k *kernel) run(ctx context.Context) error {
	var row int
	for row = 1; row <= k.n; row++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: after %d of %d phases: %w", ErrCancelled, row-1, k.n, err)
		}
		if err := k.phase(row); err != nil {
			return err
		}
	}

	return nil
}

// phase inserts row into the matching: it grows a shortest-path tree over
// columns on reduced costs, stops at the first free column reached, shifts
// the potentials by the discovered slacks and flips the augmenting path.
//
// Tie-breaking: columns are scanned in ascending order and a new minimum
// must be strictly smaller, so among equal slacks the lowest column index
// is labelled first.
//
// Reduced costs that overflow float64 leave no finite label to settle; the
// phase then fails with ErrInvalidWeight instead of looping.
//
// Complexity: O(n²) per phase.
func (k *kernel) phase(row int) error {
	var (
		n     = k.n
		j     int     // scan column
		j0    int     // column whose matched row is being expanded
		j1    int     // next column to label permanently
		i0    int     // row matched to j0
		delta float64 // smallest tentative label among unlabelled columns
		cur   float64 // reduced cost of (i0, j)
	)

	// Stage 1: reset labels; the virtual column 0 carries the new row.
	k.p[0] = row
	for j = 0; j <= n; j++ {
		k.minv[j] = math.Inf(1)
		k.used[j] = false
	}
	j0 = 0

	// Stage 2: label-setting search until a free column is labelled.
	for {
		k.used[j0] = true
		i0 = k.p[j0]
		delta = math.Inf(1)
		j1 = 0

		for j = 1; j <= n; j++ {
			if k.used[j] {
				continue
			}
			cur = k.c[(i0-1)*n+(j-1)] - k.u[i0] - k.v[j]
			if cur < k.minv[j] {
				k.minv[j] = cur
				k.way[j] = j0
			}
			if k.minv[j] < delta {
				delta = k.minv[j]
				j1 = j
			}
		}
		if j1 == 0 || math.IsInf(delta, 0) {
			return fmt.Errorf("%w: reduced costs overflow float64 in phase %d", ErrInvalidWeight, row)
		}

		// Stage 3: shift potentials. Labelled columns and their rows move by
		// delta (keeping their tree edges tight); pending labels shrink by delta.
		for j = 0; j <= n; j++ {
			if k.used[j] {
				k.u[k.p[j]] += delta
				k.v[j] -= delta
			} else {
				k.minv[j] -= delta
			}
		}

		j0 = j1
		if k.p[j0] == 0 {
			break // reached a free column
		}
	}

	// Stage 4: augment along way[] back to the virtual root column.
	for j0 != 0 {
		j1 = k.way[j0]
		k.p[j0] = k.p[j1]
		j0 = j1
	}

	return nil
}

// assignment converts the column→row table into a 0-based row→column permutation.
func (k *kernel) assignment() []int {
	out := make([]int, k.n)
	var j int
	for j = 1; j <= k.n; j++ {
		out[k.p[j]-1] = j - 1
	}

	return out
}

// duals returns 0-based copies of the row and column potentials.
func (k *kernel) duals() (u, v []float64) {
	u = append([]float64(nil), k.u[1:]...)
	v = append([]float64(nil), k.v[1:]...)

	return u, v
}
