// Package assignment_test provides lightweight helpers shared across the
// *_test.go files of this package: deterministic generators, a brute-force
// oracle and a foreign Matrix implementation.
package assignment_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/bimatch/matrix"
	"github.com/stretchr/testify/require"
)

const (
	// epsDual is the tolerance for dual-feasibility checks on float inputs.
	epsDual = 1e-9

	// seedDet seeds every random generator in this package's tests.
	seedDet = int64(20261014)
)

// sliceMatrix is an independent Matrix implementation that can hold NaN/Inf,
// used to exercise validation of foreign matrices.
type sliceMatrix struct{ a [][]float64 }

var _ matrix.Matrix = sliceMatrix{}

func (m sliceMatrix) Rows() int { return len(m.a) }
func (m sliceMatrix) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m sliceMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= len(m.a[i]) {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}
func (m sliceMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= len(m.a[i]) {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}
func (m sliceMatrix) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	for i := range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return sliceMatrix{a: cp}
}

// mustDense builds a Dense from rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// randomInts returns an n×n matrix of integers drawn uniformly from [lo,hi].
// Integer costs keep every permutation sum exact in float64.
func randomInts(rng *rand.Rand, n, lo, hi int) [][]float64 {
	out := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			out[i][j] = float64(lo + rng.Intn(hi-lo+1))
		}
	}

	return out
}

// randomFloats returns an n×n matrix of floats drawn uniformly from [-scale, scale).
func randomFloats(rng *rand.Rand, n int, scale float64) [][]float64 {
	out := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			out[i][j] = (2*rng.Float64() - 1) * scale
		}
	}

	return out
}

// negate returns −a as fresh rows.
func negate(a [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = make([]float64, len(a[i]))
		for j := range a[i] {
			out[i][j] = -a[i][j]
		}
	}

	return out
}

// bruteForce enumerates all n! permutations (Heap's algorithm) and returns
// the best total under the given direction.
func bruteForce(a [][]float64, maximize bool) float64 {
	n := len(a)
	if n == 0 {
		return 0
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := math.Inf(1)
	if maximize {
		best = math.Inf(-1)
	}
	score := func() {
		var s float64
		for i, j := range perm {
			s += a[i][j]
		}
		if (!maximize && s < best) || (maximize && s > best) {
			best = s
		}
	}

	// iterative Heap's algorithm
	c := make([]int, n)
	score()
	i := 1
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			score()
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}

	return best
}

// requirePermutation asserts that a is a bijection on [0,n).
func requirePermutation(t *testing.T, a []int, n int) {
	t.Helper()
	require.Len(t, a, n)
	seen := make([]bool, n)
	for i, j := range a {
		require.Truef(t, j >= 0 && j < n, "row %d mapped to out-of-range column %d", i, j)
		require.Falsef(t, seen[j], "column %d used twice", j)
		seen[j] = true
	}
}

// costOf prices a permutation against rows.
func costOf(a [][]float64, perm []int) float64 {
	var s float64
	for i, j := range perm {
		s += a[i][j]
	}

	return s
}
