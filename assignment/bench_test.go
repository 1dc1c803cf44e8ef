// Package assignment_test - benchmarks for the Hungarian kernel.
//
// Policy:
//   - Deterministic inputs (fixed seed), built outside the timer.
//   - Integer costs with few distinct values stress tie handling.
package assignment_test

import (
	"context"
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/bimatch/assignment"
	"github.com/katalvlaran/bimatch/matrix"
)

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{16, 64, 256} {
		rng := rand.New(rand.NewSource(seedDet))
		m := mustDense(b, randomFloats(rng, n, 1000))

		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for it := 0; it < b.N; it++ {
				if _, err := assignment.Solve(m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSolve_Ties(b *testing.B) {
	rng := rand.New(rand.NewSource(seedDet))
	m := mustDense(b, randomInts(rng, 128, 0, 2))

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		if _, err := assignment.Solve(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolveBatch(b *testing.B) {
	rng := rand.New(rand.NewSource(seedDet))
	costs := make([]matrix.Matrix, 32)
	for i := range costs {
		costs[i] = mustDense(b, randomFloats(rng, 64, 100))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		if _, err := assignment.SolveBatch(context.Background(), costs); err != nil {
			b.Fatal(err)
		}
	}
}
