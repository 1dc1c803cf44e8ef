package bfs_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/bimatch/bfs"
	"github.com/katalvlaran/bimatch/core"
)

// BenchmarkForest_Isolated grows with V, not V·components.
func BenchmarkForest_Isolated(b *testing.B) {
	for _, n := range []int{1000, 10000} {
		g := core.NewGraph()
		for i := 0; i < n; i++ {
			if err := g.AddVertex("v" + strconv.Itoa(i)); err != nil {
				b.Fatal(err)
			}
		}

		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for it := 0; it < b.N; it++ {
				if _, err := bfs.Forest(g, bfs.WithOddCycleCheck()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
