// Package bipartite_test - end-to-end benchmarks: decode → split → build → solve.
package bipartite_test

import (
	"bytes"
	"context"
	"strconv"
	"testing"

	"github.com/katalvlaran/bimatch/assignment"
	"github.com/katalvlaran/bimatch/bipartite"
	"github.com/katalvlaran/bimatch/builder"
)

func BenchmarkMatch(b *testing.B) {
	for _, n := range []int{16, 64, 128} {
		in, err := builder.CompleteBipartite(n, builder.WithSeed(1), builder.WithWeightFn(builder.IntWeightFn(1, 100)))
		if err != nil {
			b.Fatal(err)
		}
		var doc bytes.Buffer
		if err = bipartite.EncodeJSON(&doc, in); err != nil {
			b.Fatal(err)
		}

		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for it := 0; it < b.N; it++ {
				parsed, err := bipartite.DecodeJSON(bytes.NewReader(doc.Bytes()))
				if err != nil {
					b.Fatal(err)
				}
				if _, err = bipartite.Match(context.Background(), parsed, assignment.Minimize); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
