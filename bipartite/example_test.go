package bipartite_test

import (
	"context"
	"os"
	"strings"

	"github.com/katalvlaran/bimatch/assignment"
	"github.com/katalvlaran/bimatch/bipartite"
)

// ExampleMatch pairs two workers with two tasks at minimum total cost.
func ExampleMatch() {
	in, _ := bipartite.DecodeJSON(strings.NewReader(`{
		"alice": {"db": 3, "web": 1},
		"bob":   {"db": 2, "web": 4}
	}`))
	rep, _ := bipartite.Match(context.Background(), in, assignment.Minimize)
	_ = bipartite.WriteText(os.Stdout, rep)
	// Output:
	// alice -> web (1)
	// bob -> db (2)
	// total: 3
}
