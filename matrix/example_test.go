package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/bimatch/matrix"
)

// ExampleNewDenseFrom builds a cost matrix from rows and prints it.
func ExampleNewDenseFrom() {
	m, err := matrix.NewDenseFrom([][]float64{
		{4, 2, 8},
		{4, 3, 7},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(m)
	// Output:
	// [4, 2, 8]
	// [4, 3, 7]
}
