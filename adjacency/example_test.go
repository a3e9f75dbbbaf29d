package adjacency_test

import (
	"fmt"

	"github.com/katalvlaran/geomigrate/adjacency"
)

// ExampleNew builds an index for three regions laid out in a row:
//
//	[1]──[2]──[3]
//
// Regions 1↔2 and 2↔3 border each other; 1 and 3 do not.
func ExampleNew() {
	idx, err := adjacency.New([][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(idx.IsAdjacent(1, 2))
	fmt.Println(idx.IsAdjacent(3, 2))
	fmt.Println(idx.IsAdjacent(1, 3))
	// Output:
	// true
	// true
	// false
}
