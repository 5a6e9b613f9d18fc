package paths_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/paths"
)

// ExampleReconstruct walks a predecessor table produced by a shortest-path
// run back from the destination and returns the route in forward order.
func ExampleReconstruct() {
	prev := map[string]string{
		"A": "",
		"C": "A",
		"B": "C",
		"D": "B",
	}

	route, err := paths.Reconstruct(prev, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(route)
	// Output:
	// [A C B D]
}
