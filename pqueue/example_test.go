package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/pqueue"
)

// ExampleMinPriorityQueue shows the insert / decrease-key / extract cycle
// exactly as the shortest-path engines drive it.
func ExampleMinPriorityQueue() {
	q := pqueue.New()
	q.Insert("B", 40)
	q.Insert("C", 10)
	q.Insert("D", 99)

	// A cheaper route to D was discovered: reposition it in O(log n).
	_ = q.DecreaseKey("D", 5)

	for q.Len() > 0 {
		key, priority, _ := q.ExtractMin()
		fmt.Printf("%s at %d\n", key, priority)
	}

	// Output:
	// D at 5
	// C at 10
	// B at 40
}
