package bracket_test

import (
	"fmt"

	"github.com/katalvlaran/flubbles/bracket"
)

// ExampleList demonstrates the push/concat/delete lifecycle a spanning-tree
// vertex drives during the reverse-DFS pass: a child's list is merged in,
// then a completed back edge is deleted from the front.
func ExampleList() {
	parent := bracket.New()
	parent.Push(1) // parent's own outgoing back edge, id 1

	child := bracket.New()
	child.Push(2) // child's outgoing back edge, id 2
	parent.Concat(child)

	top, _ := parent.Top()
	fmt.Println("top:", top.BackEdgeID)
	fmt.Println("size:", parent.Size())

	_ = parent.Delete(2)
	top, _ = parent.Top()
	fmt.Println("top after delete:", top.BackEdgeID)

	// Output:
	// top: 2
	// size: 2
	// top after delete: 1
}
