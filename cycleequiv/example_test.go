package cycleequiv_test

import (
	"fmt"

	"github.com/katalvlaran/flubbles/bidirected"
	"github.com/katalvlaran/flubbles/cycleequiv"
	"github.com/katalvlaran/flubbles/spantree"
)

// ExampleEngine_Run classifies a three-vertex cycle: all edges are
// cycle-equivalent, so they all land in one class.
func ExampleEngine_Run() {
	g := bidirected.NewGraph()
	a, _ := g.AddVertex("ACGT", 1)
	b, _ := g.AddVertex("ACGT", 2)
	c, _ := g.AddVertex("ACGT", 3)
	_, _ = g.AddEdge(a, bidirected.SideRight, b, bidirected.SideLeft)
	_, _ = g.AddEdge(b, bidirected.SideRight, c, bidirected.SideLeft)
	_, _ = g.AddEdge(c, bidirected.SideRight, a, bidirected.SideLeft)

	comps, _ := g.Componentize()
	tree, err := spantree.Build(comps[0])
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := cycleequiv.New(tree).Run()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	classes := make(map[int]bool)
	for _, cls := range result.TreeEdgeClasses {
		classes[cls] = true
	}
	for _, cls := range result.BackEdgeClasses {
		classes[cls] = true
	}
	fmt.Println("distinct classes:", len(classes))

	// Output:
	// distinct classes: 1
}
