package bidirected_test

import (
	"fmt"

	"github.com/katalvlaran/flubbles/bidirected"
)

// ExampleGraph_Componentize splits a graph made of two disjoint triangles
// into its two weakly-connected components (spec.md scenario F).
func ExampleGraph_Componentize() {
	g := bidirected.NewGraph()
	var v [6]int
	for i := range v {
		v[i], _ = g.AddVertex("ACGT", int64(i+1))
	}
	_, _ = g.AddEdge(v[0], bidirected.SideRight, v[1], bidirected.SideLeft)
	_, _ = g.AddEdge(v[1], bidirected.SideRight, v[2], bidirected.SideLeft)
	_, _ = g.AddEdge(v[2], bidirected.SideRight, v[0], bidirected.SideLeft)
	_, _ = g.AddEdge(v[3], bidirected.SideRight, v[4], bidirected.SideLeft)
	_, _ = g.AddEdge(v[4], bidirected.SideRight, v[5], bidirected.SideLeft)
	_, _ = g.AddEdge(v[5], bidirected.SideRight, v[3], bidirected.SideLeft)

	comps, err := g.Componentize()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("components:", len(comps))
	for _, c := range comps {
		fmt.Println("vertices:", c.Size(), "edges:", c.EdgeCount())
	}

	// Output:
	// components: 2
	// vertices: 3 edges: 3
	// vertices: 3 edges: 3
}
