package cycleequiv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flubbles/bidirected"
	"github.com/katalvlaran/flubbles/cycleequiv"
	"github.com/katalvlaran/flubbles/spantree"
)

func buildAndRun(t *testing.T, comp *bidirected.Component, opts ...cycleequiv.Option) (*spantree.Tree, *cycleequiv.Result) {
	t.Helper()
	tree, err := spantree.Build(comp)
	require.NoError(t, err)

	res, err := cycleequiv.New(tree, opts...).Run()
	require.NoError(t, err)

	return tree, res
}

// TestEngine_SingleCycle covers spec scenario A: a triangle is one simple
// cycle, so all three edges land in the same class.
func TestEngine_SingleCycle(t *testing.T) {
	g := bidirected.NewGraph()
	a, _ := g.AddVertex("A", 1)
	b, _ := g.AddVertex("A", 2)
	c, _ := g.AddVertex("A", 3)
	_, _ = g.AddEdge(a, bidirected.SideRight, b, bidirected.SideLeft)
	_, _ = g.AddEdge(b, bidirected.SideRight, c, bidirected.SideLeft)
	_, _ = g.AddEdge(c, bidirected.SideRight, a, bidirected.SideLeft)

	comps, err := g.Componentize()
	require.NoError(t, err)

	tree, res := buildAndRun(t, comps[0])

	assert.Len(t, res.TreeEdgeClasses, 2)
	assert.Len(t, res.BackEdgeClasses, 1)

	classes := make(map[int]bool)
	for _, c := range res.TreeEdgeClasses {
		classes[c] = true
	}
	for _, c := range res.BackEdgeClasses {
		classes[c] = true
	}
	assert.Len(t, classes, 1, "all three edges share one class")

	v2, err := tree.Vertex(2)
	require.NoError(t, err)
	assert.Equal(t, 0, v2.Hi.MustGet())
}

// TestEngine_SelfLoop covers spec scenario D.
func TestEngine_SelfLoop(t *testing.T) {
	g := bidirected.NewGraph()
	v, _ := g.AddVertex("A", 1)
	_, err := g.AddEdge(v, bidirected.SideRight, v, bidirected.SideLeft)
	require.NoError(t, err)

	comps, err := g.Componentize()
	require.NoError(t, err)

	_, res := buildAndRun(t, comps[0])

	assert.Len(t, res.BackEdgeClasses, 1, "the self-loop gets its own class")
	assert.Equal(t, 0, res.VertexReport[0].Hi, "hi(v) == dfs(v) for the only vertex")
}

// TestEngine_Hairpin covers spec scenario E: a path whose tip has no back
// edges opens a hairpin at the tip, synthesizing a simplifying edge.
func TestEngine_Hairpin(t *testing.T) {
	g := bidirected.NewGraph()
	s, _ := g.AddVertex("A", 1)
	a, _ := g.AddVertex("A", 2)
	b, _ := g.AddVertex("A", 3)
	c, _ := g.AddVertex("A", 4)
	_, _ = g.AddEdge(s, bidirected.SideRight, a, bidirected.SideLeft)
	_, _ = g.AddEdge(a, bidirected.SideRight, b, bidirected.SideLeft)
	_, _ = g.AddEdge(b, bidirected.SideRight, c, bidirected.SideLeft)

	comps, err := g.Componentize()
	require.NoError(t, err)

	tree, res := buildAndRun(t, comps[0])

	require.True(t, res.VertexReport[3].OpenedHairpin, "tip c opens the hairpin")

	closedCount := 0
	for _, r := range res.VertexReport {
		if r.ClosedHairpin {
			closedCount++
		}
	}
	assert.Equal(t, 1, closedCount, "the hairpin closes exactly once")

	assert.Equal(t, 2, tree.BackEdgeCount(),
		"a simplifying edge synthesized at the tip, plus one more at the root once its own incoming copy is retired")
}

// TestEngine_TwoComponents covers spec scenario F: each component is run
// independently and produces its own self-consistent classification.
func TestEngine_TwoComponents(t *testing.T) {
	g := bidirected.NewGraph()
	var v [6]int
	for i := range v {
		v[i], _ = g.AddVertex("A", int64(i+1))
	}
	_, _ = g.AddEdge(v[0], bidirected.SideRight, v[1], bidirected.SideLeft)
	_, _ = g.AddEdge(v[1], bidirected.SideRight, v[2], bidirected.SideLeft)
	_, _ = g.AddEdge(v[2], bidirected.SideRight, v[0], bidirected.SideLeft)
	_, _ = g.AddEdge(v[3], bidirected.SideRight, v[4], bidirected.SideLeft)
	_, _ = g.AddEdge(v[4], bidirected.SideRight, v[5], bidirected.SideLeft)
	_, _ = g.AddEdge(v[5], bidirected.SideRight, v[3], bidirected.SideLeft)

	comps, err := g.Componentize()
	require.NoError(t, err)
	require.Len(t, comps, 2)

	for _, comp := range comps {
		_, res := buildAndRun(t, comp)
		classes := make(map[int]bool)
		for _, c := range res.TreeEdgeClasses {
			classes[c] = true
		}
		for _, c := range res.BackEdgeClasses {
			classes[c] = true
		}
		assert.Len(t, classes, 1)
	}
}

// TestEngine_SeriesBubbles covers spec scenario B: two bubbles chained
// through a shared cut vertex. Every tree edge resolves to a finite class
// (invariant 1 from spec.md's testable-properties list), and the two
// bubbles are not fused into a single class.
func TestEngine_SeriesBubbles(t *testing.T) {
	g := bidirected.NewGraph()
	names := map[string]int{}
	for _, n := range []string{"s", "a", "b", "t", "u", "v", "w"} {
		idx, _ := g.AddVertex("A", int64(len(names)+1))
		names[n] = idx
	}
	add := func(x, y string) {
		_, err := g.AddEdge(names[x], bidirected.SideRight, names[y], bidirected.SideLeft)
		require.NoError(t, err)
	}
	add("s", "a")
	add("s", "b")
	add("a", "t")
	add("b", "t")
	add("t", "u")
	add("t", "v")
	add("u", "w")
	add("v", "w")

	comps, err := g.Componentize()
	require.NoError(t, err)
	require.Len(t, comps, 1)

	tree, res := buildAndRun(t, comps[0])

	assert.Equal(t, tree.TreeEdgeCount(), len(res.TreeEdgeClasses), "every tree edge gets a class")

	classes := make(map[int]bool)
	for _, c := range res.TreeEdgeClasses {
		classes[c] = true
	}
	for _, c := range res.BackEdgeClasses {
		classes[c] = true
	}
	assert.Greater(t, len(classes), 1, "the two bubbles must not collapse into a single class")
}

// TestEngine_Cancel verifies a context cancelled before Run observes it
// between vertices surfaces ErrCancelled and nothing else.
func TestEngine_Cancel(t *testing.T) {
	g := bidirected.NewGraph()
	a, _ := g.AddVertex("A", 1)
	b, _ := g.AddVertex("A", 2)
	_, err := g.AddEdge(a, bidirected.SideRight, b, bidirected.SideLeft)
	require.NoError(t, err)

	comps, err := g.Componentize()
	require.NoError(t, err)
	tree, err := spantree.Build(comps[0])
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = cycleequiv.New(tree, cycleequiv.WithCancel(ctx)).Run()
	assert.ErrorIs(t, err, cycleequiv.ErrCancelled)
}
