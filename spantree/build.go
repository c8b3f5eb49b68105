package spantree

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/flubbles/bidirected"
	"github.com/katalvlaran/flubbles/optional"
)

type frame struct {
	vertex int // local component vertex index
	edges  []int
	cursor int
}

// Build runs one iterative DFS over comp's undirected adjacency, classifying
// every edge as tree or back and assigning pre-order dfs numbers. The
// resulting Tree's vertex slice is indexed directly by dfs number.
// Complexity: O(V+E).
func Build(comp *bidirected.Component, opts ...Option) (*Tree, error) {
	n := comp.Size()
	if n == 0 {
		return nil, ErrEmptyComponent
	}

	o := buildOptions{root: 0}
	for _, opt := range opts {
		opt(&o)
	}
	if o.root < 0 || o.root >= n {
		return nil, fmt.Errorf("%w: root %d", ErrVertexOutsideComponent, o.root)
	}

	t := &Tree{
		vertices:              make([]Vertex, n),
		backEdgeIDToIdx:       make(map[int]int),
		treeEdgeIDToGraphEdge: make(map[int]int),
		root:                  0, // root is always dfs number 0
	}

	visited := make([]bool, n)
	dfsNum := make([]int, n)
	for i := range dfsNum {
		dfsNum[i] = -1
	}
	processed := make([]bool, comp.EdgeCount())

	stack := arraystack.New()
	push := func(v int) {
		stack.Push(&frame{vertex: v, edges: combinedEdges(comp, v)})
	}

	nextDFSNum := 0
	visited[o.root] = true
	dfsNum[o.root] = nextDFSNum
	if err := setTreeVertex(t, comp, nextDFSNum, o.root); err != nil {
		return nil, err
	}
	nextDFSNum++
	push(o.root)

	for !stack.Empty() {
		raw, _ := stack.Peek()
		top := raw.(*frame)

		if top.cursor >= len(top.edges) {
			stack.Pop()
			continue
		}
		eIdx := top.edges[top.cursor]
		top.cursor++
		if processed[eIdx] {
			continue
		}

		e, err := comp.Edge(eIdx)
		if err != nil {
			return nil, err
		}
		_, other := e.OtherEnd(top.vertex)

		switch {
		case other == top.vertex:
			processed[eIdx] = true
			d := dfsNum[top.vertex]
			t.addOrdinaryBackEdge(d, d, eIdx)

		case !visited[other]:
			processed[eIdx] = true
			visited[other] = true
			dfsNum[other] = nextDFSNum
			if err := setTreeVertex(t, comp, nextDFSNum, other); err != nil {
				return nil, err
			}

			parentDFS, childDFS := dfsNum[top.vertex], nextDFSNum
			id := t.nextEdgeID
			t.nextEdgeID++
			t.treeEdges = append(t.treeEdges, TreeEdge{ID: id, Parent: parentDFS, Child: childDFS})
			teIdx := len(t.treeEdges) - 1
			t.vertices[parentDFS].Children = append(t.vertices[parentDFS].Children, teIdx)
			t.vertices[childDFS].Parent = optional.Some(teIdx)
			t.treeEdgeIDToGraphEdge[id] = eIdx

			nextDFSNum++
			push(other)

		default:
			processed[eIdx] = true
			src, tgt := dfsNum[top.vertex], dfsNum[other]
			if tgt > src {
				src, tgt = tgt, src
			}
			t.addOrdinaryBackEdge(src, tgt, eIdx)
		}
	}

	if nextDFSNum != n {
		return nil, fmt.Errorf("%w: component has %d vertices, dfs reached %d (not connected from root %d)",
			ErrDFSNumbersNotPermutation, n, nextDFSNum, o.root)
	}

	return t, nil
}

func setTreeVertex(t *Tree, comp *bidirected.Component, dfsNum, local int) error {
	v, err := comp.Vertex(local)
	if err != nil {
		return err
	}
	t.vertices[dfsNum] = Vertex{
		DFSNum:  dfsNum,
		Name:    v.Name,
		Type:    Real,
		Touched: true,
	}

	return nil
}

func combinedEdges(comp *bidirected.Component, local int) []int {
	v, err := comp.Vertex(local)
	if err != nil {
		return nil
	}
	out := make([]int, 0, len(v.EdgesLeft)+len(v.EdgesRight))
	out = append(out, v.EdgesLeft...)
	out = append(out, v.EdgesRight...)

	return out
}

// addOrdinaryBackEdge records a back edge present in the source graph
// (as opposed to one synthesized later by the cycle-equivalence engine)
// and returns its shared edge id.
func (t *Tree) addOrdinaryBackEdge(src, tgt, graphEdgeIdx int) int {
	id := t.nextEdgeID
	t.nextEdgeID++
	t.backEdges = append(t.backEdges, BackEdge{ID: id, Src: src, Tgt: tgt, Type: Ordinary})
	idx := len(t.backEdges) - 1
	t.backEdgeIDToIdx[id] = idx
	t.vertices[src].OBE = append(t.vertices[src].OBE, idx)
	t.vertices[tgt].IBE = append(t.vertices[tgt].IBE, idx)
	t.treeEdgeIDToGraphEdge[id] = graphEdgeIdx

	return id
}
