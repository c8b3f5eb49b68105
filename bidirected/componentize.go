package bidirected

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Component is a maximal weakly-connected subgraph of a Graph, reindexed to
// dense local vertex indices. globalIndex[local] recovers the original
// Graph's vertex index for a given local one.
type Component struct {
	vertices    []Vertex
	edges       []Edge
	paths       map[int]Path
	globalIndex []int

	tips       []TipRef
	hapStarts  map[TipRef]struct{}
	hapEnds    map[TipRef]struct{}
}

// Vertex returns the vertex at local index idx.
func (c *Component) Vertex(idx int) (*Vertex, error) {
	if idx < 0 || idx >= len(c.vertices) {
		return nil, fmt.Errorf("%w: component vertex index %d", ErrNotFound, idx)
	}

	return &c.vertices[idx], nil
}

// Edge returns the edge at idx within the component.
func (c *Component) Edge(idx int) (*Edge, error) {
	if idx < 0 || idx >= len(c.edges) {
		return nil, fmt.Errorf("%w: component edge index %d", ErrNotFound, idx)
	}

	return &c.edges[idx], nil
}

// Size returns the number of vertices in the component.
func (c *Component) Size() int { return len(c.vertices) }

// EdgeCount returns the number of edges in the component.
func (c *Component) EdgeCount() int { return len(c.edges) }

// GlobalIndex maps a local vertex index back to its index in the source
// Graph.
func (c *Component) GlobalIndex(local int) int { return c.globalIndex[local] }

// Tips returns one TipRef per tip vertex, naming a side with no incident
// edges; a vertex with both sides empty is listed once, on SideLeft (see
// Vertex.TipSide).
func (c *Component) Tips() []TipRef { return append([]TipRef(nil), c.tips...) }

// HaplotypeStarts returns tips that are also the first step of some path.
func (c *Component) HaplotypeStarts() []TipRef { return tipRefKeys(c.hapStarts) }

// HaplotypeEnds returns tips that are also the last step of some path.
func (c *Component) HaplotypeEnds() []TipRef { return tipRefKeys(c.hapEnds) }

// GraphStarts returns the intersection of tips and haplotype-start nodes.
func (c *Component) GraphStarts() []TipRef { return intersectTips(c.tips, c.hapStarts) }

// GraphEnds returns the intersection of tips and haplotype-end nodes.
func (c *Component) GraphEnds() []TipRef { return intersectTips(c.tips, c.hapEnds) }

// OrphanTips returns tips that are neither a haplotype start nor end.
func (c *Component) OrphanTips() []TipRef {
	out := make([]TipRef, 0, len(c.tips))
	for _, tr := range c.tips {
		_, isStart := c.hapStarts[tr]
		_, isEnd := c.hapEnds[tr]
		if !isStart && !isEnd {
			out = append(out, tr)
		}
	}

	return out
}

func tipRefKeys(m map[TipRef]struct{}) []TipRef {
	out := make([]TipRef, 0, len(m))
	for tr := range m {
		out = append(out, tr)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Vertex != out[j].Vertex {
			return out[i].Vertex < out[j].Vertex
		}
		return out[i].Side < out[j].Side
	})

	return out
}

func intersectTips(tips []TipRef, set map[TipRef]struct{}) []TipRef {
	out := make([]TipRef, 0)
	for _, tr := range tips {
		if _, ok := set[tr]; ok {
			out = append(out, tr)
		}
	}

	return out
}

// Componentize splits g into maximal weakly-connected components using an
// iterative DFS over undirected adjacency (either side), via a gods
// arraystack/hashset instead of a hand-rolled slice/map pair. Every
// original edge lands in exactly one component; a path whose steps span
// more than one component is a graph-loading error (ErrPathCrossesComponent),
// surfaced rather than silently dropped.
func (g *Graph) Componentize() ([]*Component, error) {
	n := g.Size()
	visited := hashset.New()
	components := make([]*Component, 0)

	pathComponent := make(map[int]int, len(g.paths)) // path id -> component index, absent until seen

	for start := 0; start < n; start++ {
		if visited.Contains(start) {
			continue
		}

		comp, globalToLocal, err := g.buildComponent(start, visited)
		if err != nil {
			return nil, err
		}
		compIdx := len(components)
		components = append(components, comp)

		if err := assignPaths(g, comp, globalToLocal, compIdx, pathComponent); err != nil {
			return nil, err
		}
	}

	return components, nil
}

// buildComponent grows one component from start via iterative DFS, pushing
// and popping global vertex indices through a gods arraystack and tracking
// visitation through a gods hashset.
func (g *Graph) buildComponent(start int, visited *hashset.Set) (*Component, map[int]int, error) {
	stack := arraystack.New()
	stack.Push(start)
	visited.Add(start)

	order := make([]int, 0)

	for !stack.Empty() {
		top, _ := stack.Peek()
		v := top.(int)

		vert := &g.vertices[v]
		advanced := false
		for _, eIdx := range vert.EdgesLeft {
			if advance(g, eIdx, v, visited, stack) {
				advanced = true
			}
		}
		for _, eIdx := range vert.EdgesRight {
			if advance(g, eIdx, v, visited, stack) {
				advanced = true
			}
		}

		if !advanced {
			stack.Pop()
			order = append(order, v)
		}
	}

	sort.Ints(order)

	globalToLocal := make(map[int]int, len(order))
	comp := &Component{
		paths:     make(map[int]Path),
		hapStarts: make(map[TipRef]struct{}),
		hapEnds:   make(map[TipRef]struct{}),
	}

	for local, global := range order {
		globalToLocal[global] = local
		comp.globalIndex = append(comp.globalIndex, global)
		v := g.vertices[global]
		localV := newVertex(v.Label, v.Name)
		localV.Reversed = v.Reversed
		comp.vertices = append(comp.vertices, localV)
	}

	edgeSeen := hashset.New()
	for _, global := range order {
		v := &g.vertices[global]
		for _, eIdx := range v.EdgesLeft {
			recordComponentEdge(g, comp, globalToLocal, eIdx, edgeSeen, SideLeft)
		}
		for _, eIdx := range v.EdgesRight {
			recordComponentEdge(g, comp, globalToLocal, eIdx, edgeSeen, SideRight)
		}
	}

	for local := range comp.globalIndex {
		if tipSide, ok := comp.vertices[local].TipSide(); ok {
			comp.tips = append(comp.tips, TipRef{Vertex: local, Side: tipSide})
		}
	}

	return comp, globalToLocal, nil
}

func advance(g *Graph, eIdx, v int, visited *hashset.Set, stack *arraystack.Stack) bool {
	_, other := g.edges[eIdx].OtherEnd(v)
	if other != v && !visited.Contains(other) {
		visited.Add(other)
		stack.Push(other)
		return true
	}

	return false
}

func recordComponentEdge(g *Graph, comp *Component, globalToLocal map[int]int, eIdx int, edgeSeen *hashset.Set, side Side) {
	if edgeSeen.Contains(eIdx) {
		return
	}
	edgeSeen.Add(eIdx)

	e := g.edges[eIdx]
	comp.edges = append(comp.edges, Edge{
		V1:    globalToLocal[e.V1],
		Side1: e.Side1,
		V2:    globalToLocal[e.V2],
		Side2: e.Side2,
		Class: e.Class,
		Refs:  e.Refs,
	})

	localIdx := len(comp.edges) - 1
	addToSide(&comp.vertices[globalToLocal[e.V1]], e.Side1, localIdx)
	if e.V1 != e.V2 || e.Side1 != e.Side2 {
		addToSide(&comp.vertices[globalToLocal[e.V2]], e.Side2, localIdx)
	}
}

func assignPaths(g *Graph, comp *Component, globalToLocal map[int]int, compIdx int, pathComponent map[int]int) error {
	for pid, p := range g.paths {
		inThisComponent := false
		for _, step := range p.Steps {
			if _, ok := globalToLocal[step.Vertex]; ok {
				inThisComponent = true
				break
			}
		}
		if !inThisComponent {
			continue
		}

		if prev, seen := pathComponent[pid]; seen && prev != compIdx {
			return fmt.Errorf("%w: path %q (id %d)", ErrPathCrossesComponent, p.Name, pid)
		}
		pathComponent[pid] = compIdx

		localSteps := make([]Step, len(p.Steps))
		for i, step := range p.Steps {
			local, ok := globalToLocal[step.Vertex]
			if !ok {
				return fmt.Errorf("%w: path %q (id %d)", ErrPathCrossesComponent, p.Name, pid)
			}
			localSteps[i] = Step{Vertex: local, Orientation: step.Orientation}
			comp.vertices[local].Paths = append(comp.vertices[local].Paths, PathMembership{PathID: pid, StepIndex: i})
		}

		if len(localSteps) > 0 {
			first, last := localSteps[0], localSteps[len(localSteps)-1]
			markEndpoint(comp, comp.hapStarts, first.Vertex)
			markEndpoint(comp, comp.hapEnds, last.Vertex)
		}

		comp.paths[pid] = Path{ID: pid, Name: p.Name, Circular: p.Circular, Steps: localSteps}
	}

	return nil
}

func markEndpoint(comp *Component, set map[TipRef]struct{}, local int) {
	if side, ok := comp.vertices[local].TipSide(); ok {
		set[TipRef{Vertex: local, Side: side}] = struct{}{}
	}
}
