package spantree

import "fmt"

// Root returns the dfs number of the tree's root vertex.
func (t *Tree) Root() int { return t.root }

// Size returns the number of vertices in the tree.
func (t *Tree) Size() int { return len(t.vertices) }

// TreeEdgeCount returns the number of tree edges.
func (t *Tree) TreeEdgeCount() int { return len(t.treeEdges) }

// BackEdgeCount returns the number of back edges, including any capping or
// simplifying edges synthesized so far.
func (t *Tree) BackEdgeCount() int { return len(t.backEdges) }

// Vertex returns the vertex at dfs number i.
func (t *Tree) Vertex(i int) (*Vertex, error) {
	if i < 0 || i >= len(t.vertices) {
		return nil, fmt.Errorf("%w: dfs number %d", ErrVertexOutsideComponent, i)
	}

	return &t.vertices[i], nil
}

// TreeEdge returns the tree edge at local index i.
func (t *Tree) TreeEdge(i int) (*TreeEdge, error) {
	if i < 0 || i >= len(t.treeEdges) {
		return nil, fmt.Errorf("%w: tree edge index %d", ErrVertexOutsideComponent, i)
	}

	return &t.treeEdges[i], nil
}

// BackEdge returns the back edge at local index i.
func (t *Tree) BackEdge(i int) (*BackEdge, error) {
	if i < 0 || i >= len(t.backEdges) {
		return nil, fmt.Errorf("%w: back edge index %d", ErrVertexOutsideComponent, i)
	}

	return &t.backEdges[i], nil
}

// BackEdgeByID returns the back edge with the given shared edge id.
func (t *Tree) BackEdgeByID(id int) (*BackEdge, error) {
	idx, ok := t.backEdgeIDToIdx[id]
	if !ok {
		return nil, fmt.Errorf("%w: back edge id %d", ErrVertexOutsideComponent, id)
	}

	return &t.backEdges[idx], nil
}

// GraphEdgeID returns the source-graph edge index that a tree or back edge
// id was classified from, and false if edgeID names a synthesized
// (capping/simplifying) edge with no such source.
func (t *Tree) GraphEdgeID(edgeID int) (int, bool) {
	idx, ok := t.treeEdgeIDToGraphEdge[edgeID]
	return idx, ok
}

// Children returns the tree-edge indices of v's children, in discovery
// order.
func (t *Tree) Children(v int) []int { return t.vertices[v].Children }

// IBE returns the back-edge indices for which v is the target.
func (t *Tree) IBE(v int) []int { return t.vertices[v].IBE }

// OBE returns the back-edge indices for which v is the source.
func (t *Tree) OBE(v int) []int { return t.vertices[v].OBE }

// IsRoot reports whether v is the tree's root.
func (t *Tree) IsRoot(v int) bool { return t.vertices[v].IsRoot() }

// IsLeaf reports whether v has no children.
func (t *Tree) IsLeaf(v int) bool { return t.vertices[v].IsLeaf() }

// ParentEdge returns the tree-edge index connecting v to its parent, and
// false if v is the root.
func (t *Tree) ParentEdge(v int) (int, bool) {
	return t.vertices[v].Parent.Get()
}

// AddBackEdge synthesizes a capping or simplifying back edge from src to
// tgt (both dfs numbers), used only by the cycle-equivalence engine.
// Synthesized edges have no source-graph edge. Capping edges are never
// reported in the final classification; a simplifying edge is reported
// once the engine has assigned it a class. Returns the new edge's shared id.
func (t *Tree) AddBackEdge(src, tgt int, typ EdgeType) int {
	id := t.nextEdgeID
	t.nextEdgeID++
	t.backEdges = append(t.backEdges, BackEdge{ID: id, Src: src, Tgt: tgt, Type: typ})
	idx := len(t.backEdges) - 1
	t.backEdgeIDToIdx[id] = idx
	t.vertices[src].OBE = append(t.vertices[src].OBE, idx)
	t.vertices[tgt].IBE = append(t.vertices[tgt].IBE, idx)

	return id
}
