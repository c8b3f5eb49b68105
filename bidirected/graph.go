package bidirected

import "fmt"

// AddVertex appends a vertex with the given label and stable external name,
// returning its dense index. Complexity: O(1) amortized.
func (g *Graph) AddVertex(label string, name int64) (int, error) {
	if label == "" {
		return 0, ErrEmptyLabel
	}

	idx := len(g.vertices)
	g.vertices = append(g.vertices, newVertex(label, name))
	g.nameToIdx[name] = idx

	return idx, nil
}

// AddEdge connects (v1,side1)-(v2,side2), registering the new edge's index
// into both endpoints' side sets. Self-loops (v1 == v2) are permitted.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(v1 int, side1 Side, v2 int, side2 Side) (int, error) {
	if v1 < 0 || v1 >= len(g.vertices) {
		return 0, fmt.Errorf("%w: vertex index %d", ErrNotFound, v1)
	}
	if v2 < 0 || v2 >= len(g.vertices) {
		return 0, fmt.Errorf("%w: vertex index %d", ErrNotFound, v2)
	}

	idx := len(g.edges)
	g.edges = append(g.edges, Edge{V1: v1, Side1: side1, V2: v2, Side2: side2, Refs: make(map[int]struct{})})

	addToSide(&g.vertices[v1], side1, idx)
	addToSide(&g.vertices[v2], side2, idx)

	return idx, nil
}

// addToSide appends edgeIdx to the given side's slice. AddEdge always hands
// in strictly increasing indices, so the slice stays sorted ascending
// without an explicit sort, mirroring the original's std::set iteration
// order.
func addToSide(v *Vertex, side Side, edgeIdx int) {
	if side == SideLeft {
		v.EdgesLeft = append(v.EdgesLeft, edgeIdx)
	} else {
		v.EdgesRight = append(v.EdgesRight, edgeIdx)
	}
}

// AddPath stores p and records path membership on each step's vertex.
// Complexity: O(len(p.Steps)).
func (g *Graph) AddPath(p Path) error {
	for i, step := range p.Steps {
		if step.Vertex < 0 || step.Vertex >= len(g.vertices) {
			return fmt.Errorf("%w: path %q step %d references vertex %d", ErrNotFound, p.Name, i, step.Vertex)
		}
		g.vertices[step.Vertex].Paths = append(g.vertices[step.Vertex].Paths, PathMembership{PathID: p.ID, StepIndex: i})
	}
	g.paths[p.ID] = p

	return nil
}

// VertexByName returns the dense index of the vertex with external name n.
// Complexity: O(1).
func (g *Graph) VertexByName(n int64) (int, error) {
	idx, ok := g.nameToIdx[n]
	if !ok {
		return 0, fmt.Errorf("%w: name %d", ErrNotFound, n)
	}

	return idx, nil
}

// Vertex returns the vertex at idx.
func (g *Graph) Vertex(idx int) (*Vertex, error) {
	if idx < 0 || idx >= len(g.vertices) {
		return nil, fmt.Errorf("%w: vertex index %d", ErrNotFound, idx)
	}

	return &g.vertices[idx], nil
}

// Edge returns the edge at idx.
func (g *Graph) Edge(idx int) (*Edge, error) {
	if idx < 0 || idx >= len(g.edges) {
		return nil, fmt.Errorf("%w: edge index %d", ErrNotFound, idx)
	}

	return &g.edges[idx], nil
}

// Size returns the number of vertices in the graph.
func (g *Graph) Size() int { return len(g.vertices) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// ToggleReversed flips the Reversed flag of the vertex at idx and returns
// its new value.
func (g *Graph) ToggleReversed(idx int) bool {
	g.vertices[idx].Reversed = !g.vertices[idx].Reversed
	return g.vertices[idx].Reversed
}

// ReverseComplement returns the reverse complement of a DNA sequence built
// from the IUPAC bases A/C/G/T (and their lowercase forms); any other rune
// passes through unchanged, reversed in position only.
func ReverseComplement(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[len(seq)-1-i] = complementBase(seq[i])
	}

	return string(out)
}

func complementBase(b byte) byte {
	switch b {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	case 'a':
		return 't'
	case 't':
		return 'a'
	case 'c':
		return 'g'
	case 'g':
		return 'c'
	default:
		return b
	}
}
