package bidirected

import "fmt"

// Neighbors returns the oriented neighbors reachable from (v, o) in one
// step, per spec: "outgoing" neighbors are reached through v's right side
// if o is Forward, left side if o is Reverse; for each such edge to
// (v', side'), the neighbor's orientation is Forward if side' is SideLeft,
// else Reverse. Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int, o Orientation) ([]OrientedVertex, error) {
	vert, err := g.Vertex(v)
	if err != nil {
		return nil, err
	}

	exitSide := SideRight
	if o == Reverse {
		exitSide = SideLeft
	}

	var edgeIdxs []int
	if exitSide == SideLeft {
		edgeIdxs = vert.EdgesLeft
	} else {
		edgeIdxs = vert.EdgesRight
	}

	out := make([]OrientedVertex, 0, len(edgeIdxs))
	for _, eIdx := range edgeIdxs {
		e := &g.edges[eIdx]
		otherSide, otherV := e.OtherEnd(v)
		nOrient := Forward
		if otherSide != SideLeft {
			nOrient = Reverse
		}
		out = append(out, OrientedVertex{Vertex: otherV, Orientation: nOrient})
	}

	return out, nil
}

// Incoming returns the oriented neighbors that reach (v, o) in one step:
// the mirror of Neighbors, reached through v's left side if o is Forward,
// right side if o is Reverse.
func (g *Graph) Incoming(v int, o Orientation) ([]OrientedVertex, error) {
	mirrored := Forward
	if o == Forward {
		mirrored = Reverse
	}

	out, err := g.Neighbors(v, mirrored)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Orientation == Forward {
			out[i].Orientation = Reverse
		} else {
			out[i].Orientation = Forward
		}
	}

	return out, nil
}

// SharedEdge returns the single edge index connecting (v1,o1) to (v2,o2).
// Fails with ErrInvalidGraph naming both endpoints if there is not exactly
// one shared edge. Complexity: O(deg(v1)).
func (g *Graph) SharedEdge(v1 int, o1 Orientation, v2 int, o2 Orientation) (int, error) {
	vert1, err := g.Vertex(v1)
	if err != nil {
		return 0, err
	}
	if _, err = g.Vertex(v2); err != nil {
		return 0, err
	}

	exitSide := SideRight
	if o1 == Reverse {
		exitSide = SideLeft
	}
	var edgeIdxs []int
	if exitSide == SideLeft {
		edgeIdxs = vert1.EdgesLeft
	} else {
		edgeIdxs = vert1.EdgesRight
	}

	matches := make([]int, 0, 1)
	for _, eIdx := range edgeIdxs {
		otherSide, otherV := g.edges[eIdx].OtherEnd(v1)
		nOrient := Forward
		if otherSide != SideLeft {
			nOrient = Reverse
		}
		if otherV == v2 && nOrient == o2 {
			matches = append(matches, eIdx)
		}
	}

	if len(matches) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one shared edge between vertex %d and vertex %d, found %d",
			ErrInvalidGraph, v1, v2, len(matches))
	}

	return matches[0], nil
}
