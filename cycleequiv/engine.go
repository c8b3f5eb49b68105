package cycleequiv

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/flubbles/bracket"
	"github.com/katalvlaran/flubbles/optional"
	"github.com/katalvlaran/flubbles/spantree"
)

// Run performs the single reverse-DFS cycle-equivalence pass: for each
// vertex from the highest dfs number down to the root, it computes hi,
// merges child bracket lists, retires completed back edges, pushes new
// ones, synthesizes capping/simplifying edges where the algorithm calls
// for them, and assigns the class of v's parent tree edge.
func (e *Engine) Run() (*Result, error) {
	t := e.tree
	n := t.Size()
	reports := make([]VertexReport, n)

	for v := n - 1; v >= 0; v-- {
		if e.ctx != nil {
			select {
			case <-e.ctx.Done():
				return nil, ErrCancelled
			default:
			}
		}

		vert, err := t.Vertex(v)
		if err != nil {
			return nil, e.invariant(v, "look up current vertex", err)
		}

		isRoot := t.IsRoot(v)
		isLeaf := t.IsLeaf(v)
		e.checkClose(v, isLeaf, isRoot, reports)

		// (a) compute hi.
		hi0 := infinity
		for _, beIdx := range t.OBE(v) {
			be, err := t.BackEdge(beIdx)
			if err != nil {
				return nil, e.invariant(v, "read outgoing back edge", err)
			}
			if be.Tgt < hi0 {
				hi0 = be.Tgt
			}
		}

		children := t.Children(v)
		childHi := make([]int, len(children))
		childDFS := make([]int, len(children))
		hi1 := infinity
		for i, teIdx := range children {
			te, err := t.TreeEdge(teIdx)
			if err != nil {
				return nil, e.invariant(v, "read child tree edge", err)
			}
			cv, err := t.Vertex(te.Child)
			if err != nil {
				return nil, e.invariant(v, "read child vertex", err)
			}
			h := cv.Hi.OrElse(infinity)
			childHi[i], childDFS[i] = h, te.Child
			if h < hi1 {
				hi1 = h
			}
		}

		hiChildDFS := -1
		for i := range children {
			if childHi[i] == hi1 {
				hiChildDFS = childDFS[i]
				break
			}
		}

		hi2 := infinity
		for i := range children {
			if childDFS[i] != hiChildDFS && childHi[i] < v && !e.articulated(childDFS[i]) && childHi[i] < hi2 {
				hi2 = childHi[i]
			}
		}

		vert.Hi = optional.Some(minInt(hi0, hi1))

		// (b) merge bracket lists.
		mine := ensureBrackets(vert)
		for _, teIdx := range children {
			te, err := t.TreeEdge(teIdx)
			if err != nil {
				return nil, e.invariant(v, "read child tree edge for merge", err)
			}
			cv, err := t.Vertex(te.Child)
			if err != nil {
				return nil, e.invariant(v, "read child vertex for merge", err)
			}
			if cv.Brackets != nil {
				mine.Concat(cv.Brackets)
			}
		}

		// (d) push outgoing back edges, ahead of (c) below: a self-loop is
		// both its own incoming and outgoing back edge, so it must be
		// pushed before the delete pass looks for it. Reordering is safe
		// for every other edge, since push/delete on distinct bracket ids
		// commute and both finish before (g) reads the list.
		for _, beIdx := range t.OBE(v) {
			be, err := t.BackEdge(beIdx)
			if err != nil {
				return nil, e.invariant(v, "read outgoing back edge for push", err)
			}
			mine.Push(be.ID)
		}

		// (c) delete completed incoming back edges.
		for _, beIdx := range t.IBE(v) {
			be, err := t.BackEdge(beIdx)
			if err != nil {
				return nil, e.invariant(v, "read incoming back edge", err)
			}
			if err := mine.Delete(be.ID); err != nil {
				return nil, e.invariant(v, fmt.Sprintf("delete bracket for back-edge id %d", be.ID), err)
			}
			if be.Type != spantree.Capping && !be.Class.IsSet() {
				be.Class = optional.Some(e.newClass())
			}
		}

		// (e) capping edge synthesis.
		if hi2 < hi0 {
			id := t.AddBackEdge(v, hi2, spantree.Capping)
			mine.Push(id)
		}

		// (f) hairpin / simplifying edge.
		if mine.Empty() {
			if vert.Type != spantree.Dummy {
				id := t.AddBackEdge(v, t.Root(), spantree.Simplifying)
				mine.Push(id)
				vert.Hi = optional.Some(t.Root())
				e.open(v, reports)
			}
		} else if e.hairpin == hairpinInside {
			top, err := mine.Top()
			if err != nil {
				return nil, e.invariant(v, "read top bracket for hairpin tracking", err)
			}
			be, err := t.BackEdgeByID(top.BackEdgeID)
			if err != nil {
				return nil, e.invariant(v, "resolve top bracket's back edge", err)
			}
			e.trackBoundary(v, be.Type == spantree.Simplifying)
		}

		reports[v].Hi = vert.Hi.OrElse(infinity)
		reports[v].FinalBracketSize = mine.Size()

		// (g) class assignment for v's parent tree edge.
		if !isRoot {
			top, err := mine.Top()
			if err != nil {
				return nil, e.invariant(v, "read top bracket for class assignment", err)
			}

			if mine.Size() != top.RecentSize {
				top.RecentSize = mine.Size()
				top.RecentClass = optional.Some(e.newClass())
			}

			teIdx, _ := t.ParentEdge(v)
			te, err := t.TreeEdge(teIdx)
			if err != nil {
				return nil, e.invariant(v, "read parent tree edge", err)
			}
			te.Class = top.RecentClass

			if top.RecentSize == 1 {
				be, err := t.BackEdgeByID(top.BackEdgeID)
				if err != nil {
					return nil, e.invariant(v, "resolve sole bracket's back edge", err)
				}
				be.Class = top.RecentClass
			}
		}
	}

	result := &Result{
		TreeEdgeClasses: make(map[int]int),
		BackEdgeClasses: make(map[int]int),
		VertexReport:    reports,
	}
	for i := 0; i < t.TreeEdgeCount(); i++ {
		te, err := t.TreeEdge(i)
		if err != nil {
			return nil, e.invariant(-1, "collect tree edge classes", err)
		}
		if c, ok := te.Class.Get(); ok {
			result.TreeEdgeClasses[te.ID] = c
		}
	}
	for i := 0; i < t.BackEdgeCount(); i++ {
		be, err := t.BackEdge(i)
		if err != nil {
			return nil, e.invariant(-1, "collect back edge classes", err)
		}
		if be.Type == spantree.Capping {
			continue
		}
		if c, ok := be.Class.Get(); ok {
			result.BackEdgeClasses[be.ID] = c
		}
	}

	return result, nil
}

func ensureBrackets(v *spantree.Vertex) *bracket.List {
	if v.Brackets == nil {
		v.Brackets = bracket.New()
	}

	return v.Brackets
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// invariant wraps cause as ErrInternalInvariant, naming the vertex and
// operation in progress, with a captured stack trace.
func (e *Engine) invariant(v int, op string, cause error) error {
	var name int64 = -1
	if vert, err := e.tree.Vertex(v); err == nil {
		name = vert.Name
	}
	wrapped := fmt.Errorf("%w: %s at vertex (dfs %d, name %d): %w", ErrInternalInvariant, op, v, name, cause)

	return pkgerrors.WithStack(wrapped)
}
