package spantree

import (
	"github.com/katalvlaran/flubbles/bracket"
	"github.com/katalvlaran/flubbles/optional"
)

// VertexType distinguishes a real graph vertex from a dummy one (a
// placeholder tree node with no corresponding bidirected.Vertex, e.g. a
// synthetic stop node some callers attach past the graph's natural ends).
type VertexType int

const (
	// Real marks a vertex that corresponds to a bidirected.Vertex.
	Real VertexType = iota
	// Dummy marks a placeholder vertex with no bidirected.Vertex backing it.
	Dummy
)

// Color is DOT-visualization metadata carried on tree/back edges; consumed
// only by an external graph-rendering collaborator (out of scope here).
type Color int

const (
	// ColorNone is the default, unset color.
	ColorNone Color = iota
	// ColorGray marks an edge gray in DOT output.
	ColorGray
	// ColorBlack marks an edge black in DOT output.
	ColorBlack
)

// EdgeType distinguishes an ordinary back edge from one synthesized by the
// cycle-equivalence engine.
type EdgeType int

const (
	// Ordinary is a back edge present in the original graph.
	Ordinary EdgeType = iota
	// Capping is a back edge synthesized by the engine to preserve
	// bracket-stack correctness across reconverging subtrees; never
	// reported in the final classification.
	Capping
	// Simplifying is a back edge synthesized by the engine from a hairpin
	// boundary vertex to the root.
	Simplifying
)

// TreeEdge is a parent-to-child edge in the spanning tree.
type TreeEdge struct {
	ID            int
	Parent, Child int
	Color         Color
	Class         optional.Int
}

// BackEdge is a non-tree edge, oriented from the deeper-in-DFS endpoint
// (Src) to the shallower one (Tgt); self-loops have Src == Tgt.
type BackEdge struct {
	ID    int
	Src   int
	Tgt   int
	Type  EdgeType
	Color Color
	Class optional.Int
}

// IsCapping reports whether be is a capping back edge (never reported).
func (be *BackEdge) IsCapping() bool { return be.Type == Capping }

// Vertex is one node of the spanning tree: its dfs number, its parent tree
// edge (absent only for the root), its child tree edges in deterministic
// discovery order, its incoming/outgoing back-edge indices, its hi value,
// and the bracket list it owns once first touched.
type Vertex struct {
	DFSNum   int
	Name     int64
	Type     VertexType
	Parent   optional.Int // tree-edge index
	Children []int        // tree-edge indices, insertion order
	IBE      []int        // back-edge indices, this vertex is the target
	OBE      []int        // back-edge indices, this vertex is the source
	Hi       optional.Int
	Brackets *bracket.List
	Touched  bool
}

// IsRoot reports whether v has no parent tree edge.
func (v *Vertex) IsRoot() bool { return !v.Parent.IsSet() }

// IsLeaf reports whether v has no children.
func (v *Vertex) IsLeaf() bool { return len(v.Children) == 0 }

// Tree is the rooted spanning tree of one bidirected.Component: an
// arena-and-index structure (spec's "cyclic ownership avoidance" design
// note) — every cross-reference is an integer index into vertices,
// treeEdges, or backEdges, never a pointer, so Concat and friends can't
// form a reference cycle across arenas.
type Tree struct {
	vertices  []Vertex
	treeEdges []TreeEdge
	backEdges []BackEdge
	root      int

	backEdgeIDToIdx       map[int]int
	treeEdgeIDToGraphEdge map[int]int
	nextEdgeID            int
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	root int
}

// WithRoot selects the DFS root by local component vertex index, overriding
// the default (the first vertex in the component's deterministic order).
func WithRoot(idx int) Option {
	return func(o *buildOptions) { o.root = idx }
}
