package cycleequiv

import (
	"context"
	"math"

	"github.com/katalvlaran/flubbles/spantree"
)

// infinity stands in for the original's "undefined" dfs-number sentinel: no
// back edge or child reaches that far up the tree.
const infinity = math.MaxInt

// ArticulatedFunc reports whether the vertex at the given dfs number is an
// articulation point, used to skip it when computing hi₂. The source never
// populates this predicate; callers that have computed articulation points
// separately may supply one.
type ArticulatedFunc func(dfsNum int) bool

// hairpinPhase is the embedded hairpin detector's state.
type hairpinPhase int

const (
	// hairpinOutside is the default state: no open hairpin region.
	hairpinOutside hairpinPhase = iota
	// hairpinInside means a hairpin boundary is currently open.
	hairpinInside
)

// VertexReport carries the per-vertex output the engine produces, indexed
// by dfs number.
type VertexReport struct {
	Hi               int
	FinalBracketSize int
	OpenedHairpin    bool
	ClosedHairpin    bool
}

// Result is everything Run produces: per-edge class assignments and
// per-vertex diagnostics.
type Result struct {
	// TreeEdgeClasses maps a tree edge's shared id to its class.
	TreeEdgeClasses map[int]int
	// BackEdgeClasses maps a non-capping back edge's shared id to its
	// class. Capping edges are excluded per the report-boundary filter.
	BackEdgeClasses map[int]int
	// VertexReport is indexed by dfs number.
	VertexReport []VertexReport
}

// Engine runs one cycle-equivalence pass over a *spantree.Tree.
type Engine struct {
	tree         *spantree.Tree
	classCounter int
	articulated  ArticulatedFunc
	ctx          context.Context

	hairpin  hairpinPhase
	boundary int // dfs number of the current/last hairpin boundary vertex
}

// Option configures an Engine.
type Option func(*Engine)

// WithArticulatedFunc overrides the hi₂ articulation-skip predicate.
// Defaults to a predicate that always reports false.
func WithArticulatedFunc(fn ArticulatedFunc) Option {
	return func(e *Engine) { e.articulated = fn }
}

// WithCancel wires a context checked cooperatively between vertices; Run
// returns ErrCancelled the first time it observes ctx.Done() closed.
func WithCancel(ctx context.Context) Option {
	return func(e *Engine) { e.ctx = ctx }
}

// New returns an Engine ready to run over t.
func New(t *spantree.Tree, opts ...Option) *Engine {
	e := &Engine{
		tree:        t,
		articulated: func(int) bool { return false },
		boundary:    -1,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) newClass() int {
	id := e.classCounter
	e.classCounter++

	return id
}
