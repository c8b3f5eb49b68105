package spantree

import "errors"

// Sentinel errors for spanning-tree construction and access.
var (
	// ErrNotATree indicates the classified tree edges form a cycle. Build's
	// DFS only makes tree edges to unvisited vertices, so it cannot form
	// one; Build does not check for a cycle and does not return this error.
	ErrNotATree = errors.New("spantree: tree edges do not form a tree")

	// ErrVertexOutsideComponent indicates an index outside the tree or the
	// component: a Build root that is not a component vertex, a dfs number,
	// tree-edge or back-edge index out of range, or an unknown back-edge id.
	ErrVertexOutsideComponent = errors.New("spantree: vertex outside component")

	// ErrDFSNumbersNotPermutation indicates the dfs numbers assigned during
	// the build are not a permutation of [0, n).
	ErrDFSNumbersNotPermutation = errors.New("spantree: dfs numbers are not a permutation of [0,n)")

	// ErrEmptyComponent indicates Build was called on a component with no
	// vertices.
	ErrEmptyComponent = errors.New("spantree: component has no vertices")
)
