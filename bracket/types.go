package bracket

import "github.com/katalvlaran/flubbles/optional"

// Bracket is a record representing one currently open back edge in a
// vertex's bracket list. RecentSize/RecentClass cache the list size and
// class id last observed at this bracket by the cycle-equivalence engine's
// top-of-stack optimization (step (g) of the engine's reverse-DFS pass);
// they live here, not on the back edge itself, since they are bracket-list
// working state that only matters while the bracket is live.
type Bracket struct {
	// BackEdgeID is the id of the back edge this bracket represents.
	BackEdgeID int

	// RecentSize is the list size recorded the last time this bracket was
	// the topmost live bracket and the engine inspected it.
	RecentSize int

	// RecentClass is the equivalence class assigned the last time this
	// bracket's RecentSize changed. Absent until first observed.
	RecentClass optional.Int
}

// node is one element of the intrusive doubly linked list backing List.
type node struct {
	b          Bracket
	prev, next *node
}

// List is a per-vertex concatenable doubly linked list of brackets, plus an
// index from back-edge id to list node for O(1) deletion.
type List struct {
	head, tail *node
	byID       map[int]*node
	size       int
}

// New returns an empty bracket list.
func New() *List {
	return &List{byID: make(map[int]*node)}
}
