// Package bracket implements the per-vertex bracket list used by the
// cycle-equivalence engine: a concatenable doubly linked list of brackets
// (one per currently open back edge), with O(1) push and top, O(1)
// amortized delete-by-back-edge-id, and a concat whose cost is linear in
// the size of the list being merged in.
//
// A bracket list is owned by exactly one spanning-tree vertex at a time.
// Concat transfers ownership of another list's nodes by relinking
// head/tail pointers, without copying the nodes; the donor list is left empty and must not be used
// again by its former owner.
//
// Complexity:
//
//   - Push:   O(1)
//   - Top:    O(1)
//   - Delete: O(1) amortized, via an internal back-edge-id → node index.
//   - Concat: O(1) to relink the nodes, plus O(k) to move the donor's k
//     id-index entries into this list's index.
//
// Errors:
//
//	ErrEmptyList      - Top called on a list with no live brackets.
//	ErrBracketNotFound - Delete called with an id not present in the list.
package bracket
