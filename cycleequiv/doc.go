// Package cycleequiv computes cycle-equivalence classes on a spanning tree
// produced by package spantree: a single reverse-DFS pass that maintains a
// bracket list per vertex and assigns a class id to every tree edge and to
// every non-capping back edge retired during the pass, such that two edges
// share a class iff they are crossed by exactly the same set of simple
// cycles. The simplifying back edge synthesized at the root when the root's
// own bracket list empties is never retired and receives no class.
//
// What:
//
//   - New builds an Engine over a *spantree.Tree.
//   - Run performs the pass, synthesizing capping and simplifying back
//     edges on the tree as it goes, and returns a Result.
//   - The hairpin state machine (Outside/Inside) is embedded in Run; a
//     hairpin opens at any non-dummy vertex whose bracket list is empty
//     after its pushes and deletes (the root included, not only
//     tip-adjacent vertices), and is bounded by a synthesized simplifying
//     back edge.
//
// Complexity: O(V+E) for the hi computation, pushes and deletes, plus the
// bracket-list merges: each child's list is merged into its parent's in
// time linear in that list's size (see bracket.List.Concat).
//
// Errors:
//
//	ErrInvalidInput       - declared for a malformed tree; Run does not
//	                        validate its input and does not return it.
//	ErrInternalInvariant  - a bracket-list precondition was violated mid-run.
//	ErrCancelled          - the caller's context fired between vertices.
package cycleequiv
