// Package spantree builds the rooted spanning tree the cycle-equivalence
// engine operates on: one DFS pass over a bidirected.Component's undirected
// adjacency, classifying every edge as a tree edge or a back edge, and
// recording the per-vertex bookkeeping (dfs number, parent/children,
// incoming/outgoing back edges) the engine needs for its single reverse
// pass.
//
// What:
//
//   - Build constructs a Tree from a bidirected.Component.
//   - Tree edges and back edges share one id space (TreeEdge.ID,
//     BackEdge.ID are drawn from the same counter), per spec.
//   - Tree also hosts AddBackEdge, used only by the cycle-equivalence
//     engine to synthesize capping/simplifying back edges during its pass;
//     synthesized edges are never added to the graph-edge id map.
//
// Complexity: Build is O(V+E).
//
// Errors:
//
//	ErrNotATree              - a cycle among classified tree edges (declared; Build does not return it).
//	ErrVertexOutsideComponent - a root, dfs number, edge index or back-edge id outside the tree or component.
//	ErrDFSNumbersNotPermutation - dfs numbers assigned are not a permutation of [0,n).
package spantree
