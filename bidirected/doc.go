// Package bidirected implements the bidirected sequence graph that is the
// input shape the cycle-equivalence engine consumes: an undirected graph
// where each edge attaches to a specific side (left or right) of each
// endpoint, modeling double-stranded sequence adjacency the way a pangenome
// variation graph does.
//
// What:
//
//   - Graph holds vertices, edges, and paths as loaded from outside this
//     package (GFA parsing is an external collaborator, see spec's scope).
//   - Componentize splits a Graph into maximal weakly-connected Components,
//     each with dense local vertex indices, ready for spanning-tree
//     construction.
//   - Orientation-aware neighbor lookup and tip/haplotype-endpoint queries
//     support the spanning tree builder and downstream bubble callers.
//
// Complexity:
//
//   - AddVertex / AddEdge:          O(1) amortized.
//   - AddPath:                      O(len(p.Steps)).
//   - Neighbors / SharedEdge:        O(deg(v)).
//   - Componentize:                 O(V+E) total across all components.
//
// Errors:
//
//	ErrEmptyLabel           - vertex constructed with an empty label.
//	ErrNotFound             - unknown vertex name or index queried.
//	ErrInvalidGraph         - shared-edge lookup found zero or multiple edges.
//	ErrPathCrossesComponent - a path's steps span more than one component.
package bidirected
