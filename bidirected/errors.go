package bidirected

import "errors"

// Sentinel errors for bidirected graph operations.
var (
	// ErrEmptyLabel indicates a vertex was constructed with an empty label.
	ErrEmptyLabel = errors.New("bidirected: vertex label is empty")

	// ErrNotFound indicates a query referenced an unknown vertex name or index.
	ErrNotFound = errors.New("bidirected: vertex not found")

	// ErrInvalidGraph indicates a shared-edge lookup between two oriented
	// vertices found zero or more than one shared edge.
	ErrInvalidGraph = errors.New("bidirected: invalid graph")

	// ErrPathCrossesComponent indicates a path's steps span more than one
	// weakly-connected component; this is a graph-loading error, not an
	// engine concern, and is always surfaced rather than dropped.
	ErrPathCrossesComponent = errors.New("bidirected: path crosses component boundary")
)
