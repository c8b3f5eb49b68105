package cycleequiv

import "errors"

// Sentinel errors for the cycle-equivalence engine.
var (
	// ErrInvalidInput indicates the tree handed to Run is malformed: not
	// connected, a back edge outside the component, or similar. Run performs
	// no input validation and does not return this error; a failed lookup
	// on a malformed tree is reported as ErrInternalInvariant.
	ErrInvalidInput = errors.New("cycleequiv: invalid input tree")

	// ErrInternalInvariant indicates a bracket-list precondition was
	// violated mid-run: an engine bug, never a caller error.
	ErrInternalInvariant = errors.New("cycleequiv: internal invariant violated")

	// ErrCancelled indicates the caller's context was done when checked
	// between vertices; partial results are discarded.
	ErrCancelled = errors.New("cycleequiv: cancelled")
)
