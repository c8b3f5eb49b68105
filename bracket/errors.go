package bracket

import "errors"

// Sentinel errors for bracket-list operations.
var (
	// ErrEmptyList indicates Top was called on a list with no live brackets.
	ErrEmptyList = errors.New("bracket: list is empty")

	// ErrBracketNotFound indicates Delete referenced a back-edge id that is
	// not present in the list (already deleted, or never pushed here).
	ErrBracketNotFound = errors.New("bracket: bracket not found for back-edge id")
)
