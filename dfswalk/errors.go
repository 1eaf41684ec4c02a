package dfswalk

import "errors"

// Sentinel errors for the dfswalk package.
var (
	// ErrGraphNil is returned when a nil embedding.Graph is passed to Walk.
	ErrGraphNil = errors.New("dfswalk: graph is nil")

	// ErrRootNotFound indicates the requested root vertex is outside the
	// graph's vertex index bound.
	ErrRootNotFound = errors.New("dfswalk: root vertex not found")

	// ErrRootNotTreeRoot indicates the requested root has a DFS parent, so
	// it cannot be the start of a tree traversal.
	ErrRootNotTreeRoot = errors.New("dfswalk: root vertex is not a DFS tree root")
)
