package drawlist

import "errors"

// Sentinel errors for the drawlist package.
var (
	// ErrCapacity indicates NewList was asked for a non-positive capacity.
	ErrCapacity = errors.New("drawlist: capacity must be > 0")

	// ErrIndexRange indicates an index outside [0, N) was passed to a List
	// method.
	ErrIndexRange = errors.New("drawlist: index out of range")

	// ErrAlreadyLinked indicates an insert was attempted on an index already
	// present in the list.
	ErrAlreadyLinked = errors.New("drawlist: index already in list")

	// ErrNotLinked indicates Remove, Next, or Prev was called on an index
	// not currently present in the list.
	ErrNotLinked = errors.New("drawlist: index not in list")
)
