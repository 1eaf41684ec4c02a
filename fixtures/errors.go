package fixtures

import "errors"

// ErrTooFewVertices indicates a generator's size parameter is below the
// minimum its graph family requires, mirroring builder.ErrTooFewVertices.
var ErrTooFewVertices = errors.New("fixtures: too few vertices")

// ErrInvalidShape indicates a generator's shape parameters (e.g. grid
// dimensions) are out of range.
var ErrInvalidShape = errors.New("fixtures: invalid shape")
