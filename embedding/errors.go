package embedding

import "errors"

// Sentinel errors for the embedding package.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex slot
	// outside the graph's current vertex index bound.
	ErrVertexNotFound = errors.New("embedding: vertex not found")

	// ErrArcNotFound indicates an operation referenced an arc slot outside
	// the graph's current arc index bound.
	ErrArcNotFound = errors.New("embedding: arc not found")

	// ErrNegativeCapacity indicates a non-positive vertex capacity or a
	// negative edge capacity was requested from NewContainer.
	ErrNegativeCapacity = errors.New("embedding: capacity must be > 0")

	// ErrArcCapacityFixed indicates a caller tried to grow the arc capacity
	// of a Graph after construction. The original Boyer-Myrvold C
	// implementation rejects this too (_DrawPlanar_EnsureArcCapacity always
	// returns NOTOK): resizing would invalidate every ArcID already handed
	// out to a consumer.
	ErrArcCapacityFixed = errors.New("embedding: arc capacity is fixed after construction")

	// ErrSelfLoop indicates AddEdge was called with from == to; this
	// container has no representation for self-loops, which are not part
	// of the planar embeddings this module consumes.
	ErrSelfLoop = errors.New("embedding: self-loops are not supported")

	// ErrExternalCollaborator indicates the caller asked this module to
	// perform work that belongs to an external collaborator explicitly out
	// of scope here: planarity testing, isomorphic-graph generation, or any
	// other function of a full Boyer-Myrvold embedder. This module only
	// consumes an already-successful embedding.
	ErrExternalCollaborator = errors.New("embedding: requires an external planarity collaborator")
)
