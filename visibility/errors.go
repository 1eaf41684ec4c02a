package visibility

import (
	"errors"
	"fmt"
)

// The four error categories spec.md §7 names. Every concrete failure this
// package returns wraps exactly one of these, so a caller can triage with
// errors.Is without parsing messages.
var (
	// ErrContractViolation marks a hook invoked outside its legal embedder
	// state, an unresolved TIE surviving into the vertex-position resolver,
	// or mismatched tie breadcrumbs. Fatal, never retried.
	ErrContractViolation = errors.New("visibility: contract violation")

	// ErrUnsupportedInput marks an embedding with edge holes, or a request
	// to draw a non-planar result. Fatal.
	ErrUnsupportedInput = errors.New("visibility: unsupported input")

	// ErrResourceExhaustion marks an allocation failure in a list-collection
	// or a parallel array. Fatal, but reversible by the host: it may reset
	// and retry with a smaller input.
	ErrResourceExhaustion = errors.New("visibility: resource exhaustion")

	// ErrIntegrityFailure marks coordinates violating the §3 invariants or
	// the §4.8 crossing check. Indicates a bug in the resolver, surfaced for
	// diagnosis rather than corrected.
	ErrIntegrityFailure = errors.New("visibility: integrity failure")
)

// Sentinel errors for specific failures, each wrapping one of the four
// categories above.
var (
	// ErrNotAttached indicates a Context method was called before Attach
	// or after Detach.
	ErrNotAttached = fmt.Errorf("visibility: context not attached: %w", ErrContractViolation)

	// ErrAlreadyAttached indicates Attach was called on a graph that
	// already has a Context registered.
	ErrAlreadyAttached = fmt.Errorf("visibility: graph already has an attached context: %w", ErrContractViolation)

	// ErrUnresolvedTie indicates the vertex-position resolver encountered a
	// vertex still flagged TIE.
	ErrUnresolvedTie = fmt.Errorf("visibility: unresolved tie at vertex-position resolution: %w", ErrContractViolation)

	// ErrBreadcrumbMismatch indicates BreakTie found the two complementary
	// tie breadcrumbs disagree.
	ErrBreadcrumbMismatch = fmt.Errorf("visibility: tie breadcrumb mismatch: %w", ErrContractViolation)

	// ErrEdgeHole indicates an edge slot in [0, EdgeCount()) has no valid
	// endpoints, so the embedding is not compact.
	ErrEdgeHole = fmt.Errorf("visibility: edge hole present: %w", ErrUnsupportedInput)

	// ErrNotPlanar indicates the resolver was asked to run on a result the
	// caller has not certified planar.
	ErrNotPlanar = fmt.Errorf("visibility: embedding is not certified planar: %w", ErrUnsupportedInput)

	// ErrDFSIndexOrder indicates BreakTie found w and wPred to be the same
	// vertex, so comparing their indices cannot tell ancestor from
	// descendant. BreakTie does not otherwise check the
	// ancestor-has-smaller-index contract embedding.Graph documents.
	ErrDFSIndexOrder = fmt.Errorf("visibility: DFS index ordering violated: %w", ErrContractViolation)

	// ErrCodecFormat indicates a coordinate block failed to parse.
	ErrCodecFormat = fmt.Errorf("visibility: malformed coordinate block: %w", ErrUnsupportedInput)
)
