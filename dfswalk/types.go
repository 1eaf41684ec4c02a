package dfswalk

import "github.com/lvlath/horvert/embedding"

// Options configures a Walk.
type Options struct {
	// OnVisit, if non-nil, is invoked when a vertex is first discovered
	// (preorder), before any of its children are visited. Returning an
	// error aborts the walk.
	OnVisit func(v embedding.VertexID, depth int) error

	// OnExit, if non-nil, is invoked after every descendant of a vertex has
	// been fully visited (postorder). Returning an error aborts the walk.
	OnExit func(v embedding.VertexID, depth int) error
}

// Option configures a Walk.
type Option func(*Options)

// WithOnVisit sets the preorder hook.
func WithOnVisit(fn func(v embedding.VertexID, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit sets the postorder hook.
func WithOnExit(fn func(v embedding.VertexID, depth int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

func defaultOptions() Options { return Options{} }

// Result collects the traversal's preorder sequence and per-vertex depth.
type Result struct {
	// Order holds every visited vertex in preorder.
	Order []embedding.VertexID
	// Depth maps a visited vertex to its distance from the walk's root.
	Depth map[embedding.VertexID]int
}
