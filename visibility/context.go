package visibility

import (
	"fmt"
	"sync"

	"github.com/lvlath/horvert/embedding"
)

// registry tracks the one Context-per-graph discipline spec.md §3 Ownership
// and §9 ("global / process-wide state... model it as a one-time
// initialized registry owned by the host graph facility") describe. It
// replaces the original's process-wide extension identifier with a plain
// map keyed by graph identity; a graph value must be comparable (every
// embedding.Graph implementation handed to this package is expected to be a
// pointer type, as embedding.Container is).
type Registry struct {
	mu    sync.Mutex
	byKey map[embedding.Graph]*Context
}

var defaultRegistry = &Registry{byKey: make(map[embedding.Graph]*Context)}

// Attach registers a new Context for g using the package-wide default
// registry. Returns ErrAlreadyAttached if g already has one.
func Attach(g embedding.Graph) (*Context, error) {
	return defaultRegistry.Attach(g)
}

// Attach registers a new Context for g in this registry.
func (r *Registry) Attach(g embedding.Graph) (*Context, error) {
	if g == nil {
		return nil, fmt.Errorf("visibility: Attach: %w", ErrContractViolation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byKey[g]; ok {
		return nil, fmt.Errorf("visibility: Attach: %w", ErrAlreadyAttached)
	}

	ctx := newContext(g, r)
	r.byKey[g] = ctx
	return ctx, nil
}

func (r *Registry) detach(g embedding.Graph) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byKey, g)
}

// Context is the drawing context spec.md §3 Ownership describes: it owns
// the per-vertex and per-edge auxiliary arrays for exactly one
// embedding.Graph, for the lifetime between Attach and Detach.
type Context struct {
	graph    embedding.Graph
	registry *Registry

	vinfo []VertexInfo
	erec  []EdgeRecord

	attached bool
}

func newContext(g embedding.Graph, r *Registry) *Context {
	ctx := &Context{graph: g, registry: r}
	ctx.reinitLocked()
	ctx.attached = true
	return ctx
}

// Detach releases the context's resources and removes it from its
// registry. A detached Context must not be used again.
func (c *Context) Detach() {
	if !c.attached {
		return
	}
	c.attached = false
	c.vinfo = nil
	c.erec = nil
	c.registry.detach(c.graph)
}

// Reinit re-zeroes the auxiliary arrays without reallocating the Context
// itself, for a host that reuses one graph object across multiple
// embeddings (graphDrawPlanar_Extensions.c's
// _DrawPlanar_ReinitializeGraph). Arc capacity cannot grow after Attach;
// Reinit only re-sizes if the graph's vertex/edge bounds shrank or grew
// within the graph's own fixed capacity.
func (c *Context) Reinit() error {
	if !c.attached {
		return fmt.Errorf("visibility: Reinit: %w", ErrNotAttached)
	}
	c.reinitLocked()
	return nil
}

func (c *Context) reinitLocked() {
	nv := c.graph.VertexIndexBound()
	ne := c.graph.EdgeCount()

	if cap(c.vinfo) < nv {
		c.vinfo = make([]VertexInfo, nv)
	} else {
		c.vinfo = c.vinfo[:nv]
	}
	for v := 0; v < nv; v++ {
		c.vinfo[v] = newVertexInfo()
	}

	if cap(c.erec) < ne {
		c.erec = make([]EdgeRecord, ne)
	} else {
		c.erec = c.erec[:ne]
	}
	for e := 0; e < ne; e++ {
		c.erec[e] = EdgeRecord{}
	}
}

func (c *Context) requireAttached() error {
	if !c.attached {
		return fmt.Errorf("visibility: %w", ErrNotAttached)
	}
	return nil
}

// VertexInfo returns the auxiliary record for vertex v.
func (c *Context) VertexInfo(v embedding.VertexID) VertexInfo {
	return c.vinfo[v]
}

// EdgeInfo returns the auxiliary record for edge e.
func (c *Context) EdgeInfo(e embedding.EdgeID) EdgeRecord {
	return c.erec[e]
}

// Graph returns the embedding.Graph this context is attached to.
func (c *Context) Graph() embedding.Graph { return c.graph }
