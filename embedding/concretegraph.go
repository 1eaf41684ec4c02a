package embedding

import "sync"

// ContainerOption configures a Container at construction time.
type ContainerOption func(*Container)

// WithVirtualCapacity reserves room for k virtual (bicomp-root placeholder)
// vertex slots beyond the n real vertices. Defaults to n, matching the
// Boyer-Myrvold convention of one virtual root copy per real vertex.
func WithVirtualCapacity(k int) ContainerOption {
	return func(c *Container) { c.virtualCap = k }
}

// Container is a concrete, arc-indexed implementation of Graph. It is a
// plain adjacency structure a caller builds up directly (via AddEdge,
// SetParent, SetExtFace, ...) to describe an already-completed
// combinatorial embedding - there is no planarity algorithm here, only
// storage and the accessors Graph requires.
//
// Like core.Graph, a single RWMutex protects the mutable tables so a
// Container can be assembled on one goroutine while rendered or inspected
// from another; unlike core.Graph there is only one lock because arcs,
// vertices, and their embedding metadata are all written during the same
// build phase and never independently.
type Container struct {
	mu sync.RWMutex

	n          int // real vertex count (N)
	virtualCap int // reserved virtual vertex slots
	m          int // edge count (M)
	arcCap     int // reserved arc slots (>= 2*m)

	parent   []VertexID
	virtual  []bool
	dfsChild []VertexID // valid when virtual[v]; the DFS child of the bicomp rooted at v
	primary  []VertexID // valid when virtual[v]; the real vertex v stands in for
	extFace  [][2]VertexID

	firstArc []ArcID
	nextArc  []ArcID // size arcCap; NilArc terminates a vertex's list
	lastArc  []ArcID // size vIndexBound; O(1) append to each vertex's arc list
	neighbor []VertexID
	edgeType []EdgeType // indexed by EdgeID
}

// NewContainer allocates a Container for n real vertices and up to m edges.
// Returns ErrNegativeCapacity if n <= 0 or m < 0.
func NewContainer(n, m int, opts ...ContainerOption) (*Container, error) {
	if n <= 0 || m < 0 {
		return nil, ErrNegativeCapacity
	}

	c := &Container{n: n, virtualCap: n, arcCap: 2 * m}
	for _, opt := range opts {
		opt(c)
	}

	bound := n + c.virtualCap
	c.parent = make([]VertexID, bound)
	c.virtual = make([]bool, bound)
	c.dfsChild = make([]VertexID, bound)
	c.primary = make([]VertexID, bound)
	c.extFace = make([][2]VertexID, bound)
	c.firstArc = make([]ArcID, bound)
	c.lastArc = make([]ArcID, bound)
	for v := 0; v < bound; v++ {
		c.parent[v] = NilVertex
		c.dfsChild[v] = NilVertex
		c.primary[v] = NilVertex
		c.extFace[v] = [2]VertexID{NilVertex, NilVertex}
		c.firstArc[v] = NilArc
		c.lastArc[v] = NilArc
	}
	for i := n; i < bound; i++ {
		c.virtual[i] = true
	}

	if c.arcCap > 0 {
		c.nextArc = make([]ArcID, c.arcCap)
		c.neighbor = make([]VertexID, c.arcCap)
		for a := 0; a < c.arcCap; a++ {
			c.nextArc[a] = NilArc
		}
	}
	c.edgeType = make([]EdgeType, m)

	return c, nil
}

// VertexCount implements Graph.
func (c *Container) VertexCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.n
}

// VertexIndexBound implements Graph.
func (c *Container) VertexIndexBound() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.parent)
}

// EdgeCount implements Graph.
func (c *Container) EdgeCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.m
}

// ArcIndexBound implements Graph.
func (c *Container) ArcIndexBound() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.arcCap
}

// IsVirtualVertex implements Graph.
func (c *Container) IsVirtualVertex(v VertexID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.virtual[v]
}

// IsDFSTreeRoot implements Graph.
func (c *Container) IsDFSTreeRoot(v VertexID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.parent[v] == NilVertex
}

// Parent implements Graph.
func (c *Container) Parent(v VertexID) VertexID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.parent[v]
}

// FirstArc implements Graph.
func (c *Container) FirstArc(v VertexID) ArcID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.firstArc[v]
}

// NextArc implements Graph.
func (c *Container) NextArc(a ArcID) ArcID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nextArc[a]
}

// NextArcCircular implements Graph.
func (c *Container) NextArcCircular(a ArcID) ArcID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v := c.neighborSourceLocked(a)
	next := c.nextArc[a]
	if next == NilArc {
		return c.firstArc[v]
	}
	return next
}

// neighborSourceLocked returns the arc's source vertex: the vertex its twin
// arc points to. The paired-arc layout makes this an O(1) lookup without a
// per-arc source field.
func (c *Container) neighborSourceLocked(a ArcID) VertexID {
	twin := Twin(a)
	return c.neighbor[twin]
}

// Neighbor implements Graph.
func (c *Container) Neighbor(a ArcID) VertexID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.neighbor[a]
}

// EdgeType implements Graph.
func (c *Container) EdgeType(a ArcID) EdgeType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.edgeType[EdgeOf(a)]
}

// ExtFace implements Graph.
func (c *Container) ExtFace(v VertexID, link Link) VertexID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.extFace[v][link]
}

// DFSChildFromBicompRoot implements Graph.
func (c *Container) DFSChildFromBicompRoot(root VertexID) VertexID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dfsChild[root]
}

// PrimaryVertexFromRoot implements Graph.
func (c *Container) PrimaryVertexFromRoot(root VertexID) VertexID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.primary[root]
}
