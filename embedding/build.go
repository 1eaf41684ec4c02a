package embedding

// Mutators below are how a caller assembles a Container by hand: add every
// edge, then describe the DFS tree, virtual-vertex correspondence, and
// external face the embedder would have produced. None of this is itself a
// planarity algorithm; it is the bookkeeping an embedder does internally,
// exposed so fixtures and tests can hand-construct known embeddings.

// AddEdge appends a new edge between from and to in each endpoint's circular
// adjacency order and returns its EdgeID. Arcs are appended, never inserted,
// so repeated calls build adjacency lists in call order; a caller wanting a
// specific circular order must call AddEdge in that order.
func (c *Container) AddEdge(from, to VertexID, t EdgeType) (EdgeID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	bound := VertexID(len(c.parent))
	if from < 0 || from >= bound || to < 0 || to >= bound {
		return NilEdge, ErrVertexNotFound
	}
	if from == to {
		return NilEdge, ErrSelfLoop
	}
	if c.m >= len(c.edgeType) {
		return NilEdge, ErrArcCapacityFixed
	}

	e := EdgeID(c.m)
	aOut, aIn := ArcOf(e)
	c.neighbor[aOut] = to
	c.neighbor[aIn] = from
	c.edgeType[e] = t
	c.appendArcLocked(from, aOut)
	c.appendArcLocked(to, aIn)
	c.m++

	return e, nil
}

func (c *Container) appendArcLocked(v VertexID, a ArcID) {
	if c.firstArc[v] == NilArc {
		c.firstArc[v] = a
	} else {
		c.nextArc[c.lastArc[v]] = a
	}
	c.lastArc[v] = a
}

// SetParent records v's DFS parent. Pass NilVertex to mark v as a DFS tree
// root.
func (c *Container) SetParent(v, parent VertexID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.validVertexLocked(v) {
		return ErrVertexNotFound
	}
	c.parent[v] = parent
	return nil
}

// SetExtFace records v's external-face neighbor reached via link.
func (c *Container) SetExtFace(v VertexID, link Link, neighbor VertexID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.validVertexLocked(v) {
		return ErrVertexNotFound
	}
	c.extFace[v][link] = neighbor
	return nil
}

// SetVirtual marks root as a virtual bicomp-root placeholder standing in for
// primary, with dfsChild the DFS child whose bicomp root it is.
func (c *Container) SetVirtual(root, primary, dfsChild VertexID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.validVertexLocked(root) || !c.validVertexLocked(primary) {
		return ErrVertexNotFound
	}
	c.virtual[root] = true
	c.primary[root] = primary
	c.dfsChild[root] = dfsChild
	return nil
}

func (c *Container) validVertexLocked(v VertexID) bool {
	return v >= 0 && int(v) < len(c.parent)
}
