package dfswalk

import "github.com/lvlath/horvert/embedding"

// frame is one stack entry: the vertex being explored and the next arc of
// its adjacency list left to examine. Keeping the arc cursor on the frame
// (rather than recomputing children up front) lets Walk resume exactly
// where it left off without a second pass or extra per-vertex allocation.
type frame struct {
	v     embedding.VertexID
	arc   embedding.ArcID
	depth int
}

// Walk performs a preorder/postorder DFS-tree traversal of g starting at
// root, following tree edges (embedding.TreeEdge) to the children whose
// Parent is the current vertex, visited in embedded arc order. root must be
// a DFS tree root (embedding.Graph.IsDFSTreeRoot).
func Walk(g embedding.Graph, root embedding.VertexID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if root < 0 || int(root) >= g.VertexIndexBound() {
		return nil, ErrRootNotFound
	}
	if !g.IsDFSTreeRoot(root) {
		return nil, ErrRootNotTreeRoot
	}

	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &Result{
		Order: make([]embedding.VertexID, 0, g.VertexCount()),
		Depth: make(map[embedding.VertexID]int, g.VertexCount()),
	}

	stack := []frame{{v: root, arc: g.FirstArc(root), depth: 0}}
	res.Order = append(res.Order, root)
	res.Depth[root] = 0
	if o.OnVisit != nil {
		if err := o.OnVisit(root, 0); err != nil {
			return res, err
		}
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		child, nextArc, found := nextTreeChild(g, top.v, top.arc)
		top.arc = nextArc
		if !found {
			if o.OnExit != nil {
				if err := o.OnExit(top.v, top.depth); err != nil {
					return res, err
				}
			}
			stack = stack[:len(stack)-1]
			continue
		}

		depth := top.depth + 1
		res.Order = append(res.Order, child)
		res.Depth[child] = depth
		if o.OnVisit != nil {
			if err := o.OnVisit(child, depth); err != nil {
				return res, err
			}
		}
		stack = append(stack, frame{v: child, arc: g.FirstArc(child), depth: depth})
	}

	return res, nil
}

// nextTreeChild scans v's adjacency list starting at arc for the next arc
// that descends to a DFS child, returning that child and the arc to resume
// from on the following call.
func nextTreeChild(g embedding.Graph, v embedding.VertexID, arc embedding.ArcID) (embedding.VertexID, embedding.ArcID, bool) {
	for a := arc; a != embedding.NilArc; a = g.NextArc(a) {
		if g.EdgeType(a) != embedding.TreeEdge {
			continue
		}
		w := g.Neighbor(a)
		if g.Parent(w) == v {
			return w, g.NextArc(a), true
		}
	}
	return embedding.NilVertex, embedding.NilArc, false
}
