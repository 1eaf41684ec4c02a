package visibility

import (
	"fmt"

	"github.com/lvlath/horvert/embedding"
)

// nextExternalFaceVertex implements the rule in spec.md §4.5: from cur,
// arrived via prevLink, find the next vertex on the external face and the
// link by which it in turn points back to cur (needed if the caller
// continues walking past it).
func nextExternalFaceVertex(g embedding.Graph, cur embedding.VertexID, prevLink embedding.Link) (next embedding.VertexID, nextPrevLink embedding.Link) {
	next = g.ExtFace(cur, prevLink.Opposite())

	l0 := g.ExtFace(next, embedding.Link0)
	l1 := g.ExtFace(next, embedding.Link1)
	if l0 != l1 {
		if l0 == cur {
			return next, embedding.Link0
		}
		return next, embedding.Link1
	}
	// Both links of next are equal: a single-edge bicomp with consistent
	// orientation. Leave prevLink unchanged.
	return next, prevLink
}

// Collect implements embedding.Listener (Hook A, spec.md §4.2). It fires
// immediately before the host embedder acts on a batch of bicomp merges.
func (c *Context) Collect(merges []embedding.MergePoint) error {
	if err := c.requireAttached(); err != nil {
		return err
	}
	g := c.graph

	for _, m := range merges {
		dfsChild := g.DFSChildFromBicompRoot(m.BicompRoot)
		if dfsChild == embedding.NilVertex {
			return fmt.Errorf("visibility: Collect: bicomp root %d has no DFS child: %w", m.BicompRoot, ErrContractViolation)
		}

		descendant, tieLink := nextExternalFaceVertex(g, m.BicompRoot, m.ChildLink)

		c.vinfo[dfsChild].Flag = Tie
		c.vinfo[descendant].Tie[tieLink] = dfsChild
		c.vinfo[m.Parent].Tie[m.ParentLink] = dfsChild
	}

	return nil
}

// BreakTie implements embedding.Listener (Hook B, spec.md §4.2). It fires
// immediately after the host embedder advances past inactive vertex w on
// the external face of the bicomp rooted at bicompRoot.
func (c *Context) BreakTie(bicompRoot, w embedding.VertexID, wPrevLink embedding.Link) error {
	if err := c.requireAttached(); err != nil {
		return err
	}
	g := c.graph

	wPred, wPredPrevLink := nextExternalFaceVertex(g, w, wPrevLink)

	if g.IsVirtualVertex(w) || g.IsVirtualVertex(wPred) {
		return nil
	}

	b1 := c.vinfo[w].Tie[wPrevLink]
	b2 := c.vinfo[wPred].Tie[wPredPrevLink.Opposite()]
	if b1 != b2 {
		return fmt.Errorf("visibility: BreakTie: breadcrumb at (%d,%d): %w", w, wPred, ErrBreadcrumbMismatch)
	}
	if b1 == embedding.NilVertex {
		return nil
	}

	child := b1
	c.vinfo[child].Ancestor = g.PrimaryVertexFromRoot(bicompRoot)
	c.vinfo[child].AncestorChild = g.DFSChildFromBicompRoot(bicompRoot)

	// w < wPred (DFS-index ancestor/descendant comparison) requires real
	// vertices to be numbered so an ancestor's index is strictly smaller
	// than its descendants' (embedding.Graph's documented contract,
	// spec.md §9 open question).
	switch {
	case w < wPred:
		c.vinfo[child].Flag = Between
	case wPred < w:
		c.vinfo[child].Flag = Beyond
	default:
		return fmt.Errorf("visibility: BreakTie: w == wPred (%d): %w", w, ErrDFSIndexOrder)
	}

	c.vinfo[w].Tie[wPrevLink] = embedding.NilVertex
	c.vinfo[wPred].Tie[wPredPrevLink.Opposite()] = embedding.NilVertex

	return nil
}
