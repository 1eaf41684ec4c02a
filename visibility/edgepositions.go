package visibility

import (
	"fmt"

	"github.com/lvlath/horvert/drawlist"
	"github.com/lvlath/horvert/embedding"
)

// computeEdgePositions implements spec.md §4.4: a sweep by increasing row
// assigns every edge a column via a single shared list-collection, using
// each vertex's generator edge (the first arc that reached it from a
// strictly higher vertex) to anchor where its own new edges insert.
func (c *Context) computeEdgePositions() error {
	g := c.graph
	n := g.VertexCount()
	m := g.EdgeCount()

	order := make([]embedding.VertexID, n)
	for v := 0; v < n; v++ {
		order[c.vinfo[v].Pos] = embedding.VertexID(v)
	}

	for v := 0; v < n; v++ {
		if g.IsDFSTreeRoot(embedding.VertexID(v)) {
			c.vinfo[v].generator = rootGenerator
		} else {
			c.vinfo[v].generator = embedding.NilArc
		}
	}

	if m == 0 {
		// No edges to place; drawlist rejects a zero capacity.
		return nil
	}

	list, err := drawlist.NewList(m)
	if err != nil {
		return fmt.Errorf("visibility: computeEdgePositions: %w", ErrResourceExhaustion)
	}

	for vpos := 0; vpos < n; vpos++ {
		v := order[vpos]

		if g.IsDFSTreeRoot(v) {
			for a := g.FirstArc(v); a != embedding.NilArc; a = g.NextArc(a) {
				e := embedding.EdgeOf(a)
				if err := list.PushBack(int(e)); err != nil {
					return fmt.Errorf("visibility: computeEdgePositions: vertex %d: %w", v, ErrResourceExhaustion)
				}
				w := g.Neighbor(a)
				if c.vinfo[w].generator == embedding.NilArc {
					c.vinfo[w].generator = a
				}
			}
			continue
		}

		generatorArc := c.vinfo[v].generator
		if generatorArc == embedding.NilArc || generatorArc == rootGenerator {
			return fmt.Errorf("visibility: computeEdgePositions: vertex %d has no generator edge: %w", v, ErrContractViolation)
		}
		start := embedding.Twin(generatorArc)
		insertionPoint := int(embedding.EdgeOf(generatorArc))

		for a := g.NextArcCircular(start); a != start; a = g.NextArcCircular(a) {
			w := g.Neighbor(a)
			if c.vinfo[w].Pos <= vpos {
				continue
			}
			e := embedding.EdgeOf(a)
			if err := list.InsertAfter(int(e), insertionPoint); err != nil {
				return fmt.Errorf("visibility: computeEdgePositions: vertex %d: %w", v, ErrResourceExhaustion)
			}
			insertionPoint = int(e)
			if c.vinfo[w].generator == embedding.NilArc {
				c.vinfo[w].generator = a
			}
		}
	}

	for epos, e := range list.ToSlice() {
		c.erec[e].Pos = epos
	}

	return nil
}
