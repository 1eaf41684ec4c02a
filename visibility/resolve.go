package visibility

import (
	"fmt"

	"github.com/lvlath/horvert/embedding"
)

// Resolve implements spec.md §2 component 5, the post-embedding resolver:
// vertex positions, then edge positions, then vertex and edge ranges. The
// host must call it exactly once, after embedding succeeds, passing
// planar=true; passing false (spec.md §8 scenario S4, a non-planar result)
// returns ErrNotPlanar without touching any auxiliary state.
func (c *Context) Resolve(planar bool) error {
	if err := c.requireAttached(); err != nil {
		return err
	}
	if !planar {
		return fmt.Errorf("visibility: Resolve: %w: %w", ErrNotPlanar, ErrUnsupportedInput)
	}
	if err := c.checkCompact(); err != nil {
		return err
	}
	if err := c.computeVertexPositions(); err != nil {
		return err
	}
	if err := c.computeEdgePositions(); err != nil {
		return err
	}
	c.computeVertexRanges()
	c.computeEdgeRanges()
	return nil
}

// checkCompact implements the spec.md §4.9 edge-case: an embedding with
// edge holes (an edge index in [0, EdgeCount()) reached by no vertex's arc
// list) is rejected before the sweep, since the sweep assumes a dense
// edge-index space.
func (c *Context) checkCompact() error {
	g := c.graph
	seen := make([]bool, g.EdgeCount())

	for v := 0; v < g.VertexCount(); v++ {
		for a := g.FirstArc(embedding.VertexID(v)); a != embedding.NilArc; a = g.NextArc(a) {
			seen[embedding.EdgeOf(a)] = true
		}
	}

	for e, ok := range seen {
		if !ok {
			return fmt.Errorf("visibility: Resolve: edge %d: %w: %w", e, ErrEdgeHole, ErrUnsupportedInput)
		}
	}
	return nil
}
