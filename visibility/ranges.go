package visibility

import "github.com/lvlath/horvert/embedding"

// computeVertexRanges implements spec.md §4.6: each vertex's horizontal
// span is the min/max column of its incident edges. An isolated vertex
// gets start = end = 0.
func (c *Context) computeVertexRanges() {
	g := c.graph
	n := g.VertexCount()

	for v := 0; v < n; v++ {
		first := g.FirstArc(embedding.VertexID(v))
		if first == embedding.NilArc {
			c.vinfo[v].Start = 0
			c.vinfo[v].End = 0
			continue
		}

		minCol, maxCol := -1, -1
		for a := first; a != embedding.NilArc; a = g.NextArc(a) {
			e := embedding.EdgeOf(a)
			col := c.erec[e].Pos
			if minCol == -1 || col < minCol {
				minCol = col
			}
			if maxCol == -1 || col > maxCol {
				maxCol = col
			}
		}
		c.vinfo[v].Start = minCol
		c.vinfo[v].End = maxCol
	}
}

// computeEdgeRanges implements spec.md §4.6: each edge's vertical span is
// the min/max row of its two endpoints.
func (c *Context) computeEdgeRanges() {
	g := c.graph
	n := g.VertexCount()

	for v := 0; v < n; v++ {
		for a := g.FirstArc(embedding.VertexID(v)); a != embedding.NilArc; a = g.NextArc(a) {
			u := embedding.VertexID(v)
			w := g.Neighbor(a)
			e := embedding.EdgeOf(a)

			uPos, wPos := c.vinfo[u].Pos, c.vinfo[w].Pos
			lo, hi := uPos, wPos
			if lo > hi {
				lo, hi = hi, lo
			}
			c.erec[e].Start = lo
			c.erec[e].End = hi
		}
	}
}
