package visibility

import (
	"fmt"

	"github.com/lvlath/horvert/embedding"
)

// edgeEndpoints returns, for each edge, its two endpoints, derived once by
// scanning every vertex's arc list.
func (c *Context) edgeEndpoints() []struct{ U, V embedding.VertexID } {
	g := c.graph
	n := g.VertexCount()
	m := g.EdgeCount()

	eps := make([]struct{ U, V embedding.VertexID }, m)
	filled := make([]bool, m)
	for v := 0; v < n; v++ {
		for a := g.FirstArc(embedding.VertexID(v)); a != embedding.NilArc; a = g.NextArc(a) {
			e := embedding.EdgeOf(a)
			if filled[e] {
				continue
			}
			eps[e].U = embedding.VertexID(v)
			eps[e].V = g.Neighbor(a)
			filled[e] = true
		}
	}
	return eps
}

// Check implements spec.md §4.8, the integrity checker: uniqueness of
// vertex and edge positions, endpoint matching, and the no-spurious-
// crossing property. It is O(N*M).
func (c *Context) Check() error {
	if err := c.requireAttached(); err != nil {
		return err
	}
	g := c.graph
	n := g.VertexCount()
	m := g.EdgeCount()

	seenV := make([]bool, n)
	for v := 0; v < n; v++ {
		p := c.vinfo[v].Pos
		if p < 0 || p >= n || seenV[p] {
			return fmt.Errorf("visibility: Check: vertex %d position %d: %w", v, p, ErrIntegrityFailure)
		}
		seenV[p] = true
	}

	seenE := make([]bool, m)
	for e := 0; e < m; e++ {
		p := c.erec[e].Pos
		if p < 0 || p >= m || seenE[p] {
			return fmt.Errorf("visibility: Check: edge %d position %d: %w", e, p, ErrIntegrityFailure)
		}
		seenE[p] = true
	}

	eps := c.edgeEndpoints()

	for e := 0; e < m; e++ {
		rec := c.erec[e]
		u, v := eps[e].U, eps[e].V
		uPos, vPos := c.vinfo[u].Pos, c.vinfo[v].Pos
		lo, hi := uPos, vPos
		if lo > hi {
			lo, hi = hi, lo
		}
		if rec.Start != lo || rec.End != hi || rec.Start >= rec.End {
			return fmt.Errorf("visibility: Check: edge %d endpoint mismatch: %w", e, ErrIntegrityFailure)
		}
		if rec.Pos < c.vinfo[u].Start || rec.Pos > c.vinfo[u].End ||
			rec.Pos < c.vinfo[v].Start || rec.Pos > c.vinfo[v].End {
			return fmt.Errorf("visibility: Check: edge %d column outside endpoint range: %w", e, ErrIntegrityFailure)
		}
	}

	for e := 0; e < m; e++ {
		rec := c.erec[e]
		u, v := eps[e].U, eps[e].V
		for w := 0; w < n; w++ {
			wv := embedding.VertexID(w)
			if wv == u || wv == v {
				continue
			}
			wi := c.vinfo[w]
			if rec.Start <= wi.Pos && wi.Pos <= rec.End && wi.Start <= rec.Pos && rec.Pos <= wi.End {
				return fmt.Errorf("visibility: Check: edge %d crosses vertex %d: %w", e, w, ErrIntegrityFailure)
			}
		}
	}

	return nil
}
