package visibility

import "github.com/lvlath/horvert/embedding"

// IncidenceMatrix is a dense vertex-by-edge incidence table: Data[v][e] is
// 1 if vertex v is an endpoint of edge e, 0 otherwise. Rows follow vertex
// id order, columns follow edge id order — not drawing row/column order —
// so it is a structural diagnostic of the embedding's topology, a sibling
// to the ASCII renderer and the coordinate-block codec rather than another
// view of the finished drawing.
type IncidenceMatrix struct {
	Rows int
	Cols int
	Data [][]uint8
}

// IncidenceMatrix builds the dense incidence matrix of the graph this
// context is attached to, adapted from matrix.BuildDenseIncidence's
// undirected-unweighted case: +1 at each incident row, no sign, no loop
// doubling (this module's embeddings carry no self-loops, embedding.ErrSelfLoop).
func (c *Context) IncidenceMatrix() (*IncidenceMatrix, error) {
	if err := c.requireAttached(); err != nil {
		return nil, err
	}
	g := c.graph
	n, m := g.VertexCount(), g.EdgeCount()

	im := &IncidenceMatrix{Rows: n, Cols: m, Data: make([][]uint8, n)}
	for v := range im.Data {
		im.Data[v] = make([]uint8, m)
	}

	for v := 0; v < n; v++ {
		for a := g.FirstArc(embedding.VertexID(v)); a != embedding.NilArc; a = g.NextArc(a) {
			im.Data[v][embedding.EdgeOf(a)] = 1
		}
	}

	return im, nil
}
