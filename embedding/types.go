package embedding

// VertexID indexes a vertex slot. Slots below Graph.VertexCount() are real
// vertices; slots in [VertexCount(), VertexIndexBound()) are virtual vertices
// (bicomp-root placeholders) when the host embedder uses them. NilVertex
// marks "no vertex".
type VertexID int

// ArcID indexes one directed half of an edge. The twin of arc a is a^1;
// the edge it belongs to is EdgeOf(a) = a/2. NilArc marks "no arc".
type ArcID int

// EdgeID indexes an edge (the pair of arcs 2*e and 2*e+1). NilEdge marks
// "no edge".
type EdgeID int

// NilVertex, NilArc and NilEdge are the sentinel "invalid" values for their
// respective index spaces, distinguished from every valid index by being
// negative.
const (
	NilVertex VertexID = -1
	NilArc    ArcID    = -1
	NilEdge   EdgeID   = -1
)

// EdgeType classifies an arc as belonging to a DFS tree edge (the arc leads
// to a DFS child) or a back edge (the arc leads to a DFS ancestor already on
// the stack when the edge was discovered).
type EdgeType uint8

const (
	// TreeEdge marks an arc that is part of the DFS tree: its neighbor is a
	// DFS child of the arc's source vertex.
	TreeEdge EdgeType = iota
	// BackEdge marks an arc whose neighbor is a proper DFS ancestor of the
	// arc's source vertex.
	BackEdge
)

// Link selects one of the two external-face pointer slots a vertex carries
// during embedding. The two slots are not "clockwise"/"counterclockwise" in
// an absolute sense; §4.5 of the design only requires that, for a given
// vertex, the two slots point to its two external-face neighbors.
type Link int

const (
	Link0 Link = 0
	Link1 Link = 1
)

// Opposite returns the other link slot.
func (l Link) Opposite() Link {
	return 1 - l
}

// EdgeOf returns the edge that arc a belongs to, or NilEdge if a is NilArc.
func EdgeOf(a ArcID) EdgeID {
	if a == NilArc {
		return NilEdge
	}
	return EdgeID(a / 2)
}

// Twin returns the other arc of the edge a belongs to, or NilArc if a is
// NilArc.
func Twin(a ArcID) ArcID {
	if a == NilArc {
		return NilArc
	}
	return a ^ 1
}

// ArcOf returns the two arcs (side 0 and side 1) belonging to edge e.
func ArcOf(e EdgeID) (ArcID, ArcID) {
	base := ArcID(e) * 2
	return base, base + 1
}
