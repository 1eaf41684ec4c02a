package embedding

// Graph is the contract a host planarity embedder's combinatorial embedding
// must satisfy for the visibility package to compute a drawing from it. It
// is deliberately narrow: every method here is something a linear-time
// planar embedder (Boyer-Myrvold or equivalent) already tracks internally,
// so implementing Graph over a real embedder costs no extra bookkeeping.
//
// Real (non-virtual) vertices must be numbered so that a DFS-tree ancestor
// always has a strictly smaller VertexID than its descendants; the
// visibility package's tie-breaking (embedding.Listener.BreakTie) relies on
// comparing indices to decide ancestor/descendant relationships in O(1).
type Graph interface {
	// VertexCount returns N: the number of real vertices, numbered
	// [0, VertexCount()). Final vertex positions are a permutation of this
	// range.
	VertexCount() int

	// VertexIndexBound returns the number of vertex slots, including
	// virtual bicomp-root placeholders used only during embedding. Always
	// >= VertexCount(). Used to size per-vertex auxiliary storage.
	VertexIndexBound() int

	// EdgeCount returns M: the number of edges, numbered [0, EdgeCount()).
	// Edge e owns arcs 2*e and 2*e+1.
	EdgeCount() int

	// ArcIndexBound returns the number of arc slots reserved, always
	// >= 2*EdgeCount(). Used to size per-arc auxiliary storage.
	ArcIndexBound() int

	// IsVirtualVertex reports whether v is a bicomp-root placeholder
	// rather than a real vertex. Ties (§4.2) never span a virtual vertex.
	IsVirtualVertex(v VertexID) bool

	// IsDFSTreeRoot reports whether v has no DFS parent.
	IsDFSTreeRoot(v VertexID) bool

	// Parent returns v's DFS parent, or NilVertex if v is a DFS tree root.
	Parent(v VertexID) VertexID

	// FirstArc returns the first arc in v's embedded circular adjacency
	// order, or NilArc if v is isolated.
	FirstArc(v VertexID) ArcID

	// NextArc returns the arc following a in its source vertex's embedded
	// order, or NilArc once a was the last arc (non-circular).
	NextArc(a ArcID) ArcID

	// NextArcCircular returns the arc following a, wrapping to the first
	// arc of the same vertex after the last.
	NextArcCircular(a ArcID) ArcID

	// Neighbor returns the vertex that arc a points to.
	Neighbor(a ArcID) VertexID

	// EdgeType classifies arc a as a DFS tree edge or a back edge.
	EdgeType(a ArcID) EdgeType

	// ExtFace returns v's external-face neighbor reached via link slot
	// link (§4.5).
	ExtFace(v VertexID, link Link) VertexID

	// DFSChildFromBicompRoot returns the DFS child whose bicomp is rooted
	// by the virtual vertex root.
	DFSChildFromBicompRoot(root VertexID) VertexID

	// PrimaryVertexFromRoot returns the real vertex that the virtual
	// vertex root is a placeholder copy of.
	PrimaryVertexFromRoot(root VertexID) VertexID
}

// MergePoint is one entry of the host embedder's merge-stack batch, as
// passed to Listener.Collect just before the embedder acts on it (§4.2 Hook
// A). ChildLink is treated as the link by which BicompRoot was reached: the
// active descendant on the external face is BicompRoot's neighbor via the
// opposite link (the §4.5 successor rule).
type MergePoint struct {
	Parent     VertexID
	ParentLink Link
	BicompRoot VertexID
	ChildLink  Link
}

// Listener is what a host embedder calls at the two precise points spec.md
// §4.2 and §6 document: just before a batch of bicomp merges, and just
// after passing an inactive vertex on the external face. visibility.Context
// implements Listener.
type Listener interface {
	// Collect fires immediately before the embedder merges the bicomps
	// named by merges.
	Collect(merges []MergePoint) error

	// BreakTie fires immediately after the embedder advances past inactive
	// vertex w on the external face of the bicomp rooted at bicompRoot,
	// having arrived via link wPrevLink.
	BreakTie(bicompRoot, w VertexID, wPrevLink Link) error
}
