package visibility

import "github.com/lvlath/horvert/embedding"

// DrawingFlag is one of the five relative-position tokens a vertex carries
// during and after the vertex-position resolver.
type DrawingFlag uint8

const (
	// Beyond is the default flag: C lies on the far side of its parent P
	// relative to an ancestor V.
	Beyond DrawingFlag = iota
	// Tie marks placement pending; must be replaced before the
	// vertex-position resolver runs.
	Tie
	// Between marks C as lying between P and V.
	Between
	// Below is a final resolved flag relative to P; also used transiently
	// on a DFS root to seed its children's resolution.
	Below
	// Above is a final resolved flag relative to P.
	Above
)

// String renders a DrawingFlag for diagnostics and table-driven test names.
func (f DrawingFlag) String() string {
	switch f {
	case Beyond:
		return "BEYOND"
	case Tie:
		return "TIE"
	case Between:
		return "BETWEEN"
	case Below:
		return "BELOW"
	case Above:
		return "ABOVE"
	default:
		return "UNKNOWN"
	}
}

// rootGenerator is the sentinel a DFS tree root's generator-edge slot holds,
// distinct from embedding.NilArc ("no generator yet") and from every valid
// ArcID, so neighbors scanning for "none" never mistake a root for an
// unvisited vertex (spec.md §9 open question: "the exact sentinel value is
// none-1 in the source; any value distinct from valid arcs and none is
// acceptable").
const rootGenerator embedding.ArcID = -2

// VertexInfo is the per-vertex auxiliary record spec.md §3 describes,
// allocated for every real and virtual vertex slot.
type VertexInfo struct {
	// Pos is the row assigned to the vertex once resolution completes.
	Pos int
	// Start, End bound the vertex's horizontal column range.
	Start, End int

	// Flag is the vertex's current drawing flag.
	Flag DrawingFlag

	// Ancestor and AncestorChild are set by BreakTie; both NilVertex
	// initially.
	Ancestor      embedding.VertexID
	AncestorChild embedding.VertexID

	// Tie holds the two per-direction breadcrumbs Collect writes and
	// BreakTie consumes; NilVertex means no pending breadcrumb.
	Tie [2]embedding.VertexID

	// generator is the vertex's generator edge for the edge-position sweep:
	// the first arc reaching it from a strictly higher vertex. NilArc means
	// not yet visited; rootGenerator marks a DFS tree root.
	generator embedding.ArcID
}

func newVertexInfo() VertexInfo {
	return VertexInfo{
		Ancestor:      embedding.NilVertex,
		AncestorChild: embedding.NilVertex,
		Tie:           [2]embedding.VertexID{embedding.NilVertex, embedding.NilVertex},
		generator:     embedding.NilArc,
	}
}

// EdgeRecord is the per-edge auxiliary record spec.md §3 describes. The two
// twin arcs of an edge share one logical record; Context keeps exactly one
// EdgeRecord per EdgeID and exposes it identically through either arc.
type EdgeRecord struct {
	// Pos is the column assigned to the edge once resolution completes.
	Pos int
	// Start, End bound the edge's vertical row range.
	Start, End int
}
