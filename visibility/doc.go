// Package visibility turns a finished combinatorial planar embedding
// (embedding.Graph) into a horvert diagram: every vertex becomes a
// horizontal segment on a unique row, every edge a vertical segment on a
// unique column, with an edge's column inside both endpoints' horizontal
// span and its row range spanning exactly between them.
//
// A Context is attached to one embedding.Graph for the lifetime of one
// embedding run. The host embedder calls Context.Collect and
// Context.BreakTie at the two points spec.md's hooks document (just before
// a batch of bicomp merges, and just after passing an inactive external-face
// vertex); once embedding succeeds, the host calls Context.Resolve exactly
// once, which runs the vertex-position resolver, the edge-position
// resolver, and the range passes in sequence. Context.Check then verifies
// the result, and Context.Render / Context.WriteBlock / Context.IncidenceMatrix
// expose it.
package visibility
