// Package horvert builds planar visibility representations (horvert
// diagrams) from a combinatorial planar embedding produced by a host
// planarity algorithm such as Boyer-Myrvold.
//
// In a horvert diagram every vertex is drawn as a horizontal segment on its
// own integer row and every edge as a vertical segment on its own integer
// column, with an edge's column inside the horizontal span of both of its
// endpoints and its row span exactly between them.
//
// The module is organized as:
//
//	embedding/ — the host embedder's contract (Graph, Listener) plus a
//	             concrete arc-indexed graph container implementing it
//	drawlist/  — the fixed-capacity intrusive doubly linked list the
//	             resolvers use as O(1) scratch
//	dfswalk/   — an explicit-stack preorder walker over embedding.Graph
//	visibility/ — the drawing context: embedding hooks, the vertex- and
//	             edge-position resolvers, the integrity checker, the ASCII
//	             renderer, and the coordinate-block codec
//	fixtures/  — small deterministic planar graphs (path, cycle) for demos
//	             and tests
//	cmd/horvert/ — a CLI front-end
//
// This package never tests planarity itself; it consumes an
// already-successful embedding through the embedding.Graph interface.
package horvert
