// Package embedding defines the contract a host planarity embedder (such as
// a Boyer-Myrvold implementation) must satisfy for the visibility package to
// turn its combinatorial planar embedding into a horvert diagram, and ships
// one concrete implementation of that contract: an arc-indexed graph
// container good enough to build, embed-by-hand, and render small planar
// graphs without a full planarity algorithm.
//
// Vertices and edges are dense integer indices. Every edge owns two arcs,
// one per direction/endpoint; ArcID = 2*EdgeID + side, so the twin of an arc
// is always the arc with its low bit flipped. This mirrors the paired-arc
// convention the original Boyer-Myrvold C implementation uses (e << 1 and
// e ^ 1), which the visibility package's algorithms are written against.
package embedding
