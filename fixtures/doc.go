// Package fixtures builds ready-to-draw *embedding.Container values for
// small, well-understood graph families, adapted from lvlath/builder's
// functional-option generators (Cycle, Path, Wheel, platonic solids, grid)
// but emitting embedding.Graph topology plus DFS-tree metadata instead of a
// core.Graph.
//
// Path and Cycle are the two families whose default vertex-position
// resolution (every non-root vertex flagged BEYOND, no Collect/BreakTie
// calls) is provably crossing-free: a DFS path has no back edges at all,
// and a single cycle-closing back edge spans the full row range without
// interleaving any other edge's range. Graphs needing a genuine external-
// face tie to resolve (Wheel, K4, general grids) are not provided here; see
// DESIGN.md's fixtures entry for why.
package fixtures
