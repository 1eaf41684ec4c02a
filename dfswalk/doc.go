// Package dfswalk performs a DFS-tree preorder traversal over an
// embedding.Graph, in the style of the teacher dfs package (OnVisit/OnExit
// hooks, a DefaultOptions constructor, an explicit ErrGraphNil family) but
// reshaped around the fixed combinatorial contract that package assumes: the
// DFS tree is already known (embedding.Graph.Parent/EdgeType), traversal
// only needs to recover it, and the walk must visit children in their
// embedded arc order so the vertex-position resolver (§4.3) can label rows
// while walking.
//
// The walk uses an explicit stack rather than the teacher's recursive
// traverse method: a combinatorial embedding can legitimately nest a DFS
// tree deeper than the default goroutine stack comfortably recurses for
// the largest inputs this package's resolvers are meant to handle.
package dfswalk
