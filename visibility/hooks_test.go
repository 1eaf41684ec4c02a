package visibility_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath/horvert/embedding"
	"github.com/lvlath/horvert/visibility"
)

// buildHookGraph builds 4 real vertices (0..3) plus one virtual bicomp-root
// placeholder (4) standing for primary vertex 0 with DFS child 1, wired
// with just enough external-face links to exercise Collect and BreakTie.
// No arcs are created: the hooks only read/write VertexInfo and ExtFace.
func buildHookGraph(t *testing.T) *embedding.Container {
	t.Helper()
	c, err := embedding.NewContainer(4, 0, embedding.WithVirtualCapacity(1))
	require.NoError(t, err)

	require.NoError(t, c.SetVirtual(4, 0, 1))
	require.NoError(t, c.SetExtFace(4, embedding.Link1, 3))
	require.NoError(t, c.SetExtFace(3, embedding.Link0, 2))
	require.NoError(t, c.SetExtFace(2, embedding.Link0, 3))

	return c
}

// ChildLink is Link0 here (not Link1): nextExternalFaceVertex negates it
// once internally, so this names the link pointing INTO the bicomp root,
// matching the original _GetNextExternalFaceVertex call convention.
func collectMerge(t *testing.T, ctx *visibility.Context) {
	t.Helper()
	require.NoError(t, ctx.Collect([]embedding.MergePoint{
		{Parent: 2, ParentLink: embedding.Link1, BicompRoot: 4, ChildLink: embedding.Link0},
	}))
}

func TestCollectWritesTieBreadcrumbs(t *testing.T) {
	g := buildHookGraph(t)
	ctx, err := visibility.Attach(g)
	require.NoError(t, err)
	defer ctx.Detach()

	collectMerge(t, ctx)

	require.Equal(t, visibility.Tie, ctx.VertexInfo(1).Flag)
	require.Equal(t, embedding.VertexID(1), ctx.VertexInfo(3).Tie[embedding.Link1])
	require.Equal(t, embedding.VertexID(1), ctx.VertexInfo(2).Tie[embedding.Link1])
}

func TestBreakTieResolvesBeyondWhenWPredIsAncestor(t *testing.T) {
	g := buildHookGraph(t)
	ctx, err := visibility.Attach(g)
	require.NoError(t, err)
	defer ctx.Detach()

	collectMerge(t, ctx)
	require.NoError(t, ctx.BreakTie(4, 3, embedding.Link1))

	info := ctx.VertexInfo(1)
	require.Equal(t, visibility.Beyond, info.Flag)
	require.Equal(t, embedding.VertexID(0), info.Ancestor)
	require.Equal(t, embedding.VertexID(1), info.AncestorChild)

	require.Equal(t, embedding.NilVertex, ctx.VertexInfo(3).Tie[embedding.Link1])
	require.Equal(t, embedding.NilVertex, ctx.VertexInfo(2).Tie[embedding.Link1])
}

func TestBreakTieResolvesBetweenWhenWIsAncestor(t *testing.T) {
	g := buildHookGraph(t)
	ctx, err := visibility.Attach(g)
	require.NoError(t, err)
	defer ctx.Detach()

	collectMerge(t, ctx)
	require.NoError(t, ctx.BreakTie(4, 2, embedding.Link1))

	info := ctx.VertexInfo(1)
	require.Equal(t, visibility.Between, info.Flag)
	require.Equal(t, embedding.VertexID(0), info.Ancestor)
	require.Equal(t, embedding.VertexID(1), info.AncestorChild)

	require.Equal(t, embedding.NilVertex, ctx.VertexInfo(2).Tie[embedding.Link1])
	require.Equal(t, embedding.NilVertex, ctx.VertexInfo(3).Tie[embedding.Link1])
}

func TestBreakTieNoOpWhenNoBreadcrumb(t *testing.T) {
	g := buildHookGraph(t)
	ctx, err := visibility.Attach(g)
	require.NoError(t, err)
	defer ctx.Detach()

	require.NoError(t, ctx.BreakTie(4, 3, embedding.Link1))
	require.Equal(t, visibility.Beyond, ctx.VertexInfo(1).Flag) // untouched default
}

func TestBreakTieSkipsVirtualEndpoints(t *testing.T) {
	c, err := embedding.NewContainer(2, 0, embedding.WithVirtualCapacity(1))
	require.NoError(t, err)
	require.NoError(t, c.SetVirtual(2, 0, 1))
	require.NoError(t, c.SetExtFace(2, embedding.Link1, 1))
	require.NoError(t, c.SetExtFace(1, embedding.Link0, 2))
	require.NoError(t, c.SetExtFace(1, embedding.Link1, 2))

	ctx, err := visibility.Attach(c)
	require.NoError(t, err)
	defer ctx.Detach()

	require.NoError(t, ctx.BreakTie(2, 1, embedding.Link1))
}

// TestBreakTieMismatchIsFatal builds a second bicomp-root/merge sharing
// vertex 2 as parent but routing its descendant breadcrumb to vertex 1
// instead of vertex 3, so the second merge overwrites the parent-side
// breadcrumb at vertex 2 (child 1 -> child 3) without touching vertex 3's
// side, which still names child 1. BreakTie(4, 3, Link1) then reads
// disagreeing breadcrumbs off the two sides of the tie.
func TestBreakTieMismatchIsFatal(t *testing.T) {
	c, err := embedding.NewContainer(4, 0, embedding.WithVirtualCapacity(2))
	require.NoError(t, err)
	require.NoError(t, c.SetVirtual(4, 0, 1))
	require.NoError(t, c.SetVirtual(5, 0, 3))
	require.NoError(t, c.SetExtFace(5, embedding.Link0, 1))
	require.NoError(t, c.SetExtFace(4, embedding.Link1, 3))
	require.NoError(t, c.SetExtFace(3, embedding.Link0, 2))
	require.NoError(t, c.SetExtFace(2, embedding.Link0, 3))
	require.NoError(t, c.SetExtFace(1, embedding.Link0, 0))

	ctx, err := visibility.Attach(c)
	require.NoError(t, err)
	defer ctx.Detach()

	require.NoError(t, ctx.Collect([]embedding.MergePoint{
		{Parent: 2, ParentLink: embedding.Link1, BicompRoot: 4, ChildLink: embedding.Link0},
	}))
	// Overwrites vertex 2's tie[Link1] with child 3, desyncing it from
	// vertex 3's tie[Link1] which still names child 1.
	require.NoError(t, ctx.Collect([]embedding.MergePoint{
		{Parent: 2, ParentLink: embedding.Link1, BicompRoot: 5, ChildLink: embedding.Link1},
	}))

	err = ctx.BreakTie(4, 3, embedding.Link1)
	require.ErrorIs(t, err, visibility.ErrBreadcrumbMismatch)
}
