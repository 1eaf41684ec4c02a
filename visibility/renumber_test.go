package visibility_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath/horvert/embedding"
	"github.com/lvlath/horvert/visibility"
)

func TestRenumberIdentityIsNoOp(t *testing.T) {
	g := buildPath3(t)
	ctx, err := visibility.Attach(g)
	require.NoError(t, err)
	defer ctx.Detach()

	require.NoError(t, ctx.Resolve(true))
	before := []visibility.VertexInfo{ctx.VertexInfo(0), ctx.VertexInfo(1), ctx.VertexInfo(2)}

	// buildPath3's Container reserves 3 virtual slots by default, so the
	// permutation covers all 6 vertex slots.
	require.NoError(t, ctx.Renumber([]embedding.VertexID{0, 1, 2, 3, 4, 5}))

	for v := 0; v < 3; v++ {
		require.Equal(t, before[v], ctx.VertexInfo(embedding.VertexID(v)))
	}
}

// TestRenumberScattersRecordsAlongCycle verifies the in-place permutation
// against a hand-worked 3-cycle: perm = [1,2,0,3,4,5] (the three virtual
// slots fixed) means old record i now lives at slot perm[i], so old slot 0's
// record ends up at 1, old slot 1's at 2, and old slot 2's at 0.
func TestRenumberScattersRecordsAlongCycle(t *testing.T) {
	g := buildPath3(t)
	ctx, err := visibility.Attach(g)
	require.NoError(t, err)
	defer ctx.Detach()

	require.NoError(t, ctx.Resolve(true))
	old0, old1, old2 := ctx.VertexInfo(0), ctx.VertexInfo(1), ctx.VertexInfo(2)

	require.NoError(t, ctx.Renumber([]embedding.VertexID{1, 2, 0, 3, 4, 5}))

	require.Equal(t, old0, ctx.VertexInfo(1))
	require.Equal(t, old1, ctx.VertexInfo(2))
	require.Equal(t, old2, ctx.VertexInfo(0))
}

func TestRenumberRemapsAncestorFields(t *testing.T) {
	g := buildHookGraph(t)
	ctx, err := visibility.Attach(g)
	require.NoError(t, err)
	defer ctx.Detach()

	collectMerge(t, ctx)
	require.NoError(t, ctx.BreakTie(4, 3, embedding.Link1))
	require.Equal(t, embedding.VertexID(0), ctx.VertexInfo(1).Ancestor)
	require.Equal(t, embedding.VertexID(1), ctx.VertexInfo(1).AncestorChild)

	// Swap real vertices 0 and 1; leave 2, 3 (and virtual 4) fixed.
	perm := []embedding.VertexID{1, 0, 2, 3, 4}
	require.NoError(t, ctx.Renumber(perm))

	moved := ctx.VertexInfo(0) // vertex 1's old record now lives at slot 0
	require.Equal(t, embedding.VertexID(1), moved.Ancestor)      // old Ancestor 0 remapped to 1
	require.Equal(t, embedding.VertexID(0), moved.AncestorChild) // old AncestorChild 1 remapped to 0
}

func TestRenumberRejectsWrongLength(t *testing.T) {
	g := buildPath3(t)
	ctx, err := visibility.Attach(g)
	require.NoError(t, err)
	defer ctx.Detach()

	err = ctx.Renumber([]embedding.VertexID{0, 1})
	require.ErrorIs(t, err, visibility.ErrContractViolation)
}
