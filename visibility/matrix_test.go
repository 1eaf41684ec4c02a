package visibility_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath/horvert/visibility"
)

func TestIncidenceMatrixPath3(t *testing.T) {
	g := buildPath3(t)
	ctx, err := visibility.Attach(g)
	require.NoError(t, err)
	defer ctx.Detach()

	im, err := ctx.IncidenceMatrix()
	require.NoError(t, err)
	require.Equal(t, 3, im.Rows)
	require.Equal(t, 2, im.Cols)

	want := [][]uint8{
		{1, 0}, // vertex 0: edge 0 only
		{1, 1}, // vertex 1: edge 0 and edge 1
		{0, 1}, // vertex 2: edge 1 only
	}
	require.Equal(t, want, im.Data)
}

func TestIncidenceMatrixRequiresAttachedContext(t *testing.T) {
	g := buildPath3(t)
	ctx, err := visibility.Attach(g)
	require.NoError(t, err)
	ctx.Detach()

	_, err = ctx.IncidenceMatrix()
	require.ErrorIs(t, err, visibility.ErrNotAttached)
}
