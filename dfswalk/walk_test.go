package dfswalk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath/horvert/dfswalk"
	"github.com/lvlath/horvert/embedding"
)

// buildTree builds: 0 is root with children 1, 2; 1 has child 3.
//
//	0
//	├─ 1
//	│  └─ 3
//	└─ 2
func buildTree(t *testing.T) *embedding.Container {
	t.Helper()
	c, err := embedding.NewContainer(4, 3)
	require.NoError(t, err)

	_, err = c.AddEdge(0, 1, embedding.TreeEdge)
	require.NoError(t, err)
	_, err = c.AddEdge(0, 2, embedding.TreeEdge)
	require.NoError(t, err)
	_, err = c.AddEdge(1, 3, embedding.TreeEdge)
	require.NoError(t, err)

	require.NoError(t, c.SetParent(0, embedding.NilVertex))
	require.NoError(t, c.SetParent(1, 0))
	require.NoError(t, c.SetParent(2, 0))
	require.NoError(t, c.SetParent(3, 1))

	return c
}

func TestWalkPreorderFollowsArcOrder(t *testing.T) {
	g := buildTree(t)

	res, err := dfswalk.Walk(g, 0)
	require.NoError(t, err)
	require.Equal(t, []embedding.VertexID{0, 1, 3, 2}, res.Order)
	require.Equal(t, 0, res.Depth[0])
	require.Equal(t, 1, res.Depth[1])
	require.Equal(t, 2, res.Depth[3])
	require.Equal(t, 1, res.Depth[2])
}

func TestWalkRejectsNonRoot(t *testing.T) {
	g := buildTree(t)

	_, err := dfswalk.Walk(g, 1)
	require.ErrorIs(t, err, dfswalk.ErrRootNotTreeRoot)
}

func TestWalkRejectsNilGraph(t *testing.T) {
	_, err := dfswalk.Walk(nil, 0)
	require.ErrorIs(t, err, dfswalk.ErrGraphNil)
}

func TestWalkHooksFireInOrderAndCanAbort(t *testing.T) {
	g := buildTree(t)

	var visited, exited []embedding.VertexID
	_, err := dfswalk.Walk(g, 0,
		dfswalk.WithOnVisit(func(v embedding.VertexID, _ int) error {
			visited = append(visited, v)
			return nil
		}),
		dfswalk.WithOnExit(func(v embedding.VertexID, _ int) error {
			exited = append(exited, v)
			return nil
		}),
	)
	require.NoError(t, err)
	require.Equal(t, []embedding.VertexID{0, 1, 3, 2}, visited)
	require.Equal(t, []embedding.VertexID{3, 1, 2, 0}, exited)
}
