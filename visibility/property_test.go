package visibility_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath/horvert/embedding"
	"github.com/lvlath/horvert/fixtures"
	"github.com/lvlath/horvert/visibility"
)

// TestResolvePropertiesOverRandomFixtures encodes spec.md §8's quantified
// invariants as property tests over a random sample of the two fixture
// families this module ships (fixtures.Path, fixtures.Cycle): both are
// proven crossing-free under the default BEYOND flag (see DESIGN.md's
// `fixtures` entry), so a random embedding here means a random choice of
// shape and size, not a random tie-resolution trace. Properties 1-4 are
// exactly what Check() verifies; 5-7 are driven directly. The RNG uses a
// fixed seed, matching builder_test.go/prim_kruskal_test.go's convention
// in the retrieved corpus, so a failure is reproducible.
func TestResolvePropertiesOverRandomFixtures(t *testing.T) {
	const trials = 200
	const maxN = 12
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < trials; trial++ {
		n := 2 + rng.Intn(maxN-1) // [2, maxN]
		var g *embedding.Container
		var err error
		if n >= 3 && rng.Intn(2) == 0 {
			g, err = fixtures.Cycle(n)
		} else {
			g, err = fixtures.Path(n)
		}
		require.NoError(t, err)

		ctx, err := visibility.Attach(g)
		require.NoError(t, err)

		require.NoError(t, ctx.Resolve(true))

		// Properties 1-4: row/column permutation, endpoint matching, no
		// spurious crossings.
		require.NoError(t, ctx.Check())

		// Property 5: twin symmetry. Every arc's edge record is the same
		// object regardless of which endpoint's arc reached it, so walking
		// both arcs of an edge must agree on (pos, start, end).
		m := g.EdgeCount()
		seen := make([]bool, m)
		for v := 0; v < n; v++ {
			for a := g.FirstArc(embedding.VertexID(v)); a != embedding.NilArc; a = g.NextArc(a) {
				e := embedding.EdgeOf(a)
				twinE := embedding.EdgeOf(embedding.Twin(a))
				require.Equal(t, e, twinE)
				if seen[e] {
					continue
				}
				seen[e] = true
				rec := ctx.EdgeInfo(e)
				require.Less(t, rec.Start, rec.End)
			}
		}

		// Property 6: round trip. Writing the coordinate block and reading
		// it back must restore bit-identical records.
		beforeV := make([]visibility.VertexInfo, n)
		for v := 0; v < n; v++ {
			beforeV[v] = ctx.VertexInfo(embedding.VertexID(v))
		}
		beforeE := make([]visibility.EdgeRecord, m)
		for e := 0; e < m; e++ {
			beforeE[e] = ctx.EdgeInfo(embedding.EdgeID(e))
		}

		var buf bytes.Buffer
		require.NoError(t, ctx.WriteBlock(&buf, 0))
		require.NoError(t, ctx.ReadBlock(&buf, 0))

		for v := 0; v < n; v++ {
			require.Equal(t, beforeV[v], ctx.VertexInfo(embedding.VertexID(v)))
		}
		for e := 0; e < m; e++ {
			require.Equal(t, beforeE[e], ctx.EdgeInfo(embedding.EdgeID(e)))
		}

		// Property 7: idempotent renumbering. The identity permutation is a
		// fixed point, so applying it once or twice must leave state
		// unchanged.
		identity := make([]embedding.VertexID, n)
		for v := range identity {
			identity[v] = embedding.VertexID(v)
		}
		require.NoError(t, ctx.Renumber(identity))
		afterOnce := make([]visibility.VertexInfo, n)
		for v := 0; v < n; v++ {
			afterOnce[v] = ctx.VertexInfo(embedding.VertexID(v))
		}
		require.NoError(t, ctx.Renumber(identity))
		for v := 0; v < n; v++ {
			require.Equal(t, afterOnce[v], ctx.VertexInfo(embedding.VertexID(v)))
		}

		ctx.Detach()
	}
}
