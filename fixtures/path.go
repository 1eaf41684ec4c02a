// path.go — Path(n) generator, adapted from builder/impl_path.go.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Tree edges (i-1, i) for i = 1..n-1, in increasing i.
//   - Vertex i's DFS parent is i-1; vertex 0 is the DFS tree root.
//   - No back edges: every non-root vertex resolves BELOW its parent by
//     default, so Resolve(true) on the result never needs Collect/BreakTie.

package fixtures

import (
	"fmt"

	"github.com/lvlath/horvert/embedding"
)

const minPathVertices = 2

// Path returns a Container holding the simple path P_n: vertices
// 0..n-1 connected in a straight DFS chain.
func Path(n int, opts ...FixtureOption) (*embedding.Container, error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("fixtures: Path: n=%d < min=%d: %w", n, minPathVertices, ErrTooFewVertices)
	}
	cfg := newFixtureConfig(opts...)

	c, err := embedding.NewContainer(n, n-1, embedding.WithVirtualCapacity(cfg.virtualCap))
	if err != nil {
		return nil, fmt.Errorf("fixtures: Path: %w", err)
	}

	if err := c.SetParent(0, embedding.NilVertex); err != nil {
		return nil, fmt.Errorf("fixtures: Path: %w", err)
	}
	for i := 1; i < n; i++ {
		if _, err := c.AddEdge(embedding.VertexID(i-1), embedding.VertexID(i), embedding.TreeEdge); err != nil {
			return nil, fmt.Errorf("fixtures: Path: AddEdge(%d,%d): %w", i-1, i, err)
		}
		if err := c.SetParent(embedding.VertexID(i), embedding.VertexID(i-1)); err != nil {
			return nil, fmt.Errorf("fixtures: Path: SetParent(%d): %w", i, err)
		}
	}

	return c, nil
}
