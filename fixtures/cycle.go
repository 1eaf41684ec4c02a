// cycle.go — Cycle(n) generator, adapted from builder/impl_cycle.go.
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices).
//   - Tree edges (i-1, i) for i = 1..n-1, plus one closing back edge
//     (n-1, 0), in that order.
//   - Vertex i's DFS parent is i-1; vertex 0 is the DFS tree root.
//   - The closing back edge is the only non-tree edge and spans the full
//     row range [0, n-1]; since no other edge's range can interleave it
//     (every other edge's range is a sub-interval of two consecutive
//     positions), Resolve(true) never needs Collect/BreakTie here either.

package fixtures

import (
	"fmt"

	"github.com/lvlath/horvert/embedding"
)

const minCycleVertices = 3

// Cycle returns a Container holding the simple cycle C_n: a DFS path
// 0..n-1 closed by a back edge from n-1 back to 0.
func Cycle(n int, opts ...FixtureOption) (*embedding.Container, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("fixtures: Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}
	cfg := newFixtureConfig(opts...)

	c, err := embedding.NewContainer(n, n, embedding.WithVirtualCapacity(cfg.virtualCap))
	if err != nil {
		return nil, fmt.Errorf("fixtures: Cycle: %w", err)
	}

	if err := c.SetParent(0, embedding.NilVertex); err != nil {
		return nil, fmt.Errorf("fixtures: Cycle: %w", err)
	}
	for i := 1; i < n; i++ {
		if _, err := c.AddEdge(embedding.VertexID(i-1), embedding.VertexID(i), embedding.TreeEdge); err != nil {
			return nil, fmt.Errorf("fixtures: Cycle: AddEdge(%d,%d): %w", i-1, i, err)
		}
		if err := c.SetParent(embedding.VertexID(i), embedding.VertexID(i-1)); err != nil {
			return nil, fmt.Errorf("fixtures: Cycle: SetParent(%d): %w", i, err)
		}
	}

	if _, err := c.AddEdge(embedding.VertexID(n-1), 0, embedding.BackEdge); err != nil {
		return nil, fmt.Errorf("fixtures: Cycle: closing AddEdge(%d,0): %w", n-1, err)
	}

	return c, nil
}
