package visibility

import (
	"fmt"

	"github.com/lvlath/horvert/embedding"
)

// Renumber implements spec.md §4.7: if the host sorts vertices by DFS-index
// after embedding, it supplies perm, mapping every old vertex index to its
// new one, and this hook (a) rewrites Ancestor/AncestorChild through perm,
// then (b) permutes the per-vertex records in place so record i now lives
// at perm[i]. The permutation step uses the host's index space itself as
// the "placed" marker space (one bool per slot, no other allocation) and
// follows cycles, matching the in-place scatter the original C performs
// with the embedder's visited flags. Calling Renumber with the identity
// permutation is a no-op, making repeated calls at a fixed point idempotent.
func (c *Context) Renumber(perm []embedding.VertexID) error {
	if err := c.requireAttached(); err != nil {
		return err
	}
	if len(perm) != len(c.vinfo) {
		return fmt.Errorf("visibility: Renumber: permutation length %d != %d vertex slots: %w", len(perm), len(c.vinfo), ErrContractViolation)
	}

	for v := range c.vinfo {
		if c.vinfo[v].Ancestor != embedding.NilVertex {
			c.vinfo[v].Ancestor = perm[c.vinfo[v].Ancestor]
		}
		if c.vinfo[v].AncestorChild != embedding.NilVertex {
			c.vinfo[v].AncestorChild = perm[c.vinfo[v].AncestorChild]
		}
	}

	placed := make([]bool, len(c.vinfo))
	for start := range c.vinfo {
		if placed[start] {
			continue
		}
		cur := start
		val := c.vinfo[start]
		for {
			next := int(perm[cur])
			placed[cur] = true
			if next == start {
				c.vinfo[next] = val
				break
			}
			tmp := c.vinfo[next]
			c.vinfo[next] = val
			val = tmp
			cur = next
		}
	}

	return nil
}
