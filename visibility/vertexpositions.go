package visibility

import (
	"fmt"

	"github.com/lvlath/horvert/dfswalk"
	"github.com/lvlath/horvert/drawlist"
	"github.com/lvlath/horvert/embedding"
)

// computeVertexPositions implements spec.md §4.3. It walks every DFS-tree
// root's component in preorder, resolving each non-root vertex's BEYOND/
// BETWEEN flag into a final ABOVE/BELOW flag and inserting it into a shared
// list-collection immediately before or after its parent; the list's final
// head-to-tail order is then the row assignment. Because every real vertex
// belongs to exactly one component, one list spanning all real vertices
// stands in for spec.md's "per-root list L" without losing the property
// that each component's vertices land in one contiguous run: a component's
// entries are only ever inserted relative to other members of the same
// component, and components are processed by ascending root index, so the
// list never interleaves two components.
func (c *Context) computeVertexPositions() error {
	g := c.graph
	n := g.VertexCount()

	list, err := drawlist.NewList(n)
	if err != nil {
		return fmt.Errorf("visibility: computeVertexPositions: %w", ErrResourceExhaustion)
	}

	for r := 0; r < n; r++ {
		root := embedding.VertexID(r)
		if !g.IsDFSTreeRoot(root) {
			continue
		}

		var walkErr error
		_, err := dfswalk.Walk(g, root, dfswalk.WithOnVisit(func(v embedding.VertexID, depth int) error {
			if depth == 0 {
				c.vinfo[v].Flag = Below
				if walkErr = list.PushBack(int(v)); walkErr != nil {
					return walkErr
				}
				return nil
			}

			parent := g.Parent(v)
			flag := c.vinfo[v].Flag
			if flag == Tie {
				walkErr = fmt.Errorf("visibility: computeVertexPositions: vertex %d: %w", v, ErrUnresolvedTie)
				return walkErr
			}

			resolved := resolveFlag(flag, c.vinfo[v].AncestorChild, c.vinfo)
			c.vinfo[v].Flag = resolved

			if resolved == Below {
				walkErr = list.InsertAfter(int(v), int(parent))
			} else {
				walkErr = list.InsertBefore(int(v), int(parent))
			}
			return walkErr
		}))
		if err != nil {
			if walkErr != nil {
				return walkErr
			}
			return fmt.Errorf("visibility: computeVertexPositions: %w", err)
		}
	}

	for pos, v := range list.ToSlice() {
		c.vinfo[v].Pos = pos
	}

	return nil
}

// resolveFlag implements the table in spec.md §4.3 step 2: a vertex's
// pending BEYOND/BETWEEN flag resolves against whether its ancestorChild
// (if any) already resolved ABOVE or BELOW.
func resolveFlag(flag DrawingFlag, ancestorChild embedding.VertexID, vinfo []VertexInfo) DrawingFlag {
	childBelow := ancestorChild == embedding.NilVertex || vinfo[ancestorChild].Flag == Below
	if childBelow {
		if flag == Between {
			return Above
		}
		return Below
	}
	if flag == Between {
		return Below
	}
	return Above
}
