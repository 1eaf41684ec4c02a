package visibility

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	blockOpenTag  = "<DrawPlanar>"
	blockCloseTag = "</DrawPlanar>"
)

// WriteBlock writes the finished drawing's coordinates as the persisted
// block spec.md §6 names: one "v: pos start end" line per vertex, one
// "e: pos start end" line per edge, bracketed by <DrawPlanar>/</DrawPlanar>,
// labeled with vertex/edge identifiers shifted by offset (0 for zero-based
// numbering, 1 for one-based). This mirrors the original's
// _DrawPlanar_WritePostprocess, generalized from a fixed malloc'd buffer to
// an io.Writer.
func (c *Context) WriteBlock(w io.Writer, offset int) error {
	if err := c.requireAttached(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s\n", blockOpenTag); err != nil {
		return err
	}
	for v := 0; v < c.graph.VertexCount(); v++ {
		info := c.vinfo[v]
		if _, err := fmt.Fprintf(bw, "%d: %d %d %d\n", v+offset, info.Pos, info.Start, info.End); err != nil {
			return err
		}
	}
	for e := 0; e < c.graph.EdgeCount(); e++ {
		rec := c.erec[e]
		if _, err := fmt.Fprintf(bw, "%d: %d %d %d\n", e+offset, rec.Pos, rec.Start, rec.End); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "%s\n", blockCloseTag); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadBlock reads a coordinate block written by WriteBlock (or the
// original's _DrawPlanar_WritePostprocess format) back into this context's
// auxiliary arrays. Lines are assigned to vertices, then edges, in the order
// they appear; each line's leading label is parsed but not compared with its
// index, so offset does not change the result. The graph this context is
// attached to must already have the VertexCount/EdgeCount the block was
// written with; ReadBlock only restores pos/start/end, not topology.
func (c *Context) ReadBlock(r io.Reader, offset int) error {
	if err := c.requireAttached(); err != nil {
		return err
	}
	sc := bufio.NewScanner(r)

	if !sc.Scan() || strings.TrimSpace(sc.Text()) != blockOpenTag {
		return fmt.Errorf("visibility: ReadBlock: missing %s: %w", blockOpenTag, ErrCodecFormat)
	}

	for v := 0; v < c.graph.VertexCount(); v++ {
		if !sc.Scan() {
			return fmt.Errorf("visibility: ReadBlock: vertex %d: %w", v, ErrCodecFormat)
		}
		var label, pos, start, end int
		if _, err := fmt.Sscanf(sc.Text(), "%d: %d %d %d", &label, &pos, &start, &end); err != nil {
			return fmt.Errorf("visibility: ReadBlock: vertex %d: %w", v, ErrCodecFormat)
		}
		c.vinfo[v].Pos, c.vinfo[v].Start, c.vinfo[v].End = pos, start, end
	}

	for e := 0; e < c.graph.EdgeCount(); e++ {
		if !sc.Scan() {
			return fmt.Errorf("visibility: ReadBlock: edge %d: %w", e, ErrCodecFormat)
		}
		var label, pos, start, end int
		if _, err := fmt.Sscanf(sc.Text(), "%d: %d %d %d", &label, &pos, &start, &end); err != nil {
			return fmt.Errorf("visibility: ReadBlock: edge %d: %w", e, ErrCodecFormat)
		}
		c.erec[e].Pos, c.erec[e].Start, c.erec[e].End = pos, start, end
	}

	if !sc.Scan() || strings.TrimSpace(sc.Text()) != blockCloseTag {
		return fmt.Errorf("visibility: ReadBlock: missing %s: %w", blockCloseTag, ErrCodecFormat)
	}

	return nil
}
