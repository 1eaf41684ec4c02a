package visibility

import (
	"io"
	"strconv"
	"strings"
)

// Render returns the finished drawing as an ASCII grid, per spec.md §6: 2N
// rows of M+1 characters (M columns plus a trailing newline), vertex rows
// drawn with '-' across their horizontal span and a centered integer label,
// edge columns drawn with '|' across their vertical span. This is a direct
// translation of the original C's _RenderToString, which computes the same
// grid in a single malloc'd buffer of size (M+1)*2N+1.
func (c *Context) Render() (string, error) {
	var b strings.Builder
	if err := c.RenderTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderTo writes the ASCII grid to w, letting a caller stream it to
// stdout, a file, or any other io.Writer instead of building a string the
// original's gp_DrawPlanar_RenderToFile filename sentinels ("stdout",
// "stderr") used to special-case.
func (c *Context) RenderTo(w io.Writer) error {
	if err := c.requireAttached(); err != nil {
		return err
	}
	n := c.graph.VertexCount()
	m := c.graph.EdgeCount()

	rows := make([][]byte, 2*n)
	for i := range rows {
		row := make([]byte, m+1)
		for j := 0; j < m; j++ {
			row[j] = ' '
		}
		row[m] = '\n'
		rows[i] = row
	}

	// With no edges there are no columns (column 0 is the newline), so every
	// vertex segment has zero length and nothing is drawn.
	for v := 0; m > 0 && v < n; v++ {
		info := c.vinfo[v]
		pos := info.Pos
		for col := info.Start; col <= info.End; col++ {
			rows[2*pos][col] = '-'
		}

		label := strconv.Itoa(v)
		mid := (info.Start + info.End) / 2
		width := info.End - info.Start + 1
		if width >= len(label) {
			copy(rows[2*pos][mid:], label)
		} else if len(label) == 2 {
			rows[2*pos][mid] = label[0]
			rows[2*pos+1][mid] = label[1]
		} else {
			rows[2*pos][mid] = '*'
			rows[2*pos+1][mid] = label[len(label)-1]
		}
	}

	for e := 0; e < m; e++ {
		rec := c.erec[e]
		pos := rec.Pos
		for row := rec.Start; row < rec.End; row++ {
			if row > rec.Start {
				rows[2*row][pos] = '|'
			}
			rows[2*row+1][pos] = '|'
		}
	}

	for _, row := range rows {
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
