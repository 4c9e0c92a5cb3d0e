// Package board implements the playfield of a falling-block puzzle game:
// a bounded grid of tiles, placement validation, line clearing and the
// score/level/fall-delay progression driven by cleared lines.
//
// Rows grow upward. The bottom row of a board is Bounds.MinRow and the
// playable rectangle is centered on the origin.
package board

import "fmt"

// Cell is an integer (column, row) coordinate. It is used both as an
// absolute grid position and as an offset relative to a piece anchor.
type Cell struct {
	Col int
	Row int
}

// Add returns c translated by offset.
func (c Cell) Add(offset Cell) Cell {
	return Cell{Col: c.Col + offset.Col, Row: c.Row + offset.Row}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}
