package board_test

import (
	"testing"

	"github.com/plus3/playfield/board"
	"github.com/stretchr/testify/assert"
)

var tShape = board.Shape{
	Cells:  []board.Cell{{Col: 0, Row: 1}, {Col: -1, Row: 0}, {Col: 0, Row: 0}, {Col: 1, Row: 0}},
	Visual: 3,
}

func TestIsValidPosition(t *testing.T) {
	g := board.NewGrid(board.NewBounds(10, 20))

	t.Run("empty board inside bounds", func(t *testing.T) {
		assert.True(t, g.IsValidPosition(tShape, board.Cell{Col: 0, Row: 0}))
		assert.True(t, g.IsValidPosition(tShape, board.Cell{Col: -4, Row: -10}))
		assert.True(t, g.IsValidPosition(tShape, board.Cell{Col: 3, Row: 8}))
	})

	t.Run("any cell out of bounds", func(t *testing.T) {
		assert.False(t, g.IsValidPosition(tShape, board.Cell{Col: -5, Row: 0}))
		assert.False(t, g.IsValidPosition(tShape, board.Cell{Col: 4, Row: 0}))
		assert.False(t, g.IsValidPosition(tShape, board.Cell{Col: 0, Row: -11}))
		assert.False(t, g.IsValidPosition(tShape, board.Cell{Col: 0, Row: 9}))
	})

	t.Run("collision with one occupied cell", func(t *testing.T) {
		g := board.NewGrid(board.NewBounds(10, 20))
		g.Set(board.Cell{Col: 1, Row: 0}, 9)

		assert.False(t, g.IsValidPosition(tShape, board.Cell{Col: 0, Row: 0}))
		assert.True(t, g.IsValidPosition(tShape, board.Cell{Col: 0, Row: 1}))
	})
}

func TestCommitRetractRoundTrip(t *testing.T) {
	g := board.NewGrid(board.NewBounds(10, 20))
	g.Set(board.Cell{Col: 4, Row: -10}, 1)
	g.Set(board.Cell{Col: -5, Row: 9}, 2)
	before := snapshot(g)

	p := tShape.At(board.Cell{Col: 0, Row: 0})
	g.Commit(p)

	for c := range p.Cells() {
		v, ok := g.Visual(c)
		assert.True(t, ok)
		assert.Equal(t, tShape.Visual, v)
	}
	assert.Equal(t, 6, g.OccupiedCount())

	g.Retract(p)
	assert.Equal(t, before, snapshot(g))
}

func TestPieceCells(t *testing.T) {
	p := tShape.At(board.Cell{Col: 2, Row: 3})

	var cells []board.Cell
	for c := range p.Cells() {
		cells = append(cells, c)
	}

	assert.Equal(t, []board.Cell{{Col: 2, Row: 4}, {Col: 1, Row: 3}, {Col: 2, Row: 3}, {Col: 3, Row: 3}}, cells)
	assert.Equal(t, board.Cell{Col: 1, Row: 2}, p.Moved(board.Cell{Col: -1, Row: -1}).Position)
}

// snapshot captures occupancy keyed by cell for comparisons.
func snapshot(g *board.Grid) map[board.Cell]board.VisualID {
	b := g.Bounds()
	out := make(map[board.Cell]board.VisualID)
	for row := b.MinRow; row < b.MaxRow(); row++ {
		for col := b.MinCol; col < b.MaxCol(); col++ {
			c := board.Cell{Col: col, Row: row}
			if v, ok := g.Visual(c); ok {
				out[c] = v
			}
		}
	}
	return out
}

func fillRow(g *board.Grid, row int, visual board.VisualID, skipCols ...int) {
	b := g.Bounds()
	for col := b.MinCol; col < b.MaxCol(); col++ {
		skip := false
		for _, s := range skipCols {
			if s == col {
				skip = true
			}
		}
		if !skip {
			g.Set(board.Cell{Col: col, Row: row}, visual)
		}
	}
}
