package board_test

import (
	"testing"

	"github.com/plus3/playfield/board"
	"github.com/stretchr/testify/assert"
)

func TestIsLineFull(t *testing.T) {
	b := board.NewBounds(10, 20)
	g := board.NewGrid(b)

	fillRow(g, b.MinRow, 1, 0)
	assert.False(t, g.IsLineFull(b.MinRow))

	g.Set(board.Cell{Col: 0, Row: b.MinRow}, 1)
	assert.True(t, g.IsLineFull(b.MinRow))
	assert.False(t, g.IsLineFull(b.MinRow+1))

	assert.False(t, g.IsLineFull(b.MaxRow()))
	assert.False(t, g.IsLineFull(b.MinRow-1))
}

func TestLineClearShiftsRowsDown(t *testing.T) {
	b := board.NewBounds(6, 5)
	g := board.NewGrid(b)

	fillRow(g, b.MinRow, 1)
	g.Set(board.Cell{Col: -3, Row: b.MinRow + 1}, 2)
	g.Set(board.Cell{Col: 1, Row: b.MinRow + 2}, 3)
	g.Set(board.Cell{Col: 2, Row: b.MaxRow() - 1}, 4)
	before := g.OccupiedCount()

	g.LineClear(b.MinRow)

	assert.Equal(t, before-b.Width, g.OccupiedCount())

	v, ok := g.Visual(board.Cell{Col: -3, Row: b.MinRow})
	assert.True(t, ok)
	assert.Equal(t, board.VisualID(2), v)

	v, ok = g.Visual(board.Cell{Col: 1, Row: b.MinRow + 1})
	assert.True(t, ok)
	assert.Equal(t, board.VisualID(3), v)

	v, ok = g.Visual(board.Cell{Col: 2, Row: b.MaxRow() - 2})
	assert.True(t, ok)
	assert.Equal(t, board.VisualID(4), v)

	assert.Equal(t, 0, g.RowCount(b.MaxRow()-1))
}

func TestLineClearTopRowReadsEmpty(t *testing.T) {
	b := board.NewBounds(4, 4)
	g := board.NewGrid(b)
	top := b.MaxRow() - 1

	fillRow(g, top, 5)
	g.LineClear(top)

	assert.Equal(t, 0, g.OccupiedCount())
}

func TestClearLinesAdjacentRows(t *testing.T) {
	b := board.NewBounds(4, 8)
	g := board.NewGrid(b)

	fillRow(g, b.MinRow, 1)
	fillRow(g, b.MinRow+1, 1)
	fillRow(g, b.MinRow+2, 1, b.MinCol)
	fillRow(g, b.MinRow+3, 1)
	g.Set(board.Cell{Col: 0, Row: b.MinRow + 4}, 9)

	cleared := g.ClearLines()

	assert.Equal(t, 3, cleared)
	assert.Equal(t, 3, g.RowCount(b.MinRow))
	assert.False(t, g.IsOccupied(board.Cell{Col: b.MinCol, Row: b.MinRow}))
	v, ok := g.Visual(board.Cell{Col: 0, Row: b.MinRow + 1})
	assert.True(t, ok)
	assert.Equal(t, board.VisualID(9), v)
	assert.Equal(t, 4, g.OccupiedCount())
}

func TestClearLinesNothingFull(t *testing.T) {
	b := board.NewBounds(4, 4)
	g := board.NewGrid(b)
	fillRow(g, b.MinRow, 1, 1)
	before := snapshot(g)

	assert.Equal(t, 0, g.ClearLines())
	assert.Equal(t, before, snapshot(g))
}

func TestClearLinesFourRows(t *testing.T) {
	b := board.NewBounds(10, 20)
	g := board.NewGrid(b)
	for row := b.MinRow; row < b.MinRow+4; row++ {
		fillRow(g, row, 2)
	}

	assert.Equal(t, 4, g.ClearLines())
	assert.Equal(t, 0, g.OccupiedCount())
}
