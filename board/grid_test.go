package board_test

import (
	"testing"

	"github.com/plus3/playfield/board"
	"github.com/stretchr/testify/assert"
)

func TestGridSetAndClear(t *testing.T) {
	g := board.NewGrid(board.NewBounds(4, 4))
	c := board.Cell{Col: -1, Row: 1}

	assert.False(t, g.IsOccupied(c))

	g.Set(c, 7)
	assert.True(t, g.IsOccupied(c))
	v, ok := g.Visual(c)
	assert.True(t, ok)
	assert.Equal(t, board.VisualID(7), v)
	assert.Equal(t, 1, g.OccupiedCount())

	g.Clear(c)
	assert.False(t, g.IsOccupied(c))
	_, ok = g.Visual(c)
	assert.False(t, ok)
	assert.Equal(t, 0, g.OccupiedCount())
}

func TestGridVisualZeroIsStillOccupied(t *testing.T) {
	g := board.NewGrid(board.NewBounds(4, 4))
	c := board.Cell{Col: 0, Row: 0}

	g.Set(c, 0)
	assert.True(t, g.IsOccupied(c))
}

func TestGridIgnoresOutOfBounds(t *testing.T) {
	g := board.NewGrid(board.NewBounds(4, 4))

	g.Set(board.Cell{Col: 2, Row: 0}, 1)
	g.Set(board.Cell{Col: 0, Row: -3}, 1)
	g.Clear(board.Cell{Col: 100, Row: 100})

	assert.Equal(t, 0, g.OccupiedCount())
	assert.False(t, g.IsOccupied(board.Cell{Col: 2, Row: 0}))
}

func TestGridClearAll(t *testing.T) {
	b := board.NewBounds(5, 6)
	g := board.NewGrid(b)
	for col := b.MinCol; col < b.MaxCol(); col++ {
		g.Set(board.Cell{Col: col, Row: b.MinRow}, 3)
	}
	g.Set(board.Cell{Col: 0, Row: 2}, 4)
	assert.Equal(t, 6, g.OccupiedCount())
	assert.Equal(t, 5, g.RowCount(b.MinRow))

	g.ClearAll()

	assert.Equal(t, 0, g.OccupiedCount())
	assert.Equal(t, 0, g.RowCount(b.MinRow))
}
