package board_test

import (
	"fmt"

	"github.com/plus3/playfield/board"
)

// ExampleBoard_Settle fills the bottom row of a small board and settles the
// last cell, clearing the row.
func ExampleBoard_Settle() {
	cfg := board.DefaultConfig()
	cfg.Width, cfg.Height = 4, 6
	cfg.Spawn = board.Cell{Col: 0, Row: 2}

	b, err := board.New(cfg)
	if err != nil {
		panic(err)
	}

	bottom := b.Bounds().MinRow
	bar := board.Shape{
		Cells:  []board.Cell{{Col: 0}, {Col: 1}, {Col: 2}},
		Visual: 1,
	}
	b.Settle(bar.At(board.Cell{Col: -2, Row: bottom}))

	dot := board.Shape{Cells: []board.Cell{{}}, Visual: 2}
	res := b.Settle(dot.At(board.Cell{Col: 1, Row: bottom}))

	fmt.Printf("lines=%d points=%d score=%d level=%d\n", res.Lines, res.Points, res.State.Score, res.State.Level)
	fmt.Printf("occupied=%d\n", b.Grid().OccupiedCount())

	// Output:
	// lines=1 points=10 score=10 level=1
	// occupied=0
}

// ExampleBoard_Spawn shows the game-over transition when the spawn anchor is
// already taken.
func ExampleBoard_Spawn() {
	b, err := board.New(board.DefaultConfig())
	if err != nil {
		panic(err)
	}

	dot := board.Shape{Cells: []board.Cell{{}}, Visual: 1}
	_, ok := b.Spawn(dot)
	fmt.Println(ok, b.Status())

	_, ok = b.Spawn(dot)
	fmt.Println(ok, b.Status())

	// Output:
	// true playing
	// false game over
}
