package game

import (
	"math/rand/v2"

	"github.com/plus3/playfield/board"
)

// Visual ids of the standard tetrominoes. Zero is left unused so renderers
// can treat it as "no tile".
const (
	VisualI board.VisualID = iota + 1
	VisualO
	VisualT
	VisualS
	VisualZ
	VisualJ
	VisualL
)

func shape(visual board.VisualID, cells ...board.Cell) board.Shape {
	return board.Shape{Cells: cells, Visual: visual}
}

// Tetrominoes lists the seven standard shapes in spawn orientation, offsets
// relative to the spawn anchor with rows growing upward.
var Tetrominoes = []board.Shape{
	shape(VisualI, board.Cell{Col: -1, Row: 1}, board.Cell{Col: 0, Row: 1}, board.Cell{Col: 1, Row: 1}, board.Cell{Col: 2, Row: 1}),
	shape(VisualO, board.Cell{Col: 0, Row: 1}, board.Cell{Col: 1, Row: 1}, board.Cell{Col: 0, Row: 0}, board.Cell{Col: 1, Row: 0}),
	shape(VisualT, board.Cell{Col: 0, Row: 1}, board.Cell{Col: -1, Row: 0}, board.Cell{Col: 0, Row: 0}, board.Cell{Col: 1, Row: 0}),
	shape(VisualS, board.Cell{Col: 0, Row: 1}, board.Cell{Col: 1, Row: 1}, board.Cell{Col: -1, Row: 0}, board.Cell{Col: 0, Row: 0}),
	shape(VisualZ, board.Cell{Col: -1, Row: 1}, board.Cell{Col: 0, Row: 1}, board.Cell{Col: 0, Row: 0}, board.Cell{Col: 1, Row: 0}),
	shape(VisualJ, board.Cell{Col: -1, Row: 1}, board.Cell{Col: -1, Row: 0}, board.Cell{Col: 0, Row: 0}, board.Cell{Col: 1, Row: 0}),
	shape(VisualL, board.Cell{Col: 1, Row: 1}, board.Cell{Col: -1, Row: 0}, board.Cell{Col: 0, Row: 0}, board.Cell{Col: 1, Row: 0}),
}

// Bag deals shapes in shuffled rounds: every shape appears once per round.
type Bag struct {
	rng    *rand.Rand
	shapes []board.Shape
	next   []int
}

// NewBag creates a bag over shapes seeded with seed.
func NewBag(shapes []board.Shape, seed uint64) *Bag {
	return &Bag{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		shapes: shapes,
	}
}

func (b *Bag) refill() {
	round := make([]int, len(b.shapes))
	for i := range round {
		round[i] = i
	}
	b.rng.Shuffle(len(round), func(i, j int) {
		round[i], round[j] = round[j], round[i]
	})
	b.next = round
}

// Next removes and returns the upcoming shape.
func (b *Bag) Next() board.Shape {
	if len(b.next) == 0 {
		b.refill()
	}
	i := b.next[0]
	b.next = b.next[1:]
	return b.shapes[i]
}

// Peek returns the upcoming shape without consuming it.
func (b *Bag) Peek() board.Shape {
	if len(b.next) == 0 {
		b.refill()
	}
	return b.shapes[b.next[0]]
}
