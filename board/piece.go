package board

import "iter"

// Shape is a set of cell offsets plus the visual every cell is drawn with.
// The board only ever reads a Shape.
type Shape struct {
	Cells  []Cell
	Visual VisualID
}

// At places the shape at anchor.
func (s Shape) At(anchor Cell) Piece {
	return Piece{Shape: s, Position: anchor}
}

// Piece is a Shape anchored at an absolute position.
type Piece struct {
	Shape    Shape
	Position Cell
}

// Cells yields the absolute cells covered by the piece.
func (p Piece) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, offset := range p.Shape.Cells {
			if !yield(p.Position.Add(offset)) {
				return
			}
		}
	}
}

// Moved returns a copy of the piece translated by delta.
func (p Piece) Moved(delta Cell) Piece {
	return Piece{Shape: p.Shape, Position: p.Position.Add(delta)}
}
