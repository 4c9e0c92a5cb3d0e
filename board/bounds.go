package board

// Bounds is the fixed rectangular playable region of a board.
type Bounds struct {
	MinCol int
	MinRow int
	Width  int
	Height int
}

// NewBounds centers a width x height rectangle on the origin. For even sizes
// the extra column or row lands on the negative side.
func NewBounds(width, height int) Bounds {
	return Bounds{
		MinCol: -width / 2,
		MinRow: -height / 2,
		Width:  width,
		Height: height,
	}
}

// MaxCol is the exclusive upper column limit.
func (b Bounds) MaxCol() int { return b.MinCol + b.Width }

// MaxRow is the exclusive upper row limit.
func (b Bounds) MaxRow() int { return b.MinRow + b.Height }

// Area is the number of cells inside the bounds.
func (b Bounds) Area() int { return b.Width * b.Height }

// Contains reports whether c lies inside the bounds.
func (b Bounds) Contains(c Cell) bool {
	return c.Col >= b.MinCol && c.Col < b.MaxCol() &&
		c.Row >= b.MinRow && c.Row < b.MaxRow()
}
