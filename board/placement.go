package board

// IsValidPosition reports whether shape fits at anchor: every absolute cell
// must be inside the bounds and empty. Out-of-bounds and collisions are not
// told apart.
func (g *Grid) IsValidPosition(shape Shape, anchor Cell) bool {
	for _, offset := range shape.Cells {
		c := anchor.Add(offset)
		if !g.bounds.Contains(c) || g.IsOccupied(c) {
			return false
		}
	}
	return true
}

// Commit writes the piece's visual into every cell it covers.
func (g *Grid) Commit(p Piece) {
	for c := range p.Cells() {
		g.Set(c, p.Shape.Visual)
	}
}

// Retract empties every cell the piece covers.
func (g *Grid) Retract(p Piece) {
	for c := range p.Cells() {
		g.Clear(c)
	}
}
