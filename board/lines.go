package board

// IsLineFull reports whether every column of row is occupied.
func (g *Grid) IsLineFull(row int) bool {
	if row < g.bounds.MinRow || row >= g.bounds.MaxRow() {
		return false
	}
	return g.RowCount(row) == g.bounds.Width
}

// LineClear empties row and shifts every row above it down by one. The top
// row is refilled with empty tiles.
func (g *Grid) LineClear(row int) {
	if row < g.bounds.MinRow || row >= g.bounds.MaxRow() {
		return
	}
	w := g.bounds.Width
	start := (row - g.bounds.MinRow) * w
	copy(g.tiles[start:], g.tiles[start+w:])
	clear(g.tiles[len(g.tiles)-w:])
}

// ClearLines scans from the bottom row upward, clearing every full row, and
// returns how many rows were removed. After a clear the same row index is
// examined again since a full row may have been shifted into it.
func (g *Grid) ClearLines() int {
	cleared := 0
	row := g.bounds.MinRow
	for row < g.bounds.MaxRow() {
		if g.IsLineFull(row) {
			g.LineClear(row)
			cleared++
			continue
		}
		row++
	}
	return cleared
}
