package board

// VisualID is an opaque identifier a renderer maps to a tile appearance.
// Occupancy never depends on its value.
type VisualID uint16

type tile struct {
	occupied bool
	visual   VisualID
}

// Grid stores the tile state of every cell inside a fixed Bounds in
// row-major order, bottom row first.
type Grid struct {
	bounds Bounds
	tiles  []tile
}

// NewGrid allocates an empty grid covering bounds.
func NewGrid(bounds Bounds) *Grid {
	return &Grid{
		bounds: bounds,
		tiles:  make([]tile, bounds.Area()),
	}
}

// Bounds returns the region covered by the grid.
func (g *Grid) Bounds() Bounds { return g.bounds }

func (g *Grid) index(c Cell) (int, bool) {
	if !g.bounds.Contains(c) {
		return 0, false
	}
	return (c.Row-g.bounds.MinRow)*g.bounds.Width + (c.Col - g.bounds.MinCol), true
}

// Set marks c occupied with the given visual. Cells outside the bounds are
// ignored; callers validate placements before committing them.
func (g *Grid) Set(c Cell, visual VisualID) {
	if i, ok := g.index(c); ok {
		g.tiles[i] = tile{occupied: true, visual: visual}
	}
}

// Clear marks c empty.
func (g *Grid) Clear(c Cell) {
	if i, ok := g.index(c); ok {
		g.tiles[i] = tile{}
	}
}

// IsOccupied reports whether c holds a tile. Cells outside the bounds are
// always empty.
func (g *Grid) IsOccupied(c Cell) bool {
	i, ok := g.index(c)
	return ok && g.tiles[i].occupied
}

// Visual returns the visual id stored at c and whether c is occupied.
func (g *Grid) Visual(c Cell) (VisualID, bool) {
	i, ok := g.index(c)
	if !ok || !g.tiles[i].occupied {
		return 0, false
	}
	return g.tiles[i].visual, true
}

// ClearAll resets every cell to empty.
func (g *Grid) ClearAll() {
	clear(g.tiles)
}

// OccupiedCount returns the number of occupied cells.
func (g *Grid) OccupiedCount() int {
	n := 0
	for _, t := range g.tiles {
		if t.occupied {
			n++
		}
	}
	return n
}

// RowCount returns the number of occupied cells in row.
func (g *Grid) RowCount(row int) int {
	if row < g.bounds.MinRow || row >= g.bounds.MaxRow() {
		return 0
	}
	start := (row - g.bounds.MinRow) * g.bounds.Width
	n := 0
	for _, t := range g.tiles[start : start+g.bounds.Width] {
		if t.occupied {
			n++
		}
	}
	return n
}
