package interaction

import (
	"math"

	"github.com/samdwyer/dungeonkeep/internal/world"
)

// PointerStatus is what the pointer is over, recomputed on every move.
type PointerStatus struct {
	OnGUI    bool // outside the map viewport
	OnView   bool // over a tile of the playable map
	Taggable bool // over a tile the current tool may tag for digging
}

// ViewRect is the screen region showing the map. Everything outside is GUI.
type ViewRect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the screen position lies inside the rectangle.
// The left and top edges are inside, the right and bottom edges outside.
func (r ViewRect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Projector maps a screen position to the rounded tile under it.
type Projector interface {
	TileAt(x, y float64) world.Point
}

// GridProjector maps screen space onto a regular tile grid.
// A zero cell size counts as one.
type GridProjector struct {
	OriginX, OriginY      float64
	CellWidth, CellHeight float64
}

// TileAt rounds the position to the nearest tile.
func (p GridProjector) TileAt(x, y float64) world.Point {
	w, h := p.CellWidth, p.CellHeight
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	return world.Point{
		X: int(math.Round((x - p.OriginX) / w)),
		Y: int(math.Round((y - p.OriginY) / h)),
	}
}
