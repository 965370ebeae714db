package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonkeep/internal/entity"
	"github.com/samdwyer/dungeonkeep/internal/gamedata"
	"github.com/samdwyer/dungeonkeep/internal/interaction"
	"github.com/samdwyer/dungeonkeep/internal/world"
)

// Frame is everything drawn in one pass.
type Frame struct {
	Dungeon *world.Dungeon
	Things  []entity.Thing
	Rooms   *gamedata.RoomRegistry
	Status  string // left side of the status bar
}

// Renderer handles drawing the game to the screen. It also receives the
// selection overlay and cursor from the interaction controller and keeps
// them for the next frame.
type Renderer struct {
	screen  *Screen
	overlay interaction.Overlay
	cursor  interaction.Cursor
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// DrawSelection stores the overlay for the next frame.
func (r *Renderer) DrawSelection(o interaction.Overlay) {
	r.overlay = o
}

// SetCursor stores the cursor glyph. A terminal cannot swap the mouse
// pointer, so the glyph name goes to the status bar.
func (r *Renderer) SetCursor(c interaction.Cursor) {
	r.cursor = c
}

// Cursor returns the last cursor set.
func (r *Renderer) Cursor() interaction.Cursor {
	return r.cursor
}

// Render draws the map, overlay, things and status bar.
func (r *Renderer) Render(f Frame) {
	r.screen.begin()
	d := f.Dungeon

	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			ch, style := cellLook(d.Cells[y][x], f.Rooms)
			if r.overlay.Visible && r.overlay.Area.Contains(x, y) {
				style = style.Background(overlayColor(r.overlay.Color))
			}
			r.screen.put(x, y, ch, style)
		}
	}

	for _, th := range f.Things {
		x, y := th.Position()
		style := tcell.StyleDefault.Foreground(th.Color()).Bold(true)
		r.screen.put(x, y, th.Glyph(), style)
	}

	bar := fmt.Sprintf("%s  [%s]", f.Status, r.cursor)
	r.RenderMessage(bar, d.Height)

	r.screen.present()
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.text(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// cellLook returns the rune and style for a map cell.
func cellLook(c world.Cell, rooms *gamedata.RoomRegistry) (rune, tcell.Style) {
	style := tcell.StyleDefault
	ch := c.Tile.Rune()

	switch c.Tile {
	case world.TileImpenetrable:
		style = style.Foreground(tcell.ColorDimGray)
	case world.TileEarth:
		style = style.Foreground(tcell.ColorSaddleBrown)
	case world.TileGold:
		style = style.Foreground(tcell.ColorGold)
	case world.TileDirt:
		style = style.Foreground(tcell.ColorGray)
	case world.TileClaimed:
		style = style.Foreground(tcell.ColorSilver)
	case world.TileRoom:
		if rooms != nil {
			if def := rooms.GetByID(c.RoomID); def != nil {
				ch = def.GlyphRune()
				style = style.Foreground(def.TCellColor())
			}
		}
	}

	if c.Selected {
		style = style.Background(tcell.ColorOlive)
	}
	return ch, style
}

func overlayColor(c interaction.ColorIndicator) tcell.Color {
	if c == interaction.ColorRed {
		return tcell.ColorDarkRed
	}
	return tcell.ColorNavy
}
