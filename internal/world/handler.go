package world

import (
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dungeonkeep/internal/gamedata"
	"github.com/samdwyer/dungeonkeep/internal/logger"
)

// SoundPlayer plays a positional sound cue.
type SoundPlayer interface {
	PlayAt(x, y int, sound string)
}

// Handler applies keeper actions to a dungeon.
type Handler struct {
	dungeon *Dungeon
	sounds  SoundPlayer
	log     *logrus.Entry
}

// NewHandler wraps a dungeon. sounds may be nil.
func NewHandler(d *Dungeon, sounds SoundPlayer) *Handler {
	return &Handler{
		dungeon: d,
		sounds:  sounds,
		log:     logger.For("world"),
	}
}

// Dungeon returns the underlying map.
func (h *Handler) Dungeon() *Dungeon {
	return h.dungeon
}

// IsTaggable reports whether the tile can be marked for digging.
func (h *Handler) IsTaggable(x, y int) bool {
	c := h.dungeon.CellAt(x, y)
	return c != nil && c.Tile.IsDiggable()
}

// IsTaggableBy reports whether the player may mark the tile. Earth
// reinforced by another keeper is off limits.
func (h *Handler) IsTaggableBy(x, y, player int) bool {
	c := h.dungeon.CellAt(x, y)
	return c != nil && c.Tile.IsDiggable() && (c.Owner == NoOwner || c.Owner == player)
}

// IsBuildable reports whether the room can be built on the tile by the player.
func (h *Handler) IsBuildable(x, y, player int, room *gamedata.RoomDef) bool {
	if room == nil {
		return false
	}
	c := h.dungeon.CellAt(x, y)
	return c != nil && c.Tile == TileClaimed && c.Owner == player
}

// IsClaimable reports whether the player may claim the floor tile.
func (h *Handler) IsClaimable(x, y, player int) bool {
	c := h.dungeon.CellAt(x, y)
	if c == nil {
		return false
	}
	return (c.Tile == TileDirt || c.Tile == TileClaimed) && c.Owner != player
}

// IsSelected reports whether the tile is marked for digging.
func (h *Handler) IsSelected(x, y int) bool {
	c := h.dungeon.CellAt(x, y)
	return c != nil && c.Selected
}

// SelectTiles marks or unmarks every taggable tile in the area.
func (h *Handler) SelectTiles(area Area, selected bool) {
	changed := 0
	for _, p := range area.Points() {
		if !h.IsTaggable(p.X, p.Y) {
			continue
		}
		c := h.dungeon.CellAt(p.X, p.Y)
		if c.Selected != selected {
			c.Selected = selected
			changed++
		}
	}
	h.log.WithFields(logrus.Fields{
		"area":     area,
		"selected": selected,
		"changed":  changed,
	}).Debug("select tiles")
}

// Build places the room on every buildable tile in the area.
func (h *Handler) Build(area Area, player int, room *gamedata.RoomDef) {
	if room == nil {
		return
	}
	built := 0
	for _, p := range area.Points() {
		if !h.IsBuildable(p.X, p.Y, player, room) {
			continue
		}
		c := h.dungeon.CellAt(p.X, p.Y)
		c.Tile = TileRoom
		c.RoomID = room.ID
		built++
	}
	h.log.WithFields(logrus.Fields{
		"area":   area,
		"player": player,
		"room":   room.Name,
		"tiles":  built,
	}).Info("build room")
}

// Sell tears down the player's rooms inside the area.
func (h *Handler) Sell(area Area, player int) {
	sold := 0
	for _, p := range area.Points() {
		c := h.dungeon.CellAt(p.X, p.Y)
		if c == nil || c.Tile != TileRoom || c.Owner != player {
			continue
		}
		c.Tile = TileClaimed
		c.RoomID = 0
		sold++
	}
	h.log.WithFields(logrus.Fields{
		"area":   area,
		"player": player,
		"tiles":  sold,
	}).Info("sell room")
}

// DigTile turns diggable rock into unclaimed dirt.
func (h *Handler) DigTile(x, y int) {
	c := h.dungeon.CellAt(x, y)
	if c == nil || !c.Tile.IsDiggable() {
		return
	}
	*c = Cell{Tile: TileDirt}
	h.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("dig tile")
}

// ClaimTile hands a floor tile to the player.
func (h *Handler) ClaimTile(x, y, player int) {
	if !h.IsClaimable(x, y, player) {
		return
	}
	c := h.dungeon.CellAt(x, y)
	c.Tile = TileClaimed
	c.Owner = player
	h.log.WithFields(logrus.Fields{"x": x, "y": y, "player": player}).Debug("claim tile")
}

// PlaySoundAtTile forwards a positional sound cue.
func (h *Handler) PlaySoundAtTile(x, y int, sound string) {
	if h.sounds == nil {
		return
	}
	h.sounds.PlayAt(x, y, sound)
}

// SelectedTiles returns every tile currently marked for digging.
func (h *Handler) SelectedTiles() []Point {
	var out []Point
	for y := range h.dungeon.Cells {
		for x := range h.dungeon.Cells[y] {
			if h.dungeon.Cells[y][x].Selected {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}
