// Package entity provides the things that live on a level: creatures, heroes and objects.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonkeep/internal/gamedata"
)

// Thing is anything placed on the level.
type Thing interface {
	Position() (int, int)
	Glyph() rune
	Color() tcell.Color
	Name() string
}

// KeeperCreature is a creature serving a keeper.
type KeeperCreature struct {
	Def   *gamedata.CreatureDef
	X, Y  int
	Owner int
}

// NewKeeperCreature creates a creature of the given type owned by a keeper.
func NewKeeperCreature(def *gamedata.CreatureDef, x, y, owner int) *KeeperCreature {
	return &KeeperCreature{Def: def, X: x, Y: y, Owner: owner}
}

// Position returns the current x, y coordinates.
func (c *KeeperCreature) Position() (int, int) { return c.X, c.Y }

// Glyph returns the display character.
func (c *KeeperCreature) Glyph() rune { return c.Def.GlyphRune() }

// Color returns the display color.
func (c *KeeperCreature) Color() tcell.Color { return c.Def.TCellColor() }

// Name returns the creature type's display name.
func (c *KeeperCreature) Name() string { return c.Def.Name }

// IsWorker reports whether the creature digs tagged tiles.
func (c *KeeperCreature) IsWorker() bool { return c.Def.Worker }

// MoveTo places the creature on a tile.
func (c *KeeperCreature) MoveTo(x, y int) {
	c.X, c.Y = x, y
}

// GoldPile is loose gold lying on the floor.
type GoldPile struct {
	X, Y   int
	Amount int
}

func (g *GoldPile) Position() (int, int) { return g.X, g.Y }
func (g *GoldPile) Glyph() rune          { return '*' }
func (g *GoldPile) Color() tcell.Color   { return tcell.ColorGold }
func (g *GoldPile) Name() string         { return "Gold" }
