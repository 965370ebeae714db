package entity

import "github.com/gdamore/tcell/v2"

// HeroParty is a band of intruding heroes, displayed as a single symbol.
type HeroParty struct {
	X, Y   int  // Current position in the dungeon
	Symbol rune // Display symbol
	Size   int  // Number of heroes in the band
}

// NewHeroParty creates a new hero party at the given position.
func NewHeroParty(x, y, size int) *HeroParty {
	return &HeroParty{
		X:      x,
		Y:      y,
		Symbol: '&',
		Size:   size,
	}
}

// Move updates the party position by the given delta.
func (p *HeroParty) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Position returns the current x, y coordinates.
func (p *HeroParty) Position() (int, int) {
	return p.X, p.Y
}

func (p *HeroParty) Glyph() rune        { return p.Symbol }
func (p *HeroParty) Color() tcell.Color { return tcell.ColorYellow }
func (p *HeroParty) Name() string       { return "Heroes" }
