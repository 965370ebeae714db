package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// RoomDef defines a buildable room type loaded from JSON.
type RoomDef struct {
	ID    int    `json:"id"`    // Room type id used by the build tool
	Name  string `json:"name"`  // Display name (e.g., "Treasury")
	Glyph string `json:"glyph"` // Single character drawn on built tiles
	Color string `json:"color"` // Hex color code (e.g., "#E0C020")
}

// GlyphRune returns the glyph as a rune for rendering.
func (r *RoomDef) GlyphRune() rune { return glyphOr(r.Glyph, '?') }

// TCellColor returns the color as a tcell.Color.
func (r *RoomDef) TCellColor() tcell.Color { return colorOr(r.Color, tcell.ColorWhite) }

// RoomsFile represents the structure of rooms.json.
type RoomsFile struct {
	Rooms []RoomDef `json:"rooms"`
}

// Room ids are item ids for the build tool, so they must be positive and unique.
func (f *RoomsFile) validate() error {
	seen := make(map[int]bool, len(f.Rooms))
	for _, r := range f.Rooms {
		if r.ID <= 0 {
			return fmt.Errorf("room %q: id %d must be positive", r.Name, r.ID)
		}
		if seen[r.ID] {
			return fmt.Errorf("room %q: duplicate id %d", r.Name, r.ID)
		}
		seen[r.ID] = true
	}
	return nil
}

// LoadRooms loads room definitions from the embedded rooms.json file.
func LoadRooms() ([]RoomDef, error) {
	file, err := Load[RoomsFile]("rooms.json")
	if err != nil {
		return nil, err
	}
	return file.Rooms, nil
}
