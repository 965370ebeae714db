package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// CreatureDef defines a keeper creature type loaded from JSON.
type CreatureDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "imp")
	Name        string `json:"name"`        // Display name (e.g., "Imp")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "i")
	Color       string `json:"color"`       // Hex color code (e.g., "#D08040")
	Worker      bool   `json:"worker"`      // Workers dig tagged tiles
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (0 = never spawned randomly)
}

// GlyphRune returns the glyph as a rune for rendering.
func (c *CreatureDef) GlyphRune() rune { return glyphOr(c.Glyph, '?') }

// TCellColor returns the color as a tcell.Color.
func (c *CreatureDef) TCellColor() tcell.Color { return colorOr(c.Color, tcell.ColorWhite) }

// CreaturesFile represents the structure of creatures.json.
type CreaturesFile struct {
	Creatures []CreatureDef `json:"creatures"`
}

func (f *CreaturesFile) validate() error {
	seen := make(map[string]bool, len(f.Creatures))
	for _, c := range f.Creatures {
		if c.ID == "" {
			return fmt.Errorf("creature %q: missing id", c.Name)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate creature id %q", c.ID)
		}
		if c.SpawnWeight < 0 {
			return fmt.Errorf("creature %q: negative spawn weight", c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}

// LoadCreatures loads creature definitions from the embedded creatures.json file.
func LoadCreatures() ([]CreatureDef, error) {
	file, err := Load[CreaturesFile]("creatures.json")
	if err != nil {
		return nil, err
	}
	return file.Creatures, nil
}
