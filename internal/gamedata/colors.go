package gamedata

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// ParseColor reads a data file color: "#RRGGBB", bare "RRGGBB" or a tcell
// color name such as "gold".
func ParseColor(s string) (tcell.Color, error) {
	s = strings.TrimSpace(s)
	if c := tcell.GetColor(strings.ToLower(s)); c != tcell.ColorDefault && !strings.HasPrefix(s, "#") {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("color %q: want #RRGGBB or a color name", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("color %q: %w", s, err)
	}
	return tcell.NewHexColor(int32(v)), nil
}

// colorOr parses s, falling back when it is missing or malformed.
func colorOr(s string, fallback tcell.Color) tcell.Color {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}

// glyphOr returns the first rune of s, or fallback when s is empty.
func glyphOr(s string, fallback rune) rune {
	if s == "" {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
