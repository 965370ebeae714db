package interaction

// Cursor is the pointer glyph shown to the player.
type Cursor int

const (
	CursorIdle Cursor = iota
	CursorPointer
	CursorHoldPickaxe
	CursorHoldPickaxeTagging
)

// String returns a human-readable cursor name.
func (c Cursor) String() string {
	switch c {
	case CursorIdle:
		return "idle"
	case CursorPointer:
		return "pointer"
	case CursorHoldPickaxe:
		return "pickaxe"
	case CursorHoldPickaxeTagging:
		return "pickaxe-tagging"
	default:
		return "unknown"
	}
}

// SelectCursor picks the glyph. GUI beats tagging, tagging beats hovering a taggable tile.
func SelectCursor(onGUI, tagging, taggable bool) Cursor {
	switch {
	case onGUI:
		return CursorPointer
	case tagging:
		return CursorHoldPickaxeTagging
	case taggable:
		return CursorHoldPickaxe
	default:
		return CursorIdle
	}
}
