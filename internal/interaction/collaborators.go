package interaction

import (
	"github.com/samdwyer/dungeonkeep/internal/entity"
	"github.com/samdwyer/dungeonkeep/internal/gamedata"
	"github.com/samdwyer/dungeonkeep/internal/world"
)

// TagSound is the cue played where the keeper starts tagging.
const TagSound = "/Global/dk1tag.mp2"

// PossessionSpellID is the spell id of Possess Creature.
const PossessionSpellID = 2

// World answers tile questions and applies keeper actions.
// The controller checks every precondition before acting, so the
// action methods have nothing to report back. Tagging is checked per
// tile, not per player; world.Handler also answers IsTaggableBy for
// callers that need ownership.
type World interface {
	IsTaggable(x, y int) bool
	IsBuildable(x, y, player int, room *gamedata.RoomDef) bool
	IsClaimable(x, y, player int) bool
	IsSelected(x, y int) bool
	SelectTiles(area world.Area, selected bool)
	Build(area world.Area, player int, room *gamedata.RoomDef)
	Sell(area world.Area, player int)
	DigTile(x, y int)
	ClaimTile(x, y, player int)
	PlaySoundAtTile(x, y int, sound string)
}

// Level describes the level being played.
type Level interface {
	MapSize() (width, height int)
	Things() []entity.Thing
	// RoomByID returns nil for unknown ids.
	RoomByID(id int) *gamedata.RoomDef
}

// OverlayRenderer draws the selection rectangle.
type OverlayRenderer interface {
	DrawSelection(o Overlay)
}

// CursorSetter swaps the pointer glyph.
type CursorSetter interface {
	SetCursor(c Cursor)
}

// Renderer is the rendering side the controller drives.
type Renderer interface {
	OverlayRenderer
	CursorSetter
}

// Hooks are notified of controller decisions. Nil hooks are skipped.
type Hooks struct {
	// OnStateChange runs on every SetInteractionState call, including
	// calls that repeat the current state.
	OnStateChange func(state State, id int)
	// OnPossession runs with the creature the keeper takes over.
	OnPossession func(creature *entity.KeeperCreature)
}

// Settings are the player preferences the controller reads.
type Settings struct {
	Debug             bool   // right click digs and claims, overlay always drawn
	UseCursors        bool   // when false the cursor is never touched
	PossessionSpellID int    // spell id handled by the possession shortcut
	TagSound          string // cue played when tagging starts
}

// DefaultSettings returns the stock preferences.
func DefaultSettings() Settings {
	return Settings{
		UseCursors:        true,
		PossessionSpellID: PossessionSpellID,
		TagSound:          TagSound,
	}
}
