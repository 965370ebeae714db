// Package interaction turns pointer input into keeper actions on the map.
//
// A Controller owns the current tool (State plus an item id), the drag
// rectangle and the pointer status flags. It never draws or plays anything
// itself; it talks to a World, a Level and a Renderer.
package interaction

// State is the keeper's current tool.
type State int

const (
	// StateNone tags tiles for digging.
	StateNone State = iota
	// StateRoom builds the room type named by the item id.
	StateRoom
	// StateSell sells rooms.
	StateSell
	// StateSpell casts the spell named by the item id.
	StateSpell
	// StateTrap places a trap.
	StateTrap
	// StateDoor places a door.
	StateDoor
	// StateCreature picks up a creature.
	StateCreature
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateRoom:
		return "room"
	case StateSell:
		return "sell"
	case StateSpell:
		return "spell"
	case StateTrap:
		return "trap"
	case StateDoor:
		return "door"
	case StateCreature:
		return "creature"
	default:
		return "unknown"
	}
}
