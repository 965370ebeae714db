// Package game provides the main game loop and state management.
package game

// Mode is what the keys and screen are currently driving.
type Mode int

const (
	// ModeKeeper is the default overhead view where the pointer drives the keeper's tools.
	ModeKeeper Mode = iota
	// ModePossession hands the arrow keys to a possessed creature.
	ModePossession
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeKeeper:
		return "keeper"
	case ModePossession:
		return "possession"
	default:
		return "unknown"
	}
}
