package game

import "time"

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible map generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// Debug enables right-click dig/claim and always shows the selection overlay.
	Debug bool
	// UseCursors lets the controller swap the cursor glyph.
	UseCursors bool
	// Tick is the frame interval for creature controls. Zero uses DefaultTick.
	Tick time.Duration
	// Imps is the number of workers the keeper starts with.
	Imps int
}

// DefaultTick is the frame interval when Config.Tick is zero.
const DefaultTick = 100 * time.Millisecond

// Player is the keeper id of the local player.
const Player = 1

func (c Config) tick() time.Duration {
	if c.Tick <= 0 {
		return DefaultTick
	}
	return c.Tick
}
