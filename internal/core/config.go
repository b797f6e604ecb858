// Package core provides host-neutral building blocks shared by the game and
// the platform layer: the character screen buffer, colours, rectangles and
// input frames. It has no dependency on Bubble Tea so the game stays testable.
package core

// RuntimeConfig describes the host the game is running in.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Base ticks per second; 0 keeps the configured speed
	Seed     int64 // RNG seed; 0 means derive one from the clock
}

// DefaultConfig returns an 80x24 terminal with configured speed and a clock seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
