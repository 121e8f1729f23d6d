package core

// RuntimeConfig is passed to games when they mount. It carries the screen
// dimensions and the RNG seed for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Frame scheduling rate (ticks per second)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is what a game reports back to the platform after each frame.
// Pausing is a platform concern (the loop simply stops advancing), so games
// only report score and completion.
type GameState struct {
	Score    int
	GameOver bool
}
