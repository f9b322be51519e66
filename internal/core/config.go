package core

// RuntimeConfig contains configuration passed to the session at start.
// The world is always simulated at WorldW x WorldH; frontends scale it to
// whatever surface they own.
type RuntimeConfig struct {
	WorldW   int   // World width in pixels
	WorldH   int   // World height in pixels
	TickRate int   // Simulation ticks per second (default 50)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		WorldW:   800,
		WorldH:   600,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a session.
// Returned by Session.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Charging bool // Whether the cannon is charging
	Power    int  // Current cannon power
	Finished bool // Whether a terminate event was received
}

// StepResult is returned by Session.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
