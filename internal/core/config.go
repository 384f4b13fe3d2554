package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to surface size and for deterministic simulation.
type RuntimeConfig struct {
	SurfaceW int   // Surface width in pixels
	SurfaceH int   // Surface height in pixels
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    float64 // Seconds survived in the current run
	GameOver bool    // Whether the run has ended
	Ticks    int     // Ticks simulated in the current run
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Continue is false once the loop has stopped requesting frames.
	Continue bool
}

// Callbacks are the outputs a running game reports to its host.
// Either may be nil.
type Callbacks struct {
	OnScore    func(score float64) // Called after every tick with the cumulative score
	OnGameOver func(score float64) // Called exactly once when a run ends
}
