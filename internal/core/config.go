package core

// RuntimeConfig is handed to a game on Reset.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters
	ScreenH int   // Terminal height in characters
	Seed    int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState is the externally visible state of a running game.
type GameState struct {
	Score    int  // Score, or generation count for the automaton
	GameOver bool // The run has ended and must not be stepped again
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}

// Stat is a named integer sampled by headless runs.
type Stat struct {
	Name  string
	Value int
}
