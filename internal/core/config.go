package core

// RuntimeConfig is handed to games at initialization. Games use it to
// adapt to the terminal size and to seed deterministic generation.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 30)
	Seed     int64  // Numeric seed; 0 means the platform picks entropy
	SeedText string // Explicit seed phrase; takes precedence over Seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState is the status a game reports to the platform each tick.
type GameState struct {
	ElapsedTicks int  // Ticks spent actively solving (excludes loading/pause)
	Mistakes     int  // Contradictory marks made so far
	Loading      bool // Puzzle generation delay still running
	Won          bool // Board matches the solution
	Paused       bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}

// Result describes a finished puzzle for persistence. Kept free of
// game-package types so the storage and platform layers can share it.
type Result struct {
	Mode       string
	Seed       uint32
	Size       int
	Difficulty string
	Ticks      int
	Mistakes   int
}
