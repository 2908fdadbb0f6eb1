package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (the measured viewport)
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	ConfigPath string // Custom YAML config, empty for the search order
	Difficulty string // Difficulty preset name, empty for the config default
	Device     string // "auto", "desktop" or "mobile"
	HighScore  int    // Persisted high score read at session start
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Device:   "auto",
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best known score, including this session
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	CoinsCollected int  // Coins picked up during this tick
	Ended          bool // True only on the tick that ended the game
}

// Hooks receives session lifecycle notifications from a game.
// Implementations are the score sink and the audio/session UI.
type Hooks interface {
	OnStart()
	OnCoin(score int)
	OnGameOver(score int)
	OnRestart()
}

// NopHooks ignores every notification.
type NopHooks struct{}

func (NopHooks) OnStart()       {}
func (NopHooks) OnCoin(int)     {}
func (NopHooks) OnGameOver(int) {}
func (NopHooks) OnRestart()     {}

// MultiHooks fans notifications out to several hooks in order.
type MultiHooks []Hooks

func (m MultiHooks) OnStart() {
	for _, h := range m {
		h.OnStart()
	}
}

func (m MultiHooks) OnCoin(score int) {
	for _, h := range m {
		h.OnCoin(score)
	}
}

func (m MultiHooks) OnGameOver(score int) {
	for _, h := range m {
		h.OnGameOver(score)
	}
}

func (m MultiHooks) OnRestart() {
	for _, h := range m {
		h.OnRestart()
	}
}
