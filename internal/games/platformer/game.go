// Package platformer implements a side-scrolling platformer: the player runs,
// jumps and double-jumps across procedurally streamed platforms, collecting
// coins and avoiding floor obstacles while the camera follows.
package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Game adapts a World to the registry.Game contract and dispatches
// lifecycle hooks to the score sink and the audio/session UI.
type Game struct {
	world     *World
	runtime   core.RuntimeConfig
	hooks     core.Hooks
	highScore int
	paused    bool
	sessions  int
}

// New creates a new platformer instance.
func New() *Game {
	return &Game{hooks: core.NopHooks{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// SetHooks installs the lifecycle hooks. Nil restores the no-op hooks.
func (g *Game) SetHooks(h core.Hooks) {
	if h == nil {
		h = core.NopHooks{}
	}
	g.hooks = h
}

// Reset starts a session, or restarts it after game over. Configuration and
// the device class are resolved on the first call only.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.highScore = max(g.highScore, runtime.HighScore)

	if g.world == nil {
		g.world = NewWorld(loadConfig(runtime))
	} else {
		g.world.Reset(runtime.Seed)
	}

	g.sessions++
	if g.sessions == 1 {
		g.hooks.OnStart()
	} else {
		g.hooks.OnRestart()
	}
}

// loadConfig falls back to the built-in tuning when the file is unusable;
// the CLI validates --config before a session starts.
func loadConfig(runtime core.RuntimeConfig) (config.PlatformerConfig, config.DeviceClass, int64) {
	cfg, err := config.LoadPlatformer(runtime.ConfigPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	if preset, err := config.ParseDifficultyPreset(runtime.Difficulty); err == nil {
		config.ApplyPlatformerPreset(&cfg, preset)
	}
	requested, err := config.ParseDeviceClass(runtime.Device)
	if err != nil {
		requested = config.DeviceAuto
	}
	return cfg, cfg.ResolveDevice(requested, runtime.ScreenW), runtime.Seed
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.Over {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.world.applyReleases(in)
		return core.StepResult{State: g.State()}
	}

	before := g.world.Score
	res := g.world.Tick(in)

	value := g.world.Config().Scoring.CoinValue
	for i := 1; i <= res.Coins; i++ {
		g.hooks.OnCoin(before + i*value)
	}
	g.highScore = max(g.highScore, g.world.Score)

	if res.GameOver {
		g.hooks.OnGameOver(g.world.Score)
	}

	return core.StepResult{
		State:          g.State(),
		CoinsCollected: res.Coins,
		Ended:          res.GameOver,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{HighScore: g.highScore}
	}
	return core.GameState{
		Score:     g.world.Score,
		HighScore: max(g.highScore, g.world.Score),
		GameOver:  g.world.Over,
		Paused:    g.paused,
	}
}

// World exposes the running session, for the autopilot and snapshots.
func (g *Game) World() *World {
	return g.world
}

// Register the game with the registry
func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}
