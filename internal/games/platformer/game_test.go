package platformer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

type recordingHooks struct {
	starts, restarts int
	coins            []int
	overs            []int
}

func (r *recordingHooks) OnStart()             { r.starts++ }
func (r *recordingHooks) OnCoin(score int)     { r.coins = append(r.coins, score) }
func (r *recordingHooks) OnGameOver(score int) { r.overs = append(r.overs, score) }
func (r *recordingHooks) OnRestart()           { r.restarts++ }

func testRuntime(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	cfg.Device = "desktop"
	return cfg
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("platformer") {
		t.Fatal("platformer should register itself")
	}
	g, err := registry.Create("platformer")
	if err != nil {
		t.Fatal(err)
	}
	if g.ID() != "platformer" || g.Title() == "" {
		t.Errorf("unexpected identity %q / %q", g.ID(), g.Title())
	}
}

func TestGameLifecycleHooks(t *testing.T) {
	hooks := &recordingHooks{}
	g := New()
	g.SetHooks(hooks)

	g.Reset(testRuntime(1))
	if hooks.starts != 1 || hooks.restarts != 0 {
		t.Fatalf("first Reset: starts=%d restarts=%d", hooks.starts, hooks.restarts)
	}

	g.Step(core.NewInputFrame())
	w := g.World()
	w.Level.obstacles = nil
	w.Level.coins = []Coin{
		{core.NewBox(w.Player.X, w.Player.Y, 20, 20)},
		{core.NewBox(w.Player.X+5, w.Player.Y+5, 20, 20)},
	}
	res := g.Step(core.NewInputFrame())
	if res.CoinsCollected != 2 {
		t.Fatalf("CoinsCollected = %d, expected 2", res.CoinsCollected)
	}
	if len(hooks.coins) != 2 || hooks.coins[0] != 10 || hooks.coins[1] != 20 {
		t.Errorf("OnCoin scores = %v, expected [10 20]", hooks.coins)
	}

	w.Level.obstacles = []Obstacle{{Box: w.Player.Box()}}
	res = g.Step(core.NewInputFrame())
	if !res.Ended || !res.State.GameOver {
		t.Fatalf("expected the session to end, got %+v", res)
	}
	for range 5 {
		if res := g.Step(core.NewInputFrame()); res.Ended {
			t.Fatal("Ended reported more than once")
		}
	}
	if len(hooks.overs) != 1 || hooks.overs[0] != 20 {
		t.Errorf("OnGameOver calls = %v, expected [20]", hooks.overs)
	}

	g.Reset(testRuntime(2))
	if hooks.restarts != 1 || hooks.starts != 1 {
		t.Errorf("second Reset: starts=%d restarts=%d", hooks.starts, hooks.restarts)
	}
	if st := g.State(); st.Score != 0 || st.GameOver || st.HighScore != 20 {
		t.Errorf("after restart state = %+v, expected fresh score and high score 20", st)
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	g.Step(core.NewInputFrame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("P should pause")
	}
	ticks := g.World().Ticks
	g.Step(core.NewInputFrame(core.ActionRight))
	if g.World().Ticks != ticks {
		t.Error("paused game should not advance")
	}
	g.Step(core.NewInputFrame(core.ActionPause))
	if g.State().Paused {
		t.Error("P should resume")
	}
}

func TestGameReleaseWhilePaused(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	g.Step(core.NewInputFrame(core.ActionRight))
	g.Step(core.NewInputFrame(core.ActionPause))
	g.Step(core.NewInputFrame(core.ActionRightRelease))
	g.Step(core.NewInputFrame(core.ActionPause))
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}

	if got := g.World().TargetVX; got != 0 {
		t.Errorf("TargetVX = %g after a release while paused, expected 0", got)
	}
}

func TestGamePausedIgnoresPresses(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	g.Step(core.NewInputFrame(core.ActionPause))
	g.Step(core.NewInputFrame(core.ActionLeft, core.ActionJump))
	if got := g.World().TargetVX; got != 0 {
		t.Errorf("TargetVX = %g, paused game should ignore presses", got)
	}
	if g.World().Player.JumpCount != 0 {
		t.Error("paused game should ignore jumps")
	}
}

func TestGameHighScoreFromRuntime(t *testing.T) {
	g := New()
	cfg := testRuntime(1)
	cfg.HighScore = 70
	g.Reset(cfg)

	if st := g.State(); st.HighScore != 70 {
		t.Errorf("HighScore = %d, expected persisted 70", st.HighScore)
	}
}

func TestGameDeterminism(t *testing.T) {
	play := func() core.GameState {
		g := New()
		g.Reset(testRuntime(12345))
		bot := NewAutopilot()
		var st core.GameState
		for range 2000 {
			st = g.Step(bot.Next(g.World())).State
			if st.GameOver {
				break
			}
		}
		return st
	}

	if a, b := play(), play(); a != b {
		t.Errorf("determinism failed: %+v vs %+v", a, b)
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if !strings.Contains(scr.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected the score", scr.Row(0))
	}
	// Player at (50, 320) in an 800x400 world on 80x23 world rows.
	if got := scr.Get(5, 19); got != PlayerChar {
		t.Errorf("cell (5,19) = %q, expected the player", got)
	}
	if got := scr.GetCell(5, 19).Color; got != core.ColorCyan {
		t.Errorf("player colour = %v, expected cyan", got)
	}
	// Start platform top at y=350 maps to row 20+1.
	if got := scr.Get(0, 21); got != PlatformChar {
		t.Errorf("cell (0,21) = %q, expected the start platform", got)
	}

	g.World().Level.obstacles = []Obstacle{{Box: g.World().Player.Box()}}
	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())
	g.Render(scr)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}
