package core

import "testing"

func TestInputFramePreservesOrder(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionRight)
	f.Push(ActionJump)
	f.Push(ActionNone)
	f.Push(ActionRightRelease)

	want := []Action{ActionRight, ActionJump, ActionRightRelease}
	if len(f.Actions) != len(want) {
		t.Fatalf("queued %d actions, expected %d", len(f.Actions), len(want))
	}
	for i, a := range want {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], a)
		}
	}
}

func TestInputFrameHasAndClear(t *testing.T) {
	f := NewInputFrame(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Has(Jump) should be true")
	}
	if f.Has(ActionPause) {
		t.Error("Has(Pause) should be false")
	}

	f.Clear()
	if len(f.Actions) != 0 || f.Has(ActionJump) {
		t.Errorf("Clear should empty the queue, got %v", f.Actions)
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

type countingHooks struct {
	starts, coins, overs, restarts int
	lastScore                      int
}

func (c *countingHooks) OnStart()             { c.starts++ }
func (c *countingHooks) OnCoin(score int)     { c.coins++; c.lastScore = score }
func (c *countingHooks) OnGameOver(score int) { c.overs++; c.lastScore = score }
func (c *countingHooks) OnRestart()           { c.restarts++ }

func TestMultiHooksFanOut(t *testing.T) {
	a, b := &countingHooks{}, &countingHooks{}
	hooks := MultiHooks{a, NopHooks{}, b}

	hooks.OnStart()
	hooks.OnCoin(10)
	hooks.OnGameOver(10)
	hooks.OnRestart()

	for _, h := range []*countingHooks{a, b} {
		if h.starts != 1 || h.coins != 1 || h.overs != 1 || h.restarts != 1 {
			t.Errorf("hook counts = %+v, expected one of each", *h)
		}
		if h.lastScore != 10 {
			t.Errorf("lastScore = %d, expected 10", h.lastScore)
		}
	}
}
