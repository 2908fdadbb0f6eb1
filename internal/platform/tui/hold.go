package tui

import "github.com/vovakirdan/tui-platformer/internal/core"

// HoldTracker emulates key release for terminals, which report presses and
// auto-repeats but never key-up. A direction counts as held until it has not
// been repeated for holdTicks ticks, or until the opposite direction is pressed.
type HoldTracker struct {
	holdTicks int
	held      core.Action // ActionLeft, ActionRight or ActionNone
	idle      int         // Ticks since the last press of held
}

// NewHoldTracker creates a tracker. holdTicks below 1 is treated as 1.
func NewHoldTracker(holdTicks int) *HoldTracker {
	return &HoldTracker{holdTicks: max(holdTicks, 1)}
}

// Press records a direction press and returns the actions to queue.
func (h *HoldTracker) Press(a core.Action) []core.Action {
	var out []core.Action
	if h.held != core.ActionNone && h.held != a {
		out = append(out, releaseOf(h.held))
	}
	h.held = a
	h.idle = 0
	return append(out, a)
}

// Tick ages the held direction and returns a release once it expires.
func (h *HoldTracker) Tick() core.Action {
	if h.held == core.ActionNone {
		return core.ActionNone
	}
	h.idle++
	if h.idle < h.holdTicks {
		return core.ActionNone
	}
	released := releaseOf(h.held)
	h.held = core.ActionNone
	h.idle = 0
	return released
}

// Held returns the direction currently considered held.
func (h *HoldTracker) Held() core.Action {
	return h.held
}

// Reset forgets the held direction.
func (h *HoldTracker) Reset() {
	h.held = core.ActionNone
	h.idle = 0
}

func releaseOf(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionLeftRelease
	case core.ActionRight:
		return core.ActionRightRelease
	default:
		return core.ActionNone
	}
}
