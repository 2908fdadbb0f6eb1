package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Autopilot is a simple bot for headless runs. It holds right, jumps over
// obstacles and off platform edges, and spends the double jump at the apex
// when nothing is below.
type Autopilot struct {
	Lead    float64 // How far ahead of the player it looks, in world units
	running bool
}

// NewAutopilot creates a bot with a default look-ahead.
func NewAutopilot() *Autopilot {
	return &Autopilot{Lead: 60}
}

// Next returns the input for the coming tick.
func (a *Autopilot) Next(w *World) core.InputFrame {
	f := core.NewInputFrame()
	if !a.running {
		f.Push(core.ActionRight)
		a.running = true
	}

	p := w.Player
	grounded := p.JumpCount == 0 && !p.Jumping
	switch {
	case grounded && (a.obstacleAhead(w) || a.edgeAhead(w)):
		f.Push(core.ActionJump)
	case p.JumpCount == 1 && p.VY >= 0 && !a.surfaceBelow(w):
		f.Push(core.ActionJump)
	}
	return f
}

// Reset makes the bot press right again on the next tick.
func (a *Autopilot) Reset() {
	a.running = false
}

func (a *Autopilot) obstacleAhead(w *World) bool {
	p := w.Player
	for _, o := range w.Level.Obstacles() {
		d := o.X - p.X - p.Width
		if d >= 0 && d <= a.Lead && p.Bottom() > o.Y {
			return true
		}
	}
	return false
}

// edgeAhead reports whether the platform under the player ends within Lead.
func (a *Autopilot) edgeAhead(w *World) bool {
	p := w.Player
	if p.Bottom() >= w.cfg.World.Height {
		return false // The floor never ends
	}
	for _, pl := range w.Level.Platforms() {
		if math.Abs(pl.Y-p.Bottom()) < 0.5 && p.Box().OverlapsX(pl.Box) {
			return p.X+p.Width+a.Lead > pl.Right()
		}
	}
	return false
}

// surfaceBelow reports whether a platform lies under the player.
func (a *Autopilot) surfaceBelow(w *World) bool {
	p := w.Player
	for _, pl := range w.Level.Platforms() {
		if pl.Y >= p.Bottom() && p.Box().OverlapsX(pl.Box) {
			return true
		}
	}
	return false
}
