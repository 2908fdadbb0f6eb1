package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// apply turns one queued intent into player state. A press sets the target
// speed and any release clears it; the latest intent wins.
func (w *World) apply(a core.Action) {
	switch a {
	case core.ActionLeft:
		w.TargetVX = -w.cfg.Player.Speed
	case core.ActionRight:
		w.TargetVX = w.cfg.Player.Speed
	case core.ActionLeftRelease, core.ActionRightRelease:
		w.TargetVX = 0
	case core.ActionJump:
		w.kinematics.RequestJump(&w.Player)
	}
}

// applyReleases applies only the release intents of a frame. A paused game
// still has to forget a direction the player let go of.
func (w *World) applyReleases(in core.InputFrame) {
	for _, a := range in.Actions {
		if a == core.ActionLeftRelease || a == core.ActionRightRelease {
			w.apply(a)
		}
	}
}
