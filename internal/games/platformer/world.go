package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// World is one complete platformer session. Sessions share no state, so any
// number of worlds may run side by side.
type World struct {
	Player Player
	Camera Camera
	Level  *Level

	Score    int
	TargetVX float64 // Horizontal speed the player is steering toward
	Ticks    int
	Over     bool

	cfg        config.PlatformerConfig
	device     config.DeviceClass
	profile    config.DeviceProfile
	kinematics Kinematics
	resolver   Resolver
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Coins    int  // Coins collected this tick
	Landed   bool // Touched down on a platform top
	GameOver bool // True only on the tick that ended the session
	Skipped  bool // The session was already over; nothing ran
}

// NewWorld creates a session for a resolved device class and seeds its level.
func NewWorld(cfg config.PlatformerConfig, device config.DeviceClass, seed int64) *World {
	w := &World{
		cfg:        cfg,
		device:     device,
		profile:    cfg.Profile(device),
		kinematics: NewKinematics(cfg.Physics, cfg.Jump),
		resolver:   NewResolver(cfg),
	}
	diff := config.NewDifficultyManager(cfg.Difficulty)
	w.Level = NewLevel(seed, &w.cfg, w.profile, diff, w.kinematics.MaxJumpRise())
	w.reset()
	return w
}

// Reset restarts the session from scratch with a new seed.
func (w *World) Reset(seed int64) {
	w.Level.Reset(seed)
	w.reset()
}

func (w *World) reset() {
	size := w.profile.PlayerSize
	start := w.Level.Platforms()[0]
	w.Player = Player{
		X:      w.cfg.Player.StartX,
		Y:      start.Y - size,
		Width:  size,
		Height: size,
	}
	w.Camera = Camera{Offset: w.cfg.ScreenOffset()}
	w.Score = 0
	w.TargetVX = 0
	w.Ticks = 0
	w.Over = false
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.PlatformerConfig {
	return w.cfg
}

// Device returns the device class resolved for this session.
func (w *World) Device() config.DeviceClass {
	return w.device
}

// Tick drains the queued input and advances the session one frame:
// integrate, resolve collisions, clamp the camera, then stream the level.
// Once the session is over every further tick is a no-op.
func (w *World) Tick(in core.InputFrame) TickResult {
	if w.Over {
		return TickResult{Skipped: true}
	}

	for _, a := range in.Actions {
		w.apply(a)
	}

	w.Ticks++
	w.kinematics.Integrate(&w.Player, w.TargetVX)
	w.Camera.Follow(w.Player)

	contact := w.resolver.Resolve(&w.Player, w.Level)
	w.Score += contact.Coins * w.cfg.Scoring.CoinValue
	if contact.Hit {
		w.Over = true
	}

	w.Camera.Clamp(&w.Player)
	w.Level.Update(w.Camera.X, w.Score)

	return TickResult{
		Coins:    contact.Coins,
		Landed:   contact.Landed,
		GameOver: w.Over,
	}
}
