package platformer

// Snapshot is a flat copy of a session's observable state.
// Uses primitive types only so it can be printed, compared and logged.
type Snapshot struct {
	Tick      int
	Score     int
	PlayerX   float64
	PlayerY   float64
	PlayerVX  float64
	PlayerVY  float64
	Jumping   bool
	JumpCount int
	JumpTimer int
	CameraX   float64
	Frontier  float64
	Platforms int
	Coins     int
	Obstacles int
	GameOver  bool
}

// Snapshot returns the current session state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:      w.Ticks,
		Score:     w.Score,
		PlayerX:   w.Player.X,
		PlayerY:   w.Player.Y,
		PlayerVX:  w.Player.VX,
		PlayerVY:  w.Player.VY,
		Jumping:   w.Player.Jumping,
		JumpCount: w.Player.JumpCount,
		JumpTimer: w.Player.JumpTimer,
		CameraX:   w.Camera.X,
		Frontier:  w.Level.Frontier(),
		Platforms: len(w.Level.Platforms()),
		Coins:     len(w.Level.Coins()),
		Obstacles: len(w.Level.Obstacles()),
		GameOver:  w.Over,
	}
}

// Distance returns how far right of the spawn the player has travelled.
func (s Snapshot) Distance() float64 {
	return max(s.PlayerX, 0)
}
