// Package config provides YAML-based game configuration loading, device-class
// profiles and difficulty management for the platformer.
package config

import (
	"errors"
	"fmt"
)

// PlatformerConfig contains all tuning for the platformer.
type PlatformerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Jump       JumpConfig       `yaml:"jump"`
	Player     PlayerConfig     `yaml:"player"`
	Level      LevelConfig      `yaml:"level"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Device     DeviceConfig     `yaml:"device"`
	Profiles   ProfilesConfig   `yaml:"profiles"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the logical viewport in world units.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	ScreenOffset float64 `yaml:"screen_offset"` // Player's fixed screen x; 0 means width/3
}

// PhysicsConfig defines per-tick kinematics constants.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	MaxSpeedX        float64 `yaml:"max_speed_x"`
	Blend            float64 `yaml:"blend"`    // Fraction of the gap to target speed closed per tick
	Friction         float64 `yaml:"friction"` // Horizontal velocity multiplier applied after movement
	LandingTolerance float64 `yaml:"landing_tolerance"`
}

// JumpConfig defines the eased jump arc.
type JumpConfig struct {
	Force       float64 `yaml:"force"`
	DoubleForce float64 `yaml:"double_force"`
	Duration    int     `yaml:"duration"` // Frames
	MaxJumps    int     `yaml:"max_jumps"`
}

// PlayerConfig defines device-independent player parameters.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	Speed  float64 `yaml:"speed"`
}

// LevelConfig defines procedural generation and streaming.
type LevelConfig struct {
	Lookahead      float64        `yaml:"lookahead"`    // Viewport widths generated ahead of the camera
	PruneMargin    float64        `yaml:"prune_margin"` // World units kept behind the camera
	InitialSpan    float64        `yaml:"initial_span"` // Viewport widths generated at session start
	StartPlatform  StartPlatform  `yaml:"start_platform"`
	CoinChance     float64        `yaml:"coin_chance"`
	ObstacleChance float64        `yaml:"obstacle_chance"`
	Coin           CoinConfig     `yaml:"coin"`
	Obstacle       ObstacleConfig `yaml:"obstacle"`
	Reachable      bool           `yaml:"reachable"`
	ReachMargin    float64        `yaml:"reach_margin"`
}

// StartPlatform is the fixed safe spawn platform.
type StartPlatform struct {
	X       float64 `yaml:"x"`
	YOffset float64 `yaml:"y_offset"` // Distance of its top above the floor
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// CoinConfig defines coin size and placement above a platform.
type CoinConfig struct {
	Size   float64 `yaml:"size"`
	Lift   float64 `yaml:"lift"`
	Jitter float64 `yaml:"jitter"`
}

// ObstacleConfig defines the floor hazards.
type ObstacleConfig struct {
	Size     float64 `yaml:"size"`
	Variants int     `yaml:"variants"`
}

// ScoringConfig defines score increments.
type ScoringConfig struct {
	CoinValue int `yaml:"coin_value"`
}

// DeviceConfig defines how the device class is measured.
type DeviceConfig struct {
	Breakpoint int `yaml:"breakpoint"` // Viewports narrower than this are "mobile"
}

// ProfilesConfig holds the per-device tuning.
type ProfilesConfig struct {
	Desktop DeviceProfile `yaml:"desktop"`
	Mobile  DeviceProfile `yaml:"mobile"`
}

// DeviceProfile is the device-class-dependent part of the tuning.
type DeviceProfile struct {
	PlayerSize     float64 `yaml:"player_size"`
	PlatformWidth  Range   `yaml:"platform_width"`
	PlatformHeight Range   `yaml:"platform_height"`
	Gap            Range   `yaml:"gap"`
}

// Range is a closed interval sampled uniformly.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Lerp maps u in [0, 1) onto the range.
func (r Range) Lerp(u float64) float64 {
	return r.Min + u*(r.Max-r.Min)
}

// InputConfig defines keyboard handling in the terminal.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a direction stays held without a key repeat
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "distance", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or world x at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ObstacleBoost float64 `yaml:"obstacle_boost"` // Added to obstacle chance at max difficulty
	GapIncrease   float64 `yaml:"gap_increase"`   // Added to the gap range at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset. Empty input yields "".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ScreenOffset returns the player's fixed horizontal screen position.
func (c PlatformerConfig) ScreenOffset() float64 {
	if c.World.ScreenOffset > 0 {
		return c.World.ScreenOffset
	}
	return c.World.Width / 3
}

// Profile returns the tuning for a resolved device class.
func (c PlatformerConfig) Profile(d DeviceClass) DeviceProfile {
	if d == DeviceMobile {
		return c.Profiles.Mobile
	}
	return c.Profiles.Desktop
}

// Validate reports every setting that would break the simulation, joined
// into one error.
func (c PlatformerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	check(c.Jump.Duration > 0, "jump.duration must be positive, got %d", c.Jump.Duration)
	check(c.Jump.MaxJumps >= 1, "jump.max_jumps must be at least 1, got %d", c.Jump.MaxJumps)
	check(c.Physics.Friction >= 0 && c.Physics.Friction <= 1, "physics.friction must be in [0,1], got %g", c.Physics.Friction)
	check(c.Physics.Blend >= 0 && c.Physics.Blend <= 1, "physics.blend must be in [0,1], got %g", c.Physics.Blend)
	check(c.Level.Lookahead > 0, "level.lookahead must be positive, got %g", c.Level.Lookahead)
	check(inUnit(c.Level.CoinChance), "level.coin_chance must be in [0,1], got %g", c.Level.CoinChance)
	check(inUnit(c.Level.ObstacleChance), "level.obstacle_chance must be in [0,1], got %g", c.Level.ObstacleChance)
	check(c.Level.Obstacle.Variants >= 1, "level.obstacle.variants must be at least 1, got %d", c.Level.Obstacle.Variants)
	check(c.Level.StartPlatform.Width > 0, "level.start_platform.width must be positive")

	for name, p := range map[string]DeviceProfile{"desktop": c.Profiles.Desktop, "mobile": c.Profiles.Mobile} {
		check(p.PlayerSize > 0, "profiles.%s.player_size must be positive", name)
		check(p.PlatformWidth.Min > 0 && p.PlatformWidth.Min <= p.PlatformWidth.Max, "profiles.%s.platform_width is not a valid range", name)
		check(p.PlatformHeight.Min > 0 && p.PlatformHeight.Min <= p.PlatformHeight.Max, "profiles.%s.platform_height is not a valid range", name)
		check(p.Gap.Min >= 0 && p.Gap.Min <= p.Gap.Max, "profiles.%s.gap is not a valid range", name)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid platformer config: %w", errors.Join(errs...))
	}
	return nil
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
