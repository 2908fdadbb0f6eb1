package config

import "math"

// DifficultyManager calculates dynamic generation parameters from progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
// distance is the world x the level has been generated up to.
func (d *DifficultyManager) Level(score int, distance float64) float64 {
	if !d.IsEnabled() {
		return 0
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "distance":
		progress = distance / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// ObstacleChance returns the per-platform obstacle probability.
// Disabled progression returns base unchanged.
func (d *DifficultyManager) ObstacleChance(base float64, score int, distance float64) float64 {
	if !d.IsEnabled() {
		return base
	}
	level := d.Level(score, distance)
	return clampF(base+level*d.cfg.Scaling.ObstacleBoost, 0.0, 1.0)
}

// Gap widens a gap range as difficulty increases.
func (d *DifficultyManager) Gap(base Range, score int, distance float64) Range {
	if !d.IsEnabled() {
		return base
	}
	extra := d.Level(score, distance) * d.cfg.Scaling.GapIncrease
	return Range{Min: base.Min, Max: base.Max + extra}
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
