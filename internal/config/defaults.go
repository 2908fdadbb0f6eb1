package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the hard-coded platformer configuration.
// It mirrors defaults/platformer.yaml and is the last fallback of the loader.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: WorldConfig{
			Width:  800,
			Height: 400,
		},
		Physics: PhysicsConfig{
			Gravity:          0.5,
			MaxSpeedX:        5,
			Blend:            0.1,
			Friction:         0.9,
			LandingTolerance: 5,
		},
		Jump: JumpConfig{
			Force:       12,
			DoubleForce: 10,
			Duration:    30,
			MaxJumps:    2,
		},
		Player: PlayerConfig{
			StartX: 50,
			Speed:  5,
		},
		Level: LevelConfig{
			Lookahead:   1.5,
			PruneMargin: 100,
			InitialSpan: 2.0,
			StartPlatform: StartPlatform{
				X:       0,
				YOffset: 50,
				Width:   200,
				Height:  20,
			},
			CoinChance:     0.5,
			ObstacleChance: 0.2,
			Coin: CoinConfig{
				Size:   20,
				Lift:   30,
				Jitter: 50,
			},
			Obstacle: ObstacleConfig{
				Size:     40,
				Variants: 4,
			},
			Reachable:   true,
			ReachMargin: 0.9,
		},
		Scoring: ScoringConfig{
			CoinValue: 10,
		},
		Device: DeviceConfig{
			Breakpoint: 96,
		},
		Profiles: ProfilesConfig{
			Desktop: DeviceProfile{
				PlayerSize:     30,
				PlatformWidth:  Range{Min: 60, Max: 150},
				PlatformHeight: Range{Min: 10, Max: 30},
				Gap:            Range{Min: 30, Max: 120},
			},
			Mobile: DeviceProfile{
				PlayerSize:     40,
				PlatformWidth:  Range{Min: 80, Max: 180},
				PlatformHeight: Range{Min: 10, Max: 30},
				Gap:            Range{Min: 40, Max: 140},
			},
		},
		Input: InputConfig{
			HoldTicks: 40,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				ObstacleBoost: 0.25,
				GapIncrease:   30,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "platformer":
		return defaultPlatformerYAML
	default:
		return nil
	}
}
