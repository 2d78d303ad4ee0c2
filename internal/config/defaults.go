package config

import (
	_ "embed"
)

//go:embed defaults/pursuit.yaml
var defaultPursuitYAML []byte

// DefaultPursuitConfig returns the hardcoded pursuit configuration.
// It mirrors defaults/pursuit.yaml and backs every field a partial file omits.
func DefaultPursuitConfig() PursuitConfig {
	return PursuitConfig{
		Geometry: PursuitGeometry{
			TileSize:        20,
			CenterTolerance: 0.5,
		},
		Agent: PursuitAgent{
			Radius:     10,
			MaxSpeed:   2,
			HP:         50,
			Attack:     10,
			WallBuffer: 0,
			MouthMax:   0.10,
			MouthStep:  0.01,
		},
		Seeker: PursuitSeeker{
			Color:           "yellow",
			VulnerableTicks: 300,
		},
		Pursuer: PursuitPursuer{
			Colors:           []string{"red", "pink", "cyan", "orange"},
			SightRange:       250,
			BehaviorInterval: 10,
			RespawnTicks:     180,
		},
		Scoring: PursuitScoring{
			PursuerPoints: 50,
		},
		Gameplay: PursuitGameplay{
			LevelClearTicks: 90,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 600,
			},
			Scaling: ScalingConfig{
				IntervalReduction:   6,
				VulnerableReduction: 180,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pursuit":
		return defaultPursuitYAML
	default:
		return nil
	}
}
