// Package config provides YAML-based game configuration loading and
// difficulty management for the pursuit game.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// PursuitConfig contains all configuration for the pursuit game.
type PursuitConfig struct {
	Geometry   PursuitGeometry  `yaml:"geometry"`
	Agent      PursuitAgent     `yaml:"agent"`
	Seeker     PursuitSeeker    `yaml:"seeker"`
	Pursuer    PursuitPursuer   `yaml:"pursuer"`
	Scoring    PursuitScoring   `yaml:"scoring"`
	Gameplay   PursuitGameplay  `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PursuitGeometry defines how pixel space maps onto the maze grid.
type PursuitGeometry struct {
	TileSize        float64 `yaml:"tile_size"`        // Pixels per tile edge
	CenterTolerance float64 `yaml:"center_tolerance"` // Max per-axis offset that counts as centered
}

// PursuitAgent defines parameters shared by every agent.
type PursuitAgent struct {
	Radius     float64 `yaml:"radius"`
	MaxSpeed   float64 `yaml:"max_speed"` // Pixels per tick
	HP         int     `yaml:"hp"`
	Attack     int     `yaml:"attack"`
	WallBuffer float64 `yaml:"wall_buffer"`
	MouthMax   float64 `yaml:"mouth_max"`
	MouthStep  float64 `yaml:"mouth_step"`
}

// PursuitSeeker defines parameters of the controlled agent.
type PursuitSeeker struct {
	Color           string `yaml:"color"`
	VulnerableTicks int    `yaml:"vulnerable_ticks"` // Window granted by a power pellet
}

// PursuitPursuer defines parameters of the autonomous agents.
type PursuitPursuer struct {
	Colors           []string `yaml:"colors"` // Assigned in spawn order, cycling
	SightRange       float64  `yaml:"sight_range"`
	BehaviorInterval int      `yaml:"behavior_interval"` // Ticks between behavior rolls
	RespawnTicks     int      `yaml:"respawn_ticks"`     // Delay before a dead pursuer is replaced
}

// PursuitScoring defines point awards beyond the one point per dot.
type PursuitScoring struct {
	PursuerPoints int `yaml:"pursuer_points"` // Awarded for catching a vulnerable pursuer
}

// PursuitGameplay defines level flow.
type PursuitGameplay struct {
	LevelClearTicks int `yaml:"level_clear_ticks"` // Pause between a cleared maze and the next
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", "maze" or "none"
	MaxAt int    `yaml:"max_at"` // Score, ticks or maze index at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction   int `yaml:"interval_reduction"`   // Behavior interval reduction at max difficulty
	VulnerableReduction int `yaml:"vulnerable_reduction"` // Vulnerability window reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks the values the engine relies on.
// Agents only land exactly on tile centers when the tile size is a whole
// multiple of the speed, so that is enforced too. Likewise a wall stops an
// agent on its tile center only when radius plus wall buffer is half a tile.
func (c PursuitConfig) Validate() error {
	g, a := c.Geometry, c.Agent
	switch {
	case g.TileSize <= 0:
		return invalid("geometry.tile_size must be positive, got %v", g.TileSize)
	case g.CenterTolerance < 0:
		return invalid("geometry.center_tolerance must not be negative, got %v", g.CenterTolerance)
	case a.MaxSpeed <= 0:
		return invalid("agent.max_speed must be positive, got %v", a.MaxSpeed)
	case math.Mod(g.TileSize, a.MaxSpeed) != 0:
		return invalid("geometry.tile_size %v is not a multiple of agent.max_speed %v", g.TileSize, a.MaxSpeed)
	case a.Radius <= 0:
		return invalid("agent.radius must be positive, got %v", a.Radius)
	case a.WallBuffer < 0:
		return invalid("agent.wall_buffer must not be negative, got %v", a.WallBuffer)
	case a.Radius+a.WallBuffer != g.TileSize/2:
		return invalid("agent.radius + agent.wall_buffer must equal half of geometry.tile_size (%v), got %v",
			g.TileSize/2, a.Radius+a.WallBuffer)
	case a.HP <= 0:
		return invalid("agent.hp must be positive, got %d", a.HP)
	case a.Attack < 0:
		return invalid("agent.attack must not be negative, got %d", a.Attack)
	case a.MouthMax < 0 || a.MouthStep < 0:
		return invalid("agent mouth animation values must not be negative")
	case c.Seeker.VulnerableTicks <= 0:
		return invalid("seeker.vulnerable_ticks must be positive, got %d", c.Seeker.VulnerableTicks)
	case c.Pursuer.BehaviorInterval <= 0:
		return invalid("pursuer.behavior_interval must be positive, got %d", c.Pursuer.BehaviorInterval)
	case c.Pursuer.RespawnTicks < 0:
		return invalid("pursuer.respawn_ticks must not be negative, got %d", c.Pursuer.RespawnTicks)
	case c.Gameplay.LevelClearTicks < 0:
		return invalid("gameplay.level_clear_ticks must not be negative, got %d", c.Gameplay.LevelClearTicks)
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return invalid("difficulty.initial_level must be in [0, 1], got %v", c.Difficulty.InitialLevel)
	}

	switch c.Difficulty.Progression.Type {
	case "score", "time", "maze", "none", "":
	default:
		return invalid("difficulty.progression.type %q is not one of score, time, maze, none", c.Difficulty.Progression.Type)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
