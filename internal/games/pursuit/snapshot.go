package pursuit

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pursuit/internal/pursuit"
)

// Snapshot is a read-only copy of the whole game for UIs, tests and the
// headless simulator.
type Snapshot struct {
	Tick      uint64             `yaml:"tick"`
	Level     int                `yaml:"level"`
	MazeID    string             `yaml:"maze"`
	Score     int                `yaml:"score"`
	HP        int                `yaml:"hp"`
	Remaining int                `yaml:"remaining"`
	Catches   int                `yaml:"catches"`
	State     string             `yaml:"state"`
	Seeker    pursuit.Snapshot   `yaml:"seeker"`
	Pursuers  []pursuit.Snapshot `yaml:"pursuers"`
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Level:   g.levelIndex + 1,
		Catches: g.catches,
		State:   g.phase(),
	}
	if g.maze != nil {
		s.MazeID = g.maze.ID()
		s.Remaining = g.maze.Remaining()
	}
	if g.seeker != nil {
		s.Seeker = g.seeker.Snapshot()
		s.Score = s.Seeker.Score
		s.HP = s.Seeker.HP
	}
	s.Pursuers = make([]pursuit.Snapshot, 0, len(g.pursuers))
	for _, p := range g.pursuers {
		s.Pursuers = append(s.Pursuers, p.agent.Snapshot())
	}
	return s
}

// phase names the game's current flow state.
func (g *Game) phase() string {
	switch {
	case g.won:
		return "won"
	case g.gameOver:
		return "game_over"
	case g.levelCleared:
		return "cleared"
	case g.paused:
		return "paused"
	case g.tooSmall:
		return "too_small"
	default:
		return "playing"
	}
}

// --- Debug helper ---

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, HP: %d, Level: %d (%s)\n", s.Tick, s.Score, s.HP, s.Level, s.MazeID)
	fmt.Fprintf(&b, "Seeker: (%.1f, %.1f) tile (%d, %d) %s, Remaining: %d\n",
		s.Seeker.X, s.Seeker.Y, s.Seeker.Col, s.Seeker.Row, s.Seeker.State, s.Remaining)
	for _, p := range s.Pursuers {
		fmt.Fprintf(&b, "  %s: (%.1f, %.1f) %s timer=%d\n", p.Name, p.X, p.Y, p.State, p.StateTimer)
	}
	fmt.Fprintf(&b, "State: %s\n", s.State)
	return b.String()
}
