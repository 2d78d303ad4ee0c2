package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit"
	"github.com/vovakirdan/tui-pursuit/internal/platform/tui"
	"github.com/vovakirdan/tui-pursuit/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [maze]",
	Short: "Play the campaign or a single maze",
	Long: `Start playing. Without an argument every built-in maze is played in
order; otherwise the argument names a built-in maze or a YAML maze file.

Controls:
  Arrows/WASD/HJKL  - Move
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slow pursuers, long power pellets, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty with sharp-eyed pursuers
  fixed  - No progression, stays at config's initial level

Examples:
  pursuit play
  pursuit play crossroads
  pursuit play classic --difficulty hard
  pursuit play ./my-maze.yaml --log-file ./pursuit.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}
	mazes, err := resolveMazes(arg)
	if err != nil {
		return err
	}

	state, err := playMazes(mazes, terminalConfig())
	if err != nil {
		return err
	}
	printResult(cmd, state)
	return nil
}

// resolveMazes turns a play argument into the mazes to play: empty or
// "campaign" means every built-in maze, a registered ID one maze, anything
// else is read as a YAML maze file.
func resolveMazes(arg string) ([]*pursuit.Maze, error) {
	switch {
	case arg == "" || arg == tui.CampaignID:
		return pursuit.LoadCampaign()
	case registry.Exists(arg):
		m, err := pursuit.LoadRegistered(arg)
		if err != nil {
			return nil, err
		}
		return []*pursuit.Maze{m}, nil
	}

	ext := strings.ToLower(filepath.Ext(arg))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unknown maze %q (run 'pursuit mazes' to see built-in mazes)", arg)
	}
	m, err := pursuit.LoadMazeFile(arg)
	if err != nil {
		return nil, err
	}
	return []*pursuit.Maze{m}, nil
}

// terminalConfig returns a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// playMazes runs an interactive game over mazes and returns its final state.
func playMazes(mazes []*pursuit.Maze, rc core.RuntimeConfig) (core.GameState, error) {
	cfg, err := loadConfig()
	if err != nil {
		return core.GameState{}, err
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return core.GameState{}, err
	}
	defer closeLog()

	game, err := pursuit.New(cfg, pursuit.Options{Mazes: mazes, Logger: logger})
	if err != nil {
		return core.GameState{}, err
	}

	state, err := tui.Run(game, rc, logger)
	if err != nil {
		return state, fmt.Errorf("running game: %w", err)
	}
	return state, nil
}

func printResult(cmd *cobra.Command, state core.GameState) {
	out := cmd.OutOrStdout()
	switch {
	case state.Won:
		fmt.Fprintf(out, "All mazes cleared! Final score: %d\n", state.Score)
	case state.GameOver:
		fmt.Fprintf(out, "Caught on maze %d. Final score: %d\n", state.Level, state.Score)
	default:
		fmt.Fprintf(out, "Score: %d (maze %d)\n", state.Score, state.Level)
	}
}
