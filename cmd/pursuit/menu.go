package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pursuit/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a maze interactively",
	Long: `Start with a maze picker.

Use arrow keys or j/k to navigate, Enter to play the highlighted maze.
After a game ends, you return to the picker to play again.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play
  Esc/Q        - Quit

Examples:
  pursuit menu
  pursuit menu --fps 30 --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	for {
		rc := terminalConfig()

		choice, err := tui.RunMazePicker(rc.ScreenW, rc.ScreenH)
		if err != nil {
			return err
		}
		if choice == "" {
			return nil
		}

		mazes, err := resolveMazes(choice)
		if err != nil {
			return err
		}
		state, err := playMazes(mazes, rc)
		if err != nil {
			return err
		}
		printResult(cmd, state)
	}
}
