package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pursuit/internal/registry"
)

var mazesCmd = &cobra.Command{
	Use:     "mazes",
	Aliases: []string{"list"},
	Short:   "List all built-in mazes",
	Long:    `Shows the built-in mazes in campaign order.`,
	Run:     runMazes,
}

func runMazes(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	mazes := registry.List()

	if len(mazes) == 0 {
		fmt.Fprintln(out, "No mazes available.")
		return
	}

	fmt.Fprintln(out, "Built-in mazes:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range mazes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "-----")
	for _, m := range mazes {
		fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxIDLen, m.ID, fmt.Sprintf("%dx%d", m.Cols, m.Rows), m.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'pursuit play <id>' to play one maze, or 'pursuit play' for all of them.")
}
