// pursuit is a maze chase game for the terminal.
//
// Usage:
//
//	pursuit mazes            - List built-in mazes
//	pursuit play [maze]      - Play the campaign, a built-in maze or a YAML maze file
//	pursuit menu             - Pick a maze interactively
//	pursuit sim [maze]       - Run a headless simulation with random input
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom pursuit config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file while the game owns the terminal
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pursuit/internal/config"
	"github.com/vovakirdan/tui-pursuit/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pursuit",
	Short: "Pursuit - eat every dot before the pursuers catch you",
	Long: `Pursuit is a maze chase game played in the terminal.

Clear each maze of dots while the pursuers hunt you. Power pellets
turn the pursuers blue for a few seconds; catch them then for points.

Available commands:
  mazes    - Show all built-in mazes
  play     - Play the campaign or a single maze
  menu     - Interactive maze picker
  sim      - Headless simulation with random input

Examples:
  pursuit play
  pursuit play classic --difficulty hard
  pursuit play ./my-maze.yaml
  pursuit sim arena --ticks 5000 --seed 7`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pursuit config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(mazesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig loads the pursuit config and applies the difficulty preset.
func loadConfig() (config.PursuitConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PursuitConfig{}, err
	}
	cfg, err := config.LoadPursuit(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPursuitPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the logger for a command. Without --log-file, logs go to
// fallback; interactive commands pass nil because the alternate screen owns
// the terminal. The returned closer is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	opts := logging.Options{Level: flagLogLevel, Prefix: "pursuit"}

	if flagLogFile != "" {
		logger, f, err := logging.OpenFile(flagLogFile, opts)
		if err != nil {
			return nil, func() {}, err
		}
		return logger, func() { f.Close() }, nil
	}

	if fallback == nil {
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return nil, func() {}, fmt.Errorf("logging: invalid level %q: %w", flagLogLevel, err)
		}
		return logging.Discard(), func() {}, nil
	}

	opts.Output = fallback
	logger, err := logging.New(opts)
	if err != nil {
		return nil, func() {}, err
	}
	return logger, func() {}, nil
}
