package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit"
)

var (
	flagTicks     int
	flagTurnEvery int
	flagFormat    string
)

var simCmd = &cobra.Command{
	Use:   "sim [maze]",
	Short: "Run a headless simulation with random input",
	Long: `Run the game without a terminal UI. The seeker picks a random direction
every --turn-every ticks; everything is driven by --seed, so the same seed
always produces the same result. Logs go to stderr (or --log-file), the final
snapshot to stdout.

Examples:
  pursuit sim
  pursuit sim arena --ticks 10000 --seed 42
  pursuit sim classic --format yaml --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagTurnEvery, "turn-every", 15, "Ticks between random direction changes")
	simCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or yaml")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}
	if flagFormat != "text" && flagFormat != "yaml" {
		return fmt.Errorf("unknown --format %q (want text or yaml)", flagFormat)
	}

	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}
	mazes, err := resolveMazes(arg)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := pursuit.New(cfg, pursuit.Options{Mazes: mazes, Logger: logger})
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	snap := simulate(game, seed, flagTicks, flagTurnEvery)
	logger.Info("simulation finished",
		"seed", seed,
		"ticks", snap.Tick,
		"maze", snap.MazeID,
		"score", snap.Score,
		"hp", snap.HP,
		"state", snap.State,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	return writeSnapshot(cmd.OutOrStdout(), snap, flagFormat, logger)
}

// simulate runs game headless for up to ticks steps, turning the seeker in a
// random direction every turnEvery ticks. It stops early once the game ends.
func simulate(game *pursuit.Game, seed int64, ticks, turnEvery int) pursuit.Snapshot {
	game.Reset(core.RuntimeConfig{Seed: seed})

	rng := rand.New(rand.NewSource(seed))
	dirs := core.DirectionalActions()
	turnEvery = max(turnEvery, 1)

	for i := 0; i < ticks; i++ {
		in := core.NewInputFrame()
		if i%turnEvery == 0 {
			in.Set(dirs[rng.Intn(len(dirs))])
		}
		if game.Step(in).State.GameOver {
			break
		}
	}
	return game.Snapshot()
}

func writeSnapshot(w io.Writer, snap pursuit.Snapshot, format string, logger *log.Logger) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "maze %s (level %d) after %d ticks: %s\n", snap.MazeID, snap.Level, snap.Tick, snap.State)
	fmt.Fprintf(w, "score %d  hp %d  remaining %d  catches %d\n", snap.Score, snap.HP, snap.Remaining, snap.Catches)
	fmt.Fprintf(w, "seeker %s at tile (%d, %d) %s\n", snap.Seeker.Name, snap.Seeker.Col, snap.Seeker.Row, snap.Seeker.State)
	for _, p := range snap.Pursuers {
		fmt.Fprintf(w, "pursuer %s at tile (%d, %d) %s\n", p.Name, p.Col, p.Row, p.State)
	}
	logger.Debug("snapshot written", "pursuers", len(snap.Pursuers))
	return nil
}
