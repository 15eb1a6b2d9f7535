// stormrunner is an endless runner played in the terminal: outrun the storm,
// dodge obstacles and collect coins and power-ups.
//
// Usage:
//
//	stormrunner list               - List game variants
//	stormrunner play [variant]     - Play a variant (default: storm)
//	stormrunner menu               - Pick variants interactively
//	stormrunner serve              - Start SSH server for remote play
//	stormrunner runs [variant]     - Browse recorded runs
//	stormrunner replay <run-id>    - Re-simulate a recorded run and verify it
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.stormrunner/runs.db)
//	--log-level <level>  - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/storm-runner/internal/games/runner"
)

const defaultDBPath = "~/.stormrunner/runs.db"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "stormrunner"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stormrunner",
	Short: "Storm Runner - outrun the storm in your terminal",
	Long: `Storm Runner is an endless runner for the terminal. A storm chases you
from behind: keep jumping to stay ahead of it, dodge obstacles and pick up
coins and power-ups on the way.

Available commands:
  list     - Show the game variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  runs     - Browse recorded runs
  replay   - Verify a recorded run

Examples:
  stormrunner play
  stormrunner play storm_classic --difficulty hard
  stormrunner serve --ssh :2222
  stormrunner replay 12`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}
