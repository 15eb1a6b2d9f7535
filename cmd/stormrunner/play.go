package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/storm-runner/internal/config"
	"github.com/vovakirdan/storm-runner/internal/core"
	"github.com/vovakirdan/storm-runner/internal/games/runner"
	"github.com/vovakirdan/storm-runner/internal/platform/tui"
	"github.com/vovakirdan/storm-runner/internal/registry"
	"github.com/vovakirdan/storm-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRecord     bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: storm).

Controls:
  Enter      - Start the run
  Space/Up   - Jump, press again in the air to double jump
  P          - Pause
  R          - Restart (after game over)
  Esc        - Leave
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - More lives, slower storm, fewer obstacles
  normal - The config as written
  hard   - Fewer lives, faster start, faster storm
  fixed  - No speed or level progression

Every finished run is recorded with its seed and inputs so it can be
verified later with 'stormrunner replay'. Disable with --record=false.

Examples:
  stormrunner play
  stormrunner play storm_classic
  stormrunner play --difficulty hard --seed 42
  stormrunner play --config ./my-runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagRecord, "record", true, "Record finished runs for replay")
}

// applyTuning hands the --config and --difficulty flags to the runner and
// exits when the resulting tuning does not load.
func applyTuning() {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		logger.Warn("unknown difficulty preset, using config default", "preset", flagDifficulty)
	}
	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)
	checkConfig()
}

// checkConfig exits with status 1 when the runner tuning is unusable.
func checkConfig() {
	if err := runner.CheckConfig(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal and global flags.
func runtimeConfig() core.RuntimeConfig {
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

// openStore opens the runs database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database, recording disabled", "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := runner.IDStorm
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'stormrunner list' to see available variants.")
		os.Exit(1)
	}

	applyTuning()
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	var store *storage.Store
	if flagRecord {
		store = openStore()
	}

	saved, runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Player: currentUser(),
		Record: flagRecord,
	})

	if store != nil {
		store.Close()
	}

	for _, id := range saved {
		logger.Info("run recorded", "run", id, "replay", fmt.Sprintf("stormrunner replay %d", id))
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// currentUser names the local player in recorded runs.
func currentUser() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	return "local"
}
