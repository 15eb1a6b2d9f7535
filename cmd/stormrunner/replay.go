package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/storm-runner/internal/core"
	"github.com/vovakirdan/storm-runner/internal/games/runner"
	"github.com/vovakirdan/storm-runner/internal/replay"
	"github.com/vovakirdan/storm-runner/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-simulate a recorded run and verify its digest",
	Long: `Replay a recorded run headlessly from its seed and input trace and
compare the final state digest with the recorded one.

A mismatch means the simulation or its tuning changed since the run was
recorded. Runs played with --config need the same file passed here.

Examples:
  stormrunner replay 12
  stormrunner replay 12 --config ./my-runner.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagConfig, "config", "", "Path to the runner config YAML the run used")
}

func runReplay(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", args[0], err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Run(id)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run %d not found", id)
	}

	runner.SetConfigPath(flagConfig)
	checkConfig()
	logger.Debug("replaying", "run", run.ID, "game", run.GameID, "seed", run.Seed,
		"preset", run.Preset, "steps", run.Steps, "inputs", len(run.Trace))

	res, err := replay.Verify(*run, core.DefaultConfig())
	if err != nil {
		return err
	}

	fmt.Printf("Run #%d (%s, player %s, seed %d)\n", run.ID, run.GameID, run.Player, run.Seed)
	fmt.Printf("  recorded: score %d, coins %d, digest %016x\n", run.Score, run.Coins, run.Digest)
	fmt.Printf("  replayed: score %d, coins %d, digest %016x\n", res.State.Score, res.State.Coins, res.Digest)

	if !res.Match {
		fmt.Println("MISMATCH")
		os.Exit(2)
	}
	fmt.Println("OK")
	return nil
}
