package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/storm-runner/internal/platform/tui"
	"github.com/vovakirdan/storm-runner/internal/registry"
	"github.com/vovakirdan/storm-runner/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsTop   bool
	flagRunsPlain bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [variant]",
	Short: "Browse recorded runs",
	Long: `Browse recorded runs in an interactive table.

In the table: Tab switches variant, S toggles recent/top order and
V replays the selected run to verify its digest.

When stdout is not a terminal, or with --plain, the runs are printed
as text instead.

Examples:
  stormrunner runs
  stormrunner runs storm --top --plain
  stormrunner runs --limit 50 --plain`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to print")
	runsCmd.Flags().BoolVar(&flagRunsTop, "top", false, "Order by score instead of recency")
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print runs as text")
}

func runRuns(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagRunsPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		cfg := runtimeConfig()
		if _, err := tui.RunRuns(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	var runs []storage.Run
	if flagRunsTop {
		runs, err = store.TopRuns(gameID, flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(gameID, flagRunsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'stormrunner play' to record the first one!")
		return
	}

	fmt.Printf("  %-6s  %-14s  %-10s  %-8s  %-6s  %-8s  %s\n", "Run", "Variant", "Player", "Score", "Coins", "Ticks", "Date")
	fmt.Printf("  %-6s  %-14s  %-10s  %-8s  %-6s  %-8s  %s\n", "---", "-------", "------", "-----", "-----", "-----", "----")
	for _, r := range runs {
		row := tui.RunRow(r)
		fmt.Printf("  %-6s  %-14s  %-10s  %-8s  %-6s  %-8s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5], row[6])
	}

	if stats, err := store.GetAllGamesStats(); err == nil {
		fmt.Println()
		for _, g := range registry.List() {
			if s, ok := stats[g.ID]; ok && (gameID == "" || gameID == g.ID) {
				fmt.Printf("%s: %d runs, best %d, most coins %d\n", g.Title, s.RunsCount, s.HighScore, s.MostCoins)
			}
		}
	}
}
