package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lavaleap/internal/config"
	"lavaleap/internal/levels"
	"lavaleap/internal/platform/tui"
	"lavaleap/internal/storage"
)

var (
	flagPlain        bool
	flagScoresLevels string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best runs",
	Long: `Browse the best runs per level. Without --plain this opens an
interactive scoreboard; with --plain it prints a table to stdout.

Examples:
  lavaleap scores
  lavaleap scores --plain
  lavaleap scores --plain 01-molten-floor`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print to stdout instead of the interactive scoreboard")
	scoresCmd.Flags().StringVar(&flagScoresLevels, "levels", "", "Directory of level files (default: builtin campaign)")
}

func runScores(cmd *cobra.Command, args []string) {
	levelsDir := flagScoresLevels
	if levelsDir == "" {
		if cfg, err := config.Load(""); err == nil {
			levelsDir = cfg.Levels.Dir
		}
	}

	campaign, err := levels.Campaign(levelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagPlain && len(args) == 0 {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, campaign, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(args) == 1 {
		printLevelRuns(store, campaign, args[0])
		return
	}

	printOverview(store, campaign)
}

// printLevelRuns prints the best runs for a single level.
func printLevelRuns(store *storage.Store, campaign []levels.Level, id string) {
	var name string
	for _, lvl := range campaign {
		if lvl.ID == id {
			name = lvl.Name
			break
		}
	}
	if name == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'lavaleap levels' to see available levels.")
		os.Exit(1)
	}

	runs, err := store.BestRuns(id, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", name)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No completed runs yet.")
		fmt.Println()
		fmt.Printf("Play 'lavaleap play %s' to set the first record!\n", id)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Time", "Deaths", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "----", "------", "----")

	for i, run := range runs {
		fmt.Printf("  %-4d  %-10s  %-6d  %s\n",
			i+1,
			tui.FormatTicks(run.DurationTicks),
			run.Deaths,
			run.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}

// printOverview prints one summary line per level.
func printOverview(store *storage.Store, campaign []levels.Level) {
	stats, err := store.GetAllLevelStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	maxIDLen := 2
	for _, lvl := range campaign {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	fmt.Println("Run overview:")
	fmt.Println()
	fmt.Printf("  %-*s  %-8s  %-10s  %-6s  %s\n", maxIDLen, "ID", "Cleared", "Best", "Deaths", "Attempts")
	fmt.Printf("  %-*s  %-8s  %-10s  %-6s  %s\n", maxIDLen, "--", "-------", "----", "------", "--------")

	for _, lvl := range campaign {
		ls, ok := stats[lvl.ID]
		if !ok {
			fmt.Printf("  %-*s  %-8s  %-10s  %-6s  %s\n", maxIDLen, lvl.ID, "-", "-", "-", "-")
			continue
		}
		best := "-"
		if ls.BestTicks > 0 {
			best = tui.FormatTicks(ls.BestTicks)
		}
		fmt.Printf("  %-*s  %-8d  %-10s  %-6d  %d\n",
			maxIDLen, lvl.ID, ls.Completions, best, ls.TotalDeaths, ls.Attempts)
	}
}
