package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"lavaleap/internal/config"
	"lavaleap/internal/levels"
)

var flagListLevelsDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows the levels of the campaign, builtin or from a directory.`,
	Run:   runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagListLevelsDir, "levels", "", "Directory of level files (default: builtin campaign)")
}

func runLevels(cmd *cobra.Command, args []string) {
	levelsDir := flagListLevelsDir
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

	if len(campaign) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, lvl := range campaign {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Name", "Coins")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "----", "-----")

	rng := rand.New(rand.NewSource(0))
	for _, lvl := range campaign {
		coins := "?"
		if parsed, err := lvl.Compile(rng); err == nil {
			coins = fmt.Sprintf("%d", parsed.CoinCount())
		}
		fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, lvl.ID, lvl.Name, coins)
	}

	fmt.Println()
	fmt.Println("Run 'lavaleap play <id>' to play a level.")
}
