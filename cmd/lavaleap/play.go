package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lavaleap/internal/config"
	"lavaleap/internal/core"
	"lavaleap/internal/levels"
	"lavaleap/internal/platform/tui"
	"lavaleap/internal/session"
	"lavaleap/internal/storage"
)

var (
	flagConfig    string
	flagLevelsDir string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the campaign or a single level",
	Long: `Start the campaign, or a single level if one is named.

Controls:
  A/Left     - Run left
  D/Right    - Run right
  Space/W/Up - Jump
  P          - Pause
  R          - Restart level (costs a life)
  Q/Ctrl+C   - Quit

Examples:
  lavaleap play
  lavaleap play 02-drip-caverns
  lavaleap play --levels ./my-levels
  lavaleap play --config ./my-config.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: builtin campaign)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	levelsDir := flagLevelsDir
	if levelsDir == "" {
		levelsDir = cfg.Levels.Dir
	}

	campaign, err := levels.Campaign(levelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	// A named level becomes a one-level campaign
	if len(args) == 1 {
		campaign = pickLevel(campaign, args[0])
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	// Get terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	sess, err := session.New(campaign, cfg.Game, rt.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting session: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(sess, store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// pickLevel narrows a campaign down to the named level, or exits with a
// hint when the level does not exist.
func pickLevel(campaign []levels.Level, id string) []levels.Level {
	for _, lvl := range campaign {
		if lvl.ID == id {
			return []levels.Level{lvl}
		}
	}
	fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", id)
	fmt.Fprintln(os.Stderr, "Run 'lavaleap levels' to see available levels.")
	os.Exit(1)
	return nil
}
