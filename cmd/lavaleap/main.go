// lavaleap is a terminal platformer: dodge the lava, grab the coins.
//
// Usage:
//
//	lavaleap play [level]      - Play the campaign or a single level
//	lavaleap levels            - List available levels
//	lavaleap scores [level]    - Show best runs
//	lavaleap serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.lavaleap/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lavaleap",
	Short: "Lava Leap - a terminal platformer",
	Long: `Lava Leap is a terminal platformer. Run, jump, collect every coin,
and stay out of the lava.

Available commands:
  play     - Play the campaign or a single level
  levels   - Show all available levels
  scores   - View best runs
  serve    - Start SSH server for remote play

Examples:
  lavaleap play
  lavaleap play 02-drip-caverns
  lavaleap levels
  lavaleap scores --plain 01-molten-floor
  lavaleap serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lavaleap/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
