package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"lavaleap/internal/config"
	"lavaleap/internal/levels"
	"lavaleap/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagIdleTimeout int
	flagServeConfig string
	flagServeLevels string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the lavaleap SSH server",
	Long: `Start an SSH server that lets users connect and play the campaign.

Each SSH connection gets their own campaign session. Runs are stored
per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.lavaleap/host_key

Examples:
  lavaleap serve                           # Listen on :23234 with auto-generated key
  lavaleap serve --ssh :2222               # Listen on port 2222
  lavaleap serve --host-key ./my_host_key  # Use specific host key
  lavaleap serve --levels ./my-levels      # Serve a custom level set

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.lavaleap/runs.db", "Path to runs database")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom config YAML")
	serveCmd.Flags().StringVar(&flagServeLevels, "levels", "", "Directory of level files (default: builtin campaign)")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	levelsDir := flagServeLevels
	if levelsDir == "" {
		levelsDir = gameCfg.Levels.Dir
	}

	campaign, err := levels.Campaign(levelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        gameCfg.Game,
	}

	server, err := tui.NewSSHServer(cfg, campaign)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting lavaleap SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
