package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lilyhop/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the LilyHop SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own game under the SSH user name.
All users share the server's leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.lilyhop/host_key

Examples:
  lilyhop serve                           # Listen on :23234 with auto-generated key
  lilyhop serve --ssh :2222               # Listen on port 2222
  lilyhop serve --host-key ./my_host_key  # Use specific host key
  lilyhop serve --db ./pond.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logOut := os.Stderr
	if flagLogFile != "" {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			fatalf("cannot open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        loadGameConfig(),
		TickRate:    flagFPS,
		Seed:        flagSeed,
		Logger:      newLogger(logOut, "lilyhop-ssh"),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fatalf("creating server: %v", err)
	}

	fmt.Printf("Starting LilyHop SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatalf("server: %v", err)
	}
}
