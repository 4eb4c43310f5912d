package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lilyhop/internal/core"
	"github.com/vovakirdan/lilyhop/internal/platform/tui"
	"github.com/vovakirdan/lilyhop/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play LilyHop",
	Long: `Start playing. The first time you play you are asked for a nickname
for the leaderboard; it is remembered for later runs.

Controls:
  Space/Up/W/Enter/Click  - Start a run, then jump
  Tab                     - Toggle the leaderboard
  Q/Ctrl+C                - Quit

Difficulty options:
  easy   - Slower pads, gentler speed-up, fewer hazards
  normal - Default settings
  hard   - Faster pads, steeper speed-up, more hazards
  fixed  - Speed never increases

Examples:
  lilyhop play
  lilyhop play --difficulty hard
  lilyhop play --config ./my-pond.yaml
  lilyhop play --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadGameConfig()

	// Logs go to a file so the alt screen stays clean
	logPath := flagLogFile
	if logPath == "" {
		logPath = "~/.lilyhop/lilyhop.log"
	}
	logFile, err := openLogFile(logPath)
	if err != nil {
		fatalf("cannot open log file: %v", err)
	}
	defer logFile.Close()
	logger := newLogger(logFile, "lilyhop")

	ctrl, store := openSession(cfg, logger, session.LogSink{Logger: logger})
	if store != nil {
		defer store.Close()
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(ctrl, rc); err != nil {
		logger.Error("game exited", "error", err)
		fatalf("running game: %v", err)
	}
}
