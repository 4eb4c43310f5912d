// lilyhop is a one-button arcade game for the terminal: time your jumps to
// land the frog on a drifting lily pad.
//
// Usage:
//
//	lilyhop play              - Play (asks for a nickname the first time)
//	lilyhop register <nick>   - Remember a nickname without playing
//	lilyhop scores            - Show the leaderboard
//	lilyhop stats             - Show run statistics
//	lilyhop simulate          - Run the autopilot headless
//	lilyhop serve             - Start SSH server for remote play
//	lilyhop config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.lilyhop/lilyhop.db)
//	--config <path>       - Game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Where to write logs
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lilyhop/internal/config"
	"github.com/vovakirdan/lilyhop/internal/game"
	"github.com/vovakirdan/lilyhop/internal/session"
	"github.com/vovakirdan/lilyhop/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lilyhop",
	Short: "LilyHop - hop from pad to pad in your terminal",
	Long: `LilyHop is a one-button arcade game. A lily pad drifts back and forth
across the pond; jump when it passes under the frog to score.

Normal pads are worth 1 point and speed the game up. Gold pads are worth 5
and vanish after landing. Pads that turn gray at the bank are hazards:
landing on one, or missing the pad, ends the run.

Available commands:
  play      - Play the game
  register  - Remember a nickname
  scores    - View the leaderboard or recent runs
  stats     - View run statistics
  simulate  - Watch the autopilot play headless
  serve     - Start SSH server for remote play
  config    - Print the effective configuration

Examples:
  lilyhop play
  lilyhop play --difficulty hard
  lilyhop scores --recent
  lilyhop simulate --runs 10 --seed 42
  lilyhop serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lilyhop/lilyhop.db", "Path to database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (play defaults to ~/.lilyhop/lilyhop.log)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadGameConfig loads the configuration and applies the difficulty preset.
func loadGameConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("%v", err)
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fatalf("%v", err)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fatalf("invalid log level %q", flagLogLevel)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger
}

// openLogFile opens path for appending, creating its directory.
// The caller closes the returned file.
func openLogFile(path string) (*os.File, error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

func expandHome(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// seed returns --seed, or a clock-based seed when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// openSession opens the database and builds an initialized controller.
// The store is nil if the database could not be opened; the session then
// runs from memory.
func openSession(cfg config.Config, logger *log.Logger, sinks ...game.Sink) (*session.Controller, *storage.Store) {
	opts := []game.Option{}
	for _, k := range sinks {
		opts = append(opts, game.WithSink(k))
	}
	sim := game.New(cfg, game.NewRand(seed()), opts...)

	var kv storage.KV
	sessionOpts := []session.Option{session.WithLogger(logger)}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, scores will not be saved", "error", err)
		kv = storage.NewMemoryStore()
		store = nil
	} else {
		kv = store
		sessionOpts = append(sessionOpts, session.WithRecorder(store))
	}

	ctrl := session.New(kv, sim, sessionOpts...)
	ctrl.Init()
	return ctrl, store
}
