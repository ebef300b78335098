// pong is terminal Pong with bonuses, against a bot or a second player.
//
// Usage:
//
//	pong list               - List game modes
//	pong play [mode]        - Play a mode (default: pong)
//	pong menu               - Pick modes interactively
//	pong history [mode]     - Show finished matches
//	pong serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: config framerate)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.pong/history.db)
//	--config <path>    - Use a custom pong.yaml
//	--log-file <path>  - Write logs to a file
//	--mute             - Disable sound
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bonus-pong/internal/config"
	"github.com/vovakirdan/bonus-pong/internal/core"
	"github.com/vovakirdan/bonus-pong/internal/games/pong"
	"github.com/vovakirdan/bonus-pong/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagMute    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong with bonuses in your terminal",
	Long: `Classic Pong with bonuses: speed-boost, teleport and split pellets
appear on the field and change the ball that touches them.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  history  - Show finished matches
  serve    - Start SSH server for remote play

Examples:
  pong play
  pong play pong_duel
  pong menu --mute
  pong history pong
  pong serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		pong.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = framerate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/history.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pong.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads and validates the match configuration.
func loadConfig() (config.PongConfig, error) {
	cfg, err := pong.LoadConfig()
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the logger for a command. The TUI owns the terminal, so
// without --log-file interactive commands log nowhere.
// The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close
			f.Close()
		}
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
	})
	return logger, closeFn, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig(cfg config.PongConfig) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	tickRate := flagFPS
	if tickRate <= 0 {
		tickRate = cfg.Field.Framerate
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}
}

// openStore opens the history database, or returns nil with a warning.
// A game without history still works.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		logger.Warn("History disabled", "error", err)
		return nil
	}
	return store
}
