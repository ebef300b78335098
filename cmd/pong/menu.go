package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bonus-pong/internal/audio"
	"github.com/vovakirdan/bonus-pong/internal/platform/tui"
	"github.com/vovakirdan/bonus-pong/internal/registry"
	"github.com/vovakirdan/bonus-pong/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive mode picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Esc in a match returns to the menu, which shows who won the last match.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Match history
  Q            - Quit

Examples:
  pong menu
  pong menu --fps 30
  pong menu --db ./history.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	pongCfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	player := audio.New(pongCfg.Audio, flagMute, logger)
	defer func() {
		player.Close()
		if store != nil {
			//nolint:errcheck // Best-effort close
			store.Close()
		}
	}()

	deps := tui.Deps{Store: store, Audio: player, Logger: logger}
	cfg := runtimeConfig(pongCfg)
	var last *storage.MatchRecord

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, player, last)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH, cfg.TickRate)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from history
		}

		game, err := registry.Create(menuResult.ModeID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// New seed for each match unless one was fixed
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		run, err := tui.Run(game, deps, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if run.Match != nil {
			last = run.Match
		}
		if run.Quit {
			return nil
		}

		// Esc loops back to menu
	}
}
