package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bonus-pong/internal/audio"
	"github.com/vovakirdan/bonus-pong/internal/config"
	"github.com/vovakirdan/bonus-pong/internal/games/pong"
	"github.com/vovakirdan/bonus-pong/internal/platform/tui"
	"github.com/vovakirdan/bonus-pong/internal/registry"
)

var flagBot string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: pong).

Controls:
  W/Z, S        - Left paddle up/down
  O/Up, L/Down  - Right paddle up/down (against the bot these move the left paddle too)
  P/Space       - Pause
  R             - Restart (after game over)
  Esc           - Leave the match
  Ctrl+S        - Save a screenshot to ~/.pong/screenshots
  Q/Ctrl+C      - Quit

Bot options:
  easy   - Bot reacts only to large offsets
  normal - Default bot
  hard   - Bot tracks the ball closely

Examples:
  pong play
  pong play pong_duel
  pong play pong --bot hard
  pong play --config ./my-pong.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBot, "bot", "", "Bot preset: easy, normal, hard (default: the mode's own)")
}

func runPlay(_ *cobra.Command, args []string) error {
	modeID := "pong"
	if len(args) > 0 {
		modeID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q (run 'pong list' to see available modes)", modeID)
	}

	if flagBot != "" {
		preset, err := config.ParseBotPreset(flagBot)
		if err != nil {
			return err
		}
		pong.SetBotPreset(preset)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(modeID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	player := audio.New(cfg.Audio, flagMute, logger)

	run, runErr := tui.Run(game, tui.Deps{Store: store, Audio: player, Logger: logger}, runtimeConfig(cfg))

	player.Close()
	if store != nil {
		//nolint:errcheck // Best-effort close
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}

	if rec := run.Match; rec != nil {
		fmt.Fprintf(os.Stdout, "%s wins %d - %d\n", rec.Winner, rec.ScoreLeft, rec.ScoreRight)
	}
	return nil
}
