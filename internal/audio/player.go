// Package audio plays short synthesised sound cues for match events.
package audio

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bonus-pong/internal/config"
	"github.com/vovakirdan/bonus-pong/internal/core"
)

//go:generate go tool mockgen -destination=mock_player.go -package=audio . Player

// Player plays audio cues. Implementations must not block the caller.
type Player interface {
	Play(cue core.Cue)
	Close()
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Play(core.Cue) {}
func (Nop) Close() {}

// New returns a speaker-backed player, or Nop when sound is muted, disabled
// in config, or the output device cannot be opened.
func New(cfg config.AudioConfig, mute bool, logger *log.Logger) Player {
	if mute || !cfg.Enabled || cfg.Volume <= 0 {
		return Nop{}
	}

	bank := NewSoundBank(cfg.Volume)
	if err := bank.Init(); err != nil {
		if logger != nil {
			logger.Warn("Audio disabled", "error", err)
		}
		return Nop{}
	}
	return bank
}
