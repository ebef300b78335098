package config

import "fmt"

// BotPreset represents a named bot difficulty.
type BotPreset string

const (
	BotEasy   BotPreset = "easy"
	BotNormal BotPreset = "normal"
	BotHard   BotPreset = "hard"
)

// ThresholdForPreset returns the bot dead zone for a preset.
// A smaller dead zone makes the bot track the ball more tightly.
func ThresholdForPreset(preset BotPreset) float64 {
	switch preset {
	case BotEasy:
		return 40
	case BotHard:
		return 8
	default:
		return 20
	}
}

// ParseBotPreset converts a flag value into a preset.
func ParseBotPreset(s string) (BotPreset, error) {
	switch p := BotPreset(s); p {
	case BotEasy, BotNormal, BotHard:
		return p, nil
	case "":
		return BotNormal, nil
	default:
		return "", fmt.Errorf("config: unknown bot preset %q (want easy, normal or hard)", s)
	}
}

// ApplyBotPreset modifies the config based on a bot preset.
// The normal preset keeps the configured bot.threshold.
func ApplyBotPreset(cfg *PongConfig, preset BotPreset) {
	if preset == BotNormal {
		return
	}
	cfg.Bot.Threshold = ThresholdForPreset(preset)
}
