package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:     1280,
			Height:    720,
			Framerate: 60,
		},
		Ball: BallConfig{
			Radius:       10,
			InitialSpeed: 400,
			Acceleration: 10,
		},
		Paddle: PaddleConfig{
			Speed:   500,
			Padding: 40,
			Width:   10,
			Height:  100,
		},
		Bonus: BonusConfig{
			MaximumAmount:   3,
			SpawnCooldown:   5,
			Radius:          12,
			HitboxRadius:    15,
			SpeedBoostSpeed: 1200,
		},
		Game: GameConfig{
			PointsToWin: 10,
		},
		Bot: BotConfig{
			Threshold: ThresholdForPreset(BotNormal),
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
