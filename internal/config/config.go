// Package config provides YAML-based match configuration loading and
// bot difficulty presets.
package config

import "fmt"

// PongConfig contains all configuration for a bonus pong match.
// Values are read once when a match is created.
type PongConfig struct {
	Field  FieldConfig  `yaml:"field"`
	Ball   BallConfig   `yaml:"ball"`
	Paddle PaddleConfig `yaml:"paddle"`
	Bonus  BonusConfig  `yaml:"bonus"`
	Game   GameConfig   `yaml:"game"`
	Bot    BotConfig    `yaml:"bot"`
	Audio  AudioConfig  `yaml:"audio"`
}

// FieldConfig defines the simulated playfield in pixels.
type FieldConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Framerate int     `yaml:"framerate"`
}

// BallConfig defines ball size and speed in px and px/s.
type BallConfig struct {
	Radius       float64 `yaml:"radius"`
	InitialSpeed float64 `yaml:"initial_speed"`
	Acceleration float64 `yaml:"acceleration"` // px/s added every second of flight
}

// PaddleConfig defines paddle geometry and movement speed.
type PaddleConfig struct {
	Speed   float64 `yaml:"speed"`
	Padding float64 `yaml:"padding"` // distance from the side edge to the paddle center
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// BonusConfig defines bonus spawning and effects.
type BonusConfig struct {
	MaximumAmount   int     `yaml:"maximum_amount"`
	SpawnCooldown   float64 `yaml:"spawn_cooldown"` // seconds
	Radius          float64 `yaml:"radius"`
	HitboxRadius    float64 `yaml:"hitbox_radius"`
	SpeedBoostSpeed float64 `yaml:"speedboost_speed"`
}

// GameConfig defines match rules.
type GameConfig struct {
	PointsToWin int `yaml:"points_to_win"`
}

// BotConfig defines the bot controller.
type BotConfig struct {
	Threshold float64 `yaml:"threshold"` // dead zone in px
}

// AudioConfig defines sound playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// Validate reports configurations the simulation cannot run with.
// Everything else is trusted as given.
func (c PongConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("config: field size must be positive, got %gx%g", c.Field.Width, c.Field.Height)
	}
	if c.Field.Framerate <= 0 {
		return fmt.Errorf("config: framerate must be positive, got %d", c.Field.Framerate)
	}
	if c.Ball.Radius <= 0 {
		return fmt.Errorf("config: ball radius must be positive, got %g", c.Ball.Radius)
	}
	if c.Paddle.Height <= 0 || c.Paddle.Height > c.Field.Height {
		return fmt.Errorf("config: paddle height %g does not fit field height %g", c.Paddle.Height, c.Field.Height)
	}
	if c.Game.PointsToWin <= 0 {
		return fmt.Errorf("config: points_to_win must be positive, got %d", c.Game.PointsToWin)
	}
	return nil
}
