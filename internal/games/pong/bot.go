package pong

import "math"

// Bot steers a paddle towards the nearest ball.
// It is stateless and does not predict trajectories.
type Bot struct {
	Threshold float64
}

// NewBot creates a bot with the given dead zone in pixels.
func NewBot(threshold float64) *Bot {
	return &Bot{Threshold: threshold}
}

// Decide returns the move command (-1, 0, +1) for the paddle.
// The closest ball is measured along x only.
func (b *Bot) Decide(balls []*Ball, p *Paddle) int {
	var target *Ball
	best := math.Inf(1)
	for _, ball := range balls {
		if d := math.Abs(ball.Pos.X - p.X); d < best {
			best = d
			target = ball
		}
	}
	if target == nil {
		return 0
	}

	dy := target.Pos.Y - p.CenterY
	if math.Abs(dy) <= b.Threshold {
		return 0
	}
	if dy > 0 {
		return 1
	}
	return -1
}
