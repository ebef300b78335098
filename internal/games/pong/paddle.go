package pong

import (
	"math"

	"github.com/vovakirdan/bonus-pong/internal/config"
	"github.com/vovakirdan/bonus-pong/internal/core"
)

// Side identifies a paddle.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Sign is the x direction a ball leaves this paddle in.
func (s Side) Sign() float64 {
	if s == SideLeft {
		return 1
	}
	return -1
}

// Player maps the side to the controlling player.
func (s Side) Player() core.PlayerID {
	if s == SideLeft {
		return core.Player1
	}
	return core.Player2
}

// maxBounceAngle is reached when the ball hits a paddle edge.
const maxBounceAngle = math.Pi / 4

// Paddle is a vertical paddle at a fixed X.
type Paddle struct {
	Side    Side
	X       float64
	CenterY float64
	Width   float64
	Height  float64
	Speed   float64

	fieldH float64
}

// NewPaddle places a paddle padding pixels in from its side, vertically centered.
func NewPaddle(side Side, cfg config.PaddleConfig, fieldW, fieldH float64) *Paddle {
	x := cfg.Padding
	if side == SideRight {
		x = fieldW - cfg.Padding
	}
	return &Paddle{
		Side:    side,
		X:       x,
		CenterY: fieldH / 2,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Speed:   cfg.Speed,
		fieldH:  fieldH,
	}
}

// Move shifts the paddle by dir*Speed*dt and clamps it inside the field.
// dir is -1 (up), 0 or +1 (down).
func (p *Paddle) Move(dir int, dt float64) {
	if dir > 1 {
		dir = 1
	} else if dir < -1 {
		dir = -1
	}
	p.CenterY += float64(dir) * p.Speed * dt
	half := p.Height / 2
	p.CenterY = core.ClampF(p.CenterY, half, p.fieldH-half)
}

// Top returns the Y of the paddle's upper edge.
func (p *Paddle) Top() float64 {
	return p.CenterY - p.Height/2
}

// Bottom returns the Y of the paddle's lower edge.
func (p *Paddle) Bottom() float64 {
	return p.CenterY + p.Height/2
}

// Intersects reports whether the ball's bounding box overlaps the paddle.
func (p *Paddle) Intersects(b *Ball) bool {
	r := b.Radius
	return b.Pos.X-r <= p.X+p.Width/2 &&
		b.Pos.X+r >= p.X-p.Width/2 &&
		b.Pos.Y+r > p.Top() &&
		b.Pos.Y-r < p.Bottom()
}

// Deflect sends the ball back into the field. The outgoing angle grows
// with the distance between the hit point and the paddle center.
func (p *Paddle) Deflect(b *Ball) {
	angle := maxBounceAngle * (b.Pos.Y - p.CenterY) / (p.Height / 2)
	b.Dir = core.Vec2{X: math.Cos(angle) * p.Side.Sign(), Y: math.Sin(angle)}
	b.RestoreSpeed()
}
