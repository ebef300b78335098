package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/bonus-pong/internal/config"
	"github.com/vovakirdan/bonus-pong/internal/core"
)

func testPaddle(side Side) *Paddle {
	cfg := config.DefaultPongConfig()
	return NewPaddle(side, cfg.Paddle, cfg.Field.Width, cfg.Field.Height)
}

func TestNewPaddlePlacement(t *testing.T) {
	left := testPaddle(SideLeft)
	right := testPaddle(SideRight)

	if left.X != 40 {
		t.Errorf("left.X = %f, expected 40", left.X)
	}
	if right.X != 1240 {
		t.Errorf("right.X = %f, expected 1240", right.X)
	}
	if left.CenterY != 360 || right.CenterY != 360 {
		t.Errorf("paddles should start centered, got %f and %f", left.CenterY, right.CenterY)
	}
}

func TestPaddleMove(t *testing.T) {
	tests := []struct {
		name     string
		startY   float64
		dir      int
		dt       float64
		expected float64
	}{
		{"down", 360, 1, 0.1, 410},
		{"up", 360, -1, 0.1, 310},
		{"still", 360, 0, 0.1, 360},
		{"clamped at top", 60, -1, 1, 50},
		{"clamped at bottom", 660, 1, 1, 670},
		{"large dir is a single step", 360, 5, 0.1, 410},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testPaddle(SideLeft)
			p.CenterY = tc.startY
			p.Move(tc.dir, tc.dt)
			if !approx(p.CenterY, tc.expected) {
				t.Errorf("CenterY = %f, expected %f", p.CenterY, tc.expected)
			}
		})
	}
}

func TestPaddleIntersects(t *testing.T) {
	p := testPaddle(SideLeft) // x=40, w=10, y=360, h=100

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"dead center", 40, 360, true},
		{"touching front face", 55, 360, true},
		{"just in front", 55.1, 360, false},
		{"behind paddle", 25, 360, true},
		{"grazing top edge", 40, 300.5, true},
		{"exactly above top edge", 40, 300, false},
		{"below paddle", 40, 420, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Ball{Pos: core.Vec2{X: tc.x, Y: tc.y}, Radius: 10}
			if got := p.Intersects(b); got != tc.expected {
				t.Errorf("Intersects(%v) = %v, expected %v", b.Pos, got, tc.expected)
			}
		})
	}
}

func TestPaddleDeflect(t *testing.T) {
	tests := []struct {
		name    string
		side    Side
		offsetY float64
		angle   float64
	}{
		{"left center", SideLeft, 0, 0},
		{"right center", SideRight, 0, 0},
		{"left bottom edge", SideLeft, 50, math.Pi / 4},
		{"right top edge", SideRight, -50, -math.Pi / 4},
		{"left halfway up", SideLeft, -25, -math.Pi / 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testPaddle(tc.side)
			b := &Ball{Pos: core.Vec2{X: p.X, Y: p.CenterY + tc.offsetY}, Dir: core.Vec2{X: 1}}
			p.Deflect(b)

			wantX := math.Cos(tc.angle) * tc.side.Sign()
			wantY := math.Sin(tc.angle)
			if !approx(b.Dir.X, wantX) || !approx(b.Dir.Y, wantY) {
				t.Errorf("Dir = %v, expected {%f %f}", b.Dir, wantX, wantY)
			}
			if !approx(b.Dir.Len(), 1) {
				t.Errorf("Dir length = %f, expected 1", b.Dir.Len())
			}
		})
	}
}

func TestPaddleDeflectRestoresSpeed(t *testing.T) {
	p := testPaddle(SideRight)
	b := &Ball{Pos: core.Vec2{X: p.X, Y: p.CenterY}, Speed: 400}
	b.SaveSpeed()
	b.Speed = 1200

	p.Deflect(b)

	if b.Speed != 400 {
		t.Errorf("Speed = %f, expected restored 400", b.Speed)
	}
	if _, ok := b.SavedSpeed(); ok {
		t.Error("saved speed should be cleared after a paddle hit")
	}
}

func TestSide(t *testing.T) {
	if SideLeft.Sign() != 1 || SideRight.Sign() != -1 {
		t.Error("left paddle should send balls right and vice versa")
	}
	if SideLeft.Player() != core.Player1 || SideRight.Player() != core.Player2 {
		t.Error("Player1 owns the left paddle, Player2 the right one")
	}
	if SideLeft.String() != "left" || SideRight.String() != "right" {
		t.Errorf("unexpected side names %q, %q", SideLeft, SideRight)
	}
}
