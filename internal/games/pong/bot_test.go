package pong

import (
	"testing"

	"github.com/vovakirdan/bonus-pong/internal/core"
)

func TestBotDecide(t *testing.T) {
	tests := []struct {
		name     string
		balls    []core.Vec2
		expected int
	}{
		{"inside dead zone", []core.Vec2{{X: 600, Y: 370}}, 0},
		{"on the threshold", []core.Vec2{{X: 600, Y: 380}}, 0},
		{"just below", []core.Vec2{{X: 600, Y: 381}}, 1},
		{"above", []core.Vec2{{X: 600, Y: 330}}, -1},
		{"closest ball wins", []core.Vec2{{X: 100, Y: 700}, {X: 1100, Y: 365}}, 0},
		{"closest ball far off", []core.Vec2{{X: 1100, Y: 100}, {X: 200, Y: 700}}, -1},
		{"no balls", nil, 0},
	}

	p := testPaddle(SideRight) // x=1240, y=360
	bot := NewBot(20)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			balls := make([]*Ball, len(tc.balls))
			for i, pos := range tc.balls {
				balls[i] = &Ball{Pos: pos, Radius: 10}
			}
			if got := bot.Decide(balls, p); got != tc.expected {
				t.Errorf("Decide() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestBotMovesOneStep(t *testing.T) {
	m := newQuietMatch()
	p := m.Paddle(SideRight)
	b := m.Balls()[0]
	b.Pos.Y = 600
	bot := NewBot(20)

	m.MovePaddle(SideRight, bot.Decide(m.Balls(), p), testDT)

	want := 360 + p.Speed*testDT
	if !approx(p.CenterY, want) {
		t.Errorf("CenterY = %f, expected %f", p.CenterY, want)
	}
}
