package pong

import (
	"testing"

	"github.com/vovakirdan/bonus-pong/internal/core"
)

func TestBallAdvance(t *testing.T) {
	b := &Ball{
		Pos:   core.Vec2{X: 100, Y: 100},
		Speed: 300,
		Dir:   core.Vec2{X: 0.6, Y: 0.8},
	}

	b.Advance(0.5, 10)

	if !approx(b.Pos.X, 190) || !approx(b.Pos.Y, 220) {
		t.Errorf("Pos = %v, expected {190 220}", b.Pos)
	}
	// Speed grows after the move, not before
	if !approx(b.Speed, 305) {
		t.Errorf("Speed = %f, expected 305", b.Speed)
	}
}

func TestBallSavedSpeed(t *testing.T) {
	b := &Ball{Speed: 400}

	if !b.SaveSpeed() {
		t.Fatal("first SaveSpeed should store the speed")
	}
	b.Speed = 1200
	if b.SaveSpeed() {
		t.Error("second SaveSpeed should keep the original saved speed")
	}
	if saved, ok := b.SavedSpeed(); !ok || saved != 400 {
		t.Errorf("SavedSpeed() = %f, %v; expected 400, true", saved, ok)
	}

	b.RestoreSpeed()
	if b.Speed != 400 {
		t.Errorf("Speed after restore = %f, expected 400", b.Speed)
	}
	if _, ok := b.SavedSpeed(); ok {
		t.Error("RestoreSpeed should clear the saved speed")
	}

	// Restoring without a saved speed leaves the ball alone
	b.Speed = 900
	b.RestoreSpeed()
	if b.Speed != 900 {
		t.Errorf("Speed = %f, expected 900", b.Speed)
	}
}
