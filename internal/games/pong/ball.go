package pong

import "github.com/vovakirdan/bonus-pong/internal/core"

// Ball is a moving ball in field pixels.
// Dir is kept unit length; Speed is the scalar speed in px/s.
type Ball struct {
	Pos    core.Vec2
	Radius float64
	Speed  float64
	Dir    core.Vec2

	savedSpeed float64
	hasSaved   bool
}

// Advance integrates position over dt, then accelerates.
func (b *Ball) Advance(dt, accel float64) {
	b.Pos = b.Pos.Add(b.Dir.Scale(b.Speed * dt))
	b.Speed += accel * dt
}

// SaveSpeed remembers the current speed so it can be restored later.
// An existing saved speed is kept; returns false in that case.
func (b *Ball) SaveSpeed() bool {
	if b.hasSaved {
		return false
	}
	b.savedSpeed = b.Speed
	b.hasSaved = true
	return true
}

// RestoreSpeed puts back a saved speed and clears it.
func (b *Ball) RestoreSpeed() {
	if !b.hasSaved {
		return
	}
	b.Speed = b.savedSpeed
	b.ClearSaved()
}

// ClearSaved drops any saved speed.
func (b *Ball) ClearSaved() {
	b.savedSpeed = 0
	b.hasSaved = false
}

// SavedSpeed returns the saved speed, if any.
func (b *Ball) SavedSpeed() (float64, bool) {
	return b.savedSpeed, b.hasSaved
}
