package pong

import (
	"math"

	"github.com/vovakirdan/bonus-pong/internal/config"
	"github.com/vovakirdan/bonus-pong/internal/core"
)

// Match is the simulation of a single bonus pong match.
// It is driven from one goroutine with a fixed timestep and never ends
// by itself; the caller compares the score with points_to_win.
type Match struct {
	cfg  config.PongConfig
	rng  Rand
	area spawnArea

	fieldW float64
	fieldH float64

	left    *Paddle
	right   *Paddle
	balls   []*Ball
	bonuses *BonusField

	scoreLeft  int
	scoreRight int
}

// NewMatch creates a match with one ball served from the center.
func NewMatch(cfg config.PongConfig, rng Rand) *Match {
	w, h := cfg.Field.Width, cfg.Field.Height
	m := &Match{
		cfg:     cfg,
		rng:     rng,
		area:    newSpawnArea(w, h, cfg.Paddle.Padding),
		fieldW:  w,
		fieldH:  h,
		left:    NewPaddle(SideLeft, cfg.Paddle, w, h),
		right:   NewPaddle(SideRight, cfg.Paddle, w, h),
		bonuses: NewBonusField(cfg.Bonus),
	}
	ball := &Ball{}
	m.serve(ball)
	m.balls = []*Ball{ball}
	return m
}

// serve resets a ball to the center with a fresh random direction.
func (m *Match) serve(b *Ball) {
	b.Pos = core.Vec2{X: m.fieldW / 2, Y: m.fieldH / 2}
	b.Dir = m.randomDirection()
	b.Speed = m.cfg.Ball.InitialSpeed
	b.Radius = m.cfg.Ball.Radius
	b.ClearSaved()
}

// randomDirection picks an angle in [-π/4, π/4] towards a random side.
func (m *Match) randomDirection() core.Vec2 {
	angle := uniform(m.rng, -math.Pi/4, math.Pi/4)
	side := 1.0
	if m.rng.Float64() < 0.5 {
		side = -1
	}
	return core.Vec2{X: side * math.Cos(angle), Y: math.Sin(angle)}
}

// Paddle returns the paddle on the given side.
func (m *Match) Paddle(side Side) *Paddle {
	if side == SideLeft {
		return m.left
	}
	return m.right
}

// MovePaddle applies a movement command (-1, 0, +1) for one tick.
func (m *Match) MovePaddle(side Side, dir int, dt float64) {
	if dt <= 0 {
		return
	}
	m.Paddle(side).Move(dir, dt)
}

// Balls returns the balls in play. The slice must not be modified.
func (m *Match) Balls() []*Ball {
	return m.balls
}

// Bonuses returns the bonus field.
func (m *Match) Bonuses() *BonusField {
	return m.bonuses
}

// Score returns the left and right scores.
func (m *Match) Score() (left, right int) {
	return m.scoreLeft, m.scoreRight
}

// FieldSize returns the field dimensions in pixels.
func (m *Match) FieldSize() (w, h float64) {
	return m.fieldW, m.fieldH
}

// Tick advances the simulation by dt seconds and returns the events it raised.
// Balls added by a split during this tick first move on the next one.
func (m *Match) Tick(dt float64) []Event {
	if dt <= 0 {
		return nil
	}

	var events []Event
	n := len(m.balls)
	for i := 0; i < n; {
		b := m.balls[i]
		b.Advance(dt, m.cfg.Ball.Acceleration)
		events = m.collide(b, events)

		scorer, scored := m.goal(b)
		if !scored {
			i++
			continue
		}

		if scorer == SideLeft {
			m.scoreLeft++
		} else {
			m.scoreRight++
		}
		events = append(events, EventGoal)

		if len(m.balls) == 1 {
			m.serve(b)
			i++
			continue
		}

		m.balls = append(m.balls[:i], m.balls[i+1:]...)
		n--
		if len(m.balls) == 1 {
			m.balls[0].Radius = m.cfg.Ball.Radius
		}
	}

	m.bonuses.Tick(dt, m.rng, m.area)
	return events
}

// collide resolves paddle, wall and bonus contacts for one ball.
func (m *Match) collide(b *Ball, events []Event) []Event {
	for _, p := range [...]*Paddle{m.left, m.right} {
		if p.Intersects(b) {
			p.Deflect(b)
			events = append(events, EventPaddleCollision)
			break
		}
	}

	if (b.Pos.Y-b.Radius < 0 && b.Dir.Y < 0) || (b.Pos.Y+b.Radius > m.fieldH && b.Dir.Y > 0) {
		b.Dir.Y = -b.Dir.Y
		events = append(events, EventWallCollision)
	}

	for {
		bonus, ok := m.bonuses.collect(b)
		if !ok {
			break
		}
		effect := bonus.Kind.Effect()
		if effect == nil {
			continue
		}
		event, spawned := effect.Apply(m.effectEnv(), b)
		if spawned != nil {
			m.balls = append(m.balls, spawned)
		}
		events = append(events, event)
	}
	return events
}

func (m *Match) effectEnv() EffectEnv {
	return EffectEnv{
		BoostSpeed:    m.cfg.Bonus.SpeedBoostSpeed,
		DefaultRadius: m.cfg.Ball.Radius,
		RandomPos:     func() core.Vec2 { return m.area.random(m.rng) },
	}
}

// goal reports which side scored when the ball left the field.
func (m *Match) goal(b *Ball) (Side, bool) {
	switch {
	case b.Pos.X < 0:
		return SideRight, true
	case b.Pos.X > m.fieldW:
		return SideLeft, true
	default:
		return SideLeft, false
	}
}

// BallView is the read-only view of a ball.
type BallView struct {
	X, Y   float64
	Radius float64
}

// Snapshot is a read-only copy of everything needed to draw a frame.
type Snapshot struct {
	FieldW, FieldH float64
	Balls          []BallView
	LeftY, RightY  float64
	ScoreLeft      int
	ScoreRight     int
	Bonuses        []Bonus
}

// Snapshot copies the current state for presentation.
func (m *Match) Snapshot() Snapshot {
	snap := Snapshot{
		FieldW:     m.fieldW,
		FieldH:     m.fieldH,
		Balls:      make([]BallView, len(m.balls)),
		LeftY:      m.left.CenterY,
		RightY:     m.right.CenterY,
		ScoreLeft:  m.scoreLeft,
		ScoreRight: m.scoreRight,
		Bonuses:    append([]Bonus(nil), m.bonuses.Active...),
	}
	for i, b := range m.balls {
		snap.Balls[i] = BallView{X: b.Pos.X, Y: b.Pos.Y, Radius: b.Radius}
	}
	return snap
}
