package pong

import (
	"math"

	"github.com/vovakirdan/bonus-pong/internal/config"
)

const testDT = 1.0 / 60.0

// scriptedRand replays a fixed sequence of values, 0.5 when empty.
type scriptedRand struct {
	vals []float64
	i    int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.vals) == 0 {
		return 0.5
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// quietConfig has no bonuses and no acceleration so positions are easy to predict.
func quietConfig() config.PongConfig {
	cfg := config.DefaultPongConfig()
	cfg.Bonus.MaximumAmount = 0
	cfg.Ball.Acceleration = 0
	return cfg
}

// newQuietMatch serves straight to the right from the center.
func newQuietMatch() *Match {
	return NewMatch(quietConfig(), &scriptedRand{})
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func hasEvent(events []Event, want Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

func countEvent(events []Event, want Event) int {
	n := 0
	for _, e := range events {
		if e == want {
			n++
		}
	}
	return n
}
