package pong

// Rand is the randomness source a match draws from.
// *math/rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Float64() float64
}

// uniform returns a value in [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
