package core

// Rand is the random source consumed by game simulations.
// *math/rand.Rand satisfies it; tests can substitute a scripted source.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// RandRange returns a uniform integer in [lo, hi]. A collapsed range returns lo.
func RandRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// RandRangeF returns a uniform float in [lo, hi).
func RandRangeF(r Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}
