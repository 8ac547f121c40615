package field

// Source supplies uniform samples in [0,1). *Rand and *math/rand.Rand both
// satisfy it.
type Source interface {
	Float64() float64
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

// symmetric maps a [0,1) sample onto [-span, span).
func symmetric(src Source, span float64) float64 {
	return (src.Float64()*2 - 1) * span
}
