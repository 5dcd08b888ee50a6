package noise

import (
	"math/rand/v2"
)

// Rand supplies the uniform draws consumed by every generator.
//
// Uniform must return independent values in [-1, 1). Implementations are
// called from the audio goroutine and must not block or allocate.
type Rand interface {
	Uniform() float32
}

// PCGRand is the default Rand backed by a PCG generator.
// It is not safe for concurrent use; give each session its own.
type PCGRand struct {
	rng *rand.Rand
}

// NewRand returns a PCGRand seeded from the runtime's random source.
func NewRand() *PCGRand {
	return &PCGRand{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededRand returns a PCGRand with a fixed seed.
func NewSeededRand(seed1, seed2 uint64) *PCGRand {
	return &PCGRand{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Uniform returns a draw in [-1, 1).
func (r *PCGRand) Uniform() float32 {
	return 2*r.rng.Float32() - 1
}
