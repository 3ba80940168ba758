package rng

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Pseudo is a counter-keyed pseudo-random Gaussian stream: the k-th path
// draws from a source seeded deterministically from (BaseSeed, k), so
// SkipTo(k) is O(1) and independent of how many paths were drawn before
// it — exactly what the kernel's "clone, then skipTo(firstPath)" batch
// discipline needs. Gaussian draws themselves come from gonum's
// distuv.Normal sitting on an x/exp/rand source, the same pairing the
// pack's basket-option simulator uses for its own Gaussian draws.
type Pseudo struct {
	BaseSeed uint64

	dim     int
	pathIdx int
	normal  distuv.Normal
}

// NewPseudo returns a Pseudo stream seeded from seed.
func NewPseudo(seed uint64) *Pseudo {
	p := &Pseudo{BaseSeed: seed}
	return p
}

func (p *Pseudo) Init(dim int) {
	p.dim = dim
	p.pathIdx = 0
	p.reseed()
}

func (p *Pseudo) SkipTo(k int) {
	p.pathIdx = k
	p.reseed()
}

func (p *Pseudo) NextG(buf []float64) {
	for i := 0; i < p.dim && i < len(buf); i++ {
		buf[i] = p.normal.Rand()
	}
	p.pathIdx++
	p.reseed()
}

func (p *Pseudo) Clone() Generator {
	clone := &Pseudo{BaseSeed: p.BaseSeed, dim: p.dim, pathIdx: p.pathIdx}
	clone.reseed()
	return clone
}

// reseed reinitializes the Gaussian source from splitMix64(BaseSeed,
// pathIdx), so every path's draw sequence depends only on the base seed
// and its own path index, never on draw order across paths.
func (p *Pseudo) reseed() {
	seed := splitMix64(p.BaseSeed, uint64(p.pathIdx))
	p.normal = distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
}

// splitMix64 mixes (seed, stream) into a single well-distributed 64-bit
// value used to seed one path's Gaussian source.
func splitMix64(seed, stream uint64) uint64 {
	z := seed + stream*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
