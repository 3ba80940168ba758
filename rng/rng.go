// Package rng implements the Monte Carlo kernel's random-number-
// generator contract: Init/SkipTo/NextG/Clone. Two concrete generators
// are provided — Pseudo, a counter-keyed pseudo-random Gaussian stream,
// and Quasi, a Halton-sequence low-discrepancy stream standing in for
// the source's Sobol generator, since no Sobol implementation exists in
// this module's dependency stack.
package rng

// Generator is the RNG contract the pricing kernel drives. Init(dim)
// prepares the generator for dim-dimensional draws; SkipTo(k) positions
// the generator at the k-th draw (0-indexed); NextG(buf) fills buf with
// the next dim standard normals and advances one draw; Clone returns an
// independent copy sharing no mutable state with the original, which is
// how each batch gets its own generator positioned via SkipTo without
// workers contending over one generator's internal state.
type Generator interface {
	Init(dim int)
	SkipTo(k int)
	NextG(buf []float64)
	Clone() Generator
}
