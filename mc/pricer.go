package mc

import (
	"sync"

	"github.com/banachtech/dupire-aad/aad"
	"github.com/banachtech/dupire-aad/rng"
)

// Params bundles every input to the price and risk drivers.
type Params struct {
	S0      float64
	Surface *VolSurface
	Maturity, Strike, Barrier float64
	Epsilon float64
	Np, Nb, Nt int
	Parallel bool
	RNG      rng.Generator
}

func (p *Params) validate() error {
	if p.Surface == nil {
		return invalidArgument("surface must not be nil")
	}
	if p.Np < 1 {
		return invalidArgument("Np must be >= 1, got %d", p.Np)
	}
	if p.Nb < 1 {
		return invalidArgument("Nb must be >= 1, got %d", p.Nb)
	}
	if p.Nt < 1 {
		return invalidArgument("Nt must be >= 1, got %d", p.Nt)
	}
	if p.Epsilon <= 0 {
		return invalidArgument("Epsilon must be > 0, got %g", p.Epsilon)
	}
	if p.Maturity <= 0 {
		return invalidArgument("Maturity must be > 0, got %g", p.Maturity)
	}
	if p.RNG == nil {
		return invalidArgument("RNG must not be nil")
	}
	return nil
}

type batchRange struct {
	first, last int
}

// batches splits [0, Np) into contiguous ranges of size Nb, the last one
// smaller if Np is not a multiple of Nb.
func batches(np, nb int) []batchRange {
	var out []batchRange
	for first := 0; first < np; first += nb {
		last := first + nb
		if last > np {
			last = np
		}
		out = append(out, batchRange{first, last})
	}
	return out
}

// Price runs the value-only driver: splits [0, Np) into batches, prices
// each with its own RNG clone positioned at the batch's first path
// (serially or in parallel), and accumulates a weighted average. Accumulation always iterates
// batches in index order regardless of which goroutine finished first,
// so Price is byte-identical whether Parallel is true or false.
func Price(p *Params) (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}
	volGrid, err := p.Surface.toGrid2DFloat64()
	if err != nil {
		return 0, err
	}
	ranges := batches(p.Np, p.Nb)

	ops := aad.Float64Ops{}
	results := make([]float64, len(ranges))

	run := func(idx int) {
		r := ranges[idx]
		gen := p.RNG.Clone()
		gen.Init(p.Nt)
		results[idx] = Batch[float64](ops, p.S0, volGrid, p.Maturity, p.Strike, p.Barrier, p.Epsilon, r.first, r.last, p.Nt, gen)
	}

	if p.Parallel {
		runParallel(len(ranges), run)
	} else {
		for idx := range ranges {
			run(idx)
		}
	}

	price := 0.0
	for idx, r := range ranges {
		weight := float64(r.last-r.first) / float64(p.Np)
		price += results[idx] * weight
	}
	return price, nil
}

// runParallel runs run(0), run(1), ..., run(n-1) on a bounded goroutine
// pool sized to GOMAXPROCS, then waits for all of them. Each goroutine
// writes to a distinct slice index, so there is no data race even
// though nothing else synchronizes access to results.
func runParallel(n int, run func(idx int)) {
	sem := make(chan struct{}, workerCount())
	var wg sync.WaitGroup
	wg.Add(n)
	for idx := 0; idx < n; idx++ {
		sem <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()
			run(idx)
		}(idx)
	}
	wg.Wait()
}
