package mc

import (
	"github.com/banachtech/dupire-aad/aad"
	"gonum.org/v1/gonum/mat"
)

// RiskResult is the risk driver's output: the price alongside its first
// derivative to spot (delta) and, grid-shaped, to every local-vol
// surface point (vega).
type RiskResult struct {
	Price float64
	Delta float64
	Vegas *mat.Dense
}

// Risk runs the price+adjoints driver. For each batch it clears a fresh
// tape, seeds S0 and every vols[i,j] as source DualScalars, invokes the
// same Batch kernel used by Price — now instantiated over DualScalar —
// and reads delta/vega off a single backward sweep of the adjoint
// engine. Accumulation is weighted and index-ordered exactly as in
// Price, so serial and parallel runs agree exactly.
func Risk(p *Params) (RiskResult, error) {
	if err := p.validate(); err != nil {
		return RiskResult{}, err
	}
	ranges := batches(p.Np, p.Nb)
	ns, nt := p.Surface.Grid.Dims()

	prices := make([]float64, len(ranges))
	deltas := make([]float64, len(ranges))
	vegas := make([]*mat.Dense, len(ranges))

	run := func(idx int) {
		r := ranges[idx]
		tape := aad.NewTape(p.Nt * (r.last - r.first) * 16)
		ops := aad.DualOps{Tape: tape}

		s0 := aad.NewConstant(tape, p.S0)
		maturity := aad.NewConstant(tape, p.Maturity)
		strike := aad.NewConstant(tape, p.Strike)
		barrier := aad.NewConstant(tape, p.Barrier)
		epsilon := aad.NewConstant(tape, p.Epsilon)
		duals := p.Surface.seedDuals(tape)
		volGrid, err := p.Surface.toGrid2DDual(duals)
		if err != nil {
			panic(err)
		}

		gen := p.RNG.Clone()
		gen.Init(p.Nt)

		out := Batch[aad.DualScalar](ops, s0, volGrid, maturity, strike, barrier, epsilon, r.first, r.last, p.Nt, gen)
		adjoints := tape.Adjoints(out.Idx())

		prices[idx] = out.Value
		deltas[idx] = aad.Adjoint(adjoints, s0)
		vegas[idx] = p.Surface.Vegas(adjoints, duals)
	}

	if p.Parallel {
		runParallel(len(ranges), run)
	} else {
		for idx := range ranges {
			run(idx)
		}
	}

	price, delta := 0.0, 0.0
	vega := mat.NewDense(ns, nt, nil)
	for idx, r := range ranges {
		weight := float64(r.last-r.first) / float64(p.Np)
		price += prices[idx] * weight
		delta += deltas[idx] * weight
		vega.Apply(func(i, j int, v float64) float64 {
			return v + vegas[idx].At(i, j)*weight
		}, vega)
	}

	return RiskResult{Price: price, Delta: delta, Vegas: vega}, nil
}
