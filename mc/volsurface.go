package mc

import (
	"github.com/banachtech/dupire-aad/aad"
	"github.com/banachtech/dupire-aad/interp"
	"gonum.org/v1/gonum/mat"
)

// VolSurface is the Dupire local-vol grid: ascending spot and time axes
// plus a vols[i,j] grid, held in a gonum *mat.Dense so the surface can
// be built, sliced, and reported on with the same matrix container the
// rest of the pack's Monte Carlo code uses, even though the pricing
// kernel itself consumes per-batch []float64/[]aad.DualScalar mirrors
// rather than the Dense directly.
type VolSurface struct {
	Spots []float64
	Times []float64
	Grid  *mat.Dense
}

// NewVolSurface validates spots.length*times.length == len(vols) and
// builds the backing matrix.
func NewVolSurface(spots, times, vols []float64) (*VolSurface, error) {
	ns, nt := len(spots), len(times)
	if ns == 0 || nt == 0 {
		return nil, invalidArgument("spots and times must be non-empty")
	}
	if len(vols) != ns*nt {
		return nil, invalidArgument("len(vols) (%d) must equal len(spots)*len(times) (%d)", len(vols), ns*nt)
	}
	grid := mat.NewDense(ns, nt, vols)
	return &VolSurface{Spots: spots, Times: times, Grid: grid}, nil
}

// float64Grid returns the surface as a [][]float64 mirror for the
// value-only pricer.
func (vs *VolSurface) float64Grid() [][]float64 {
	ns, nt := vs.Grid.Dims()
	out := make([][]float64, ns)
	for i := 0; i < ns; i++ {
		out[i] = make([]float64, nt)
		for j := 0; j < nt; j++ {
			out[i][j] = vs.Grid.At(i, j)
		}
	}
	return out
}

// seedDuals lifts every grid cell into its own source DualScalar on
// tape, returning the [][]DualScalar mirror the risk driver hands to the
// kernel and the same mirror's indices for reading adjoints back out.
func (vs *VolSurface) seedDuals(tape *aad.Tape) [][]aad.DualScalar {
	ns, nt := vs.Grid.Dims()
	out := make([][]aad.DualScalar, ns)
	for i := 0; i < ns; i++ {
		out[i] = make([]aad.DualScalar, nt)
		for j := 0; j < nt; j++ {
			out[i][j] = aad.NewConstant(tape, vs.Grid.At(i, j))
		}
	}
	return out
}

func (vs *VolSurface) toGrid2DFloat64() (*interp.Grid2D[float64], error) {
	return interp.NewGrid2D[float64](vs.Spots, vs.Times, vs.float64Grid())
}

func (vs *VolSurface) toGrid2DDual(duals [][]aad.DualScalar) (*interp.Grid2D[aad.DualScalar], error) {
	return interp.NewGrid2D[aad.DualScalar](vs.Spots, vs.Times, duals)
}

// Vegas shapes a flat adjoint slice back into an ns x nt *mat.Dense,
// matching the surface's own layout.
func (vs *VolSurface) Vegas(adjoints []float64, duals [][]aad.DualScalar) *mat.Dense {
	ns, nt := vs.Grid.Dims()
	out := mat.NewDense(ns, nt, nil)
	for i := 0; i < ns; i++ {
		for j := 0; j < nt; j++ {
			out.Set(i, j, aad.Adjoint(adjoints, duals[i][j]))
		}
	}
	return out
}
