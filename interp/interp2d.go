// Package interp implements the 2-D vol-surface interpolation contract:
// a pure function of the scalar type T, linear in every grid point, so
// that sensitivities to vols[i,j] flow through it via the same Ops[T]
// machinery used everywhere else in the module.
package interp

import "github.com/banachtech/dupire-aad/aad"

// Grid2D holds a local-vol surface on ascending axes spots and times
// (plain float64 — this module does not price sensitivity to the axis
// placement, only to the surface's values), with Vols[i][j] of scalar
// type T at (Spots[i], Times[j]). T is float64 for plain pricing and
// aad.DualScalar for risk, where Vols[i][j] is the very DualScalar the
// risk driver seeded as a tape source for that grid cell — Eval must
// never rebuild a grid point from its .Value, or the adjoint would
// attach to the wrong tape node.
type Grid2D[T any] struct {
	Spots []float64
	Times []float64
	Vols  [][]T
}

// NewGrid2D validates shape and returns a Grid2D, or an error if vols is
// not shaped len(spots) x len(times).
func NewGrid2D[T any](spots, times []float64, vols [][]T) (*Grid2D[T], error) {
	if len(spots) == 0 || len(times) == 0 {
		return nil, errInvalidShape("spots and times must be non-empty")
	}
	if len(vols) != len(spots) {
		return nil, errInvalidShape("len(vols) must equal len(spots)")
	}
	for _, row := range vols {
		if len(row) != len(times) {
			return nil, errInvalidShape("every vols row must have len(times) columns")
		}
	}
	return &Grid2D[T]{Spots: spots, Times: times, Vols: vols}, nil
}

type shapeError string

func (e shapeError) Error() string { return string(e) }

func errInvalidShape(msg string) error { return shapeError(msg) }

// locate returns i such that axis[i] <= x <= axis[i+1], clamped to the
// grid's range at the boundaries. axis must be ascending and have at
// least two distinct points for the clamp to matter.
func locate(axis []float64, x float64) int {
	if x <= axis[0] {
		return 0
	}
	last := len(axis) - 1
	if x >= axis[last] {
		if last == 0 {
			return 0
		}
		return last - 1
	}
	lo, hi := 0, last
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if axis[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// Eval bilinearly interpolates g at (spot, tValue), generic over T. spot
// carries the very scalar the caller is simulating with (a float64 while
// pricing, a DualScalar recording onto a tape while computing risk);
// spotValue is its forward value, handed in separately so Eval never has
// to read ops.Value(spot) itself. Cell selection (locate) and the
// clamp-to-flat decision at the grid's edges are control flow on
// spotValue/tValue, exactly like the barrier branch in the pricing
// kernel — but the spot-axis interpolation weight u is itself built as a
// recorded T operation (ops.Sub/ops.Scale on spot), not folded in as a
// plain float64 constant, so the result stays differentiable in spot:
// this is what lets ∂vol/∂spot, the local-vol feedback term, flow into
// delta. The time-axis weight v has no such requirement (times never
// carries a sensitivity in this module) and is folded in as a constant.
func Eval[T any](ops aad.Ops[T], g *Grid2D[T], spot T, spotValue, tValue float64) T {
	ns, nt := len(g.Spots), len(g.Times)

	i := locate(g.Spots, spotValue)
	j := locate(g.Times, tValue)
	i1, j1 := i, j
	if ns > 1 {
		i1 = i + 1
	}
	if nt > 1 {
		j1 = j + 1
	}

	u := spotWeight(ops, g.Spots, i, i1, spot, spotValue)

	v := 0.0
	if nt > 1 {
		v = clamp01((tValue - g.Times[j]) / (g.Times[j1] - g.Times[j]))
	}

	v00 := g.Vols[i][j]
	v10 := g.Vols[i1][j]
	v01 := g.Vols[i][j1]
	v11 := g.Vols[i1][j1]

	oneMinusU := ops.Sub(ops.Const(1), u)
	top := ops.Add(ops.Mul(v00, oneMinusU), ops.Mul(v10, u))
	bot := ops.Add(ops.Mul(v01, oneMinusU), ops.Mul(v11, u))

	return ops.Add(ops.Scale(top, 1-v), ops.Scale(bot, v))
}

// spotWeight builds the spot-axis bilinear weight as a recorded T
// operation, linear in spot, clamped flat (a plain constant, zero
// sensitivity) outside the grid's spot range.
func spotWeight[T any](ops aad.Ops[T], spots []float64, i, i1 int, spot T, spotValue float64) T {
	if i == i1 {
		return ops.Const(0)
	}
	raw := (spotValue - spots[i]) / (spots[i1] - spots[i])
	switch {
	case raw <= 0:
		return ops.Const(0)
	case raw >= 1:
		return ops.Const(1)
	default:
		return ops.Scale(ops.Sub(spot, ops.Const(spots[i])), 1.0/(spots[i1]-spots[i]))
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
