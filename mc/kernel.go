package mc

import (
	"github.com/banachtech/dupire-aad/aad"
	"github.com/banachtech/dupire-aad/interp"
	"github.com/banachtech/dupire-aad/rng"
)

// Batch prices one contiguous range of paths [firstPath, lastPath) of
// the Dupire-local-vol up-and-out barrier payoff, generic over scalar
// type T via ops. Called with Float64Ops this is the plain Monte Carlo
// pricer; called with DualOps over a tape this is, op for op, the same
// code path recording the adjoint graph the risk driver later
// differentiates — there is exactly one implementation of the barrier
// simulation in this module.
//
// The barrier is monitored as up-and-out: a path knocks out when spot
// rises above barrier+epsilon. notionalAlive ramps linearly to zero
// across the band [barrier-epsilon, barrier+epsilon] rather than
// applying a hard indicator, so that pathwise sensitivities near the
// barrier stay well-defined.
func Batch[T any](
	ops aad.Ops[T],
	S0 T,
	volGrid *interp.Grid2D[T],
	maturity, strike, barrier, epsilon T,
	firstPath, lastPath, Nt int,
	generator rng.Generator,
) T {
	matValue := ops.Value(maturity)
	barrierValue := ops.Value(barrier)
	epsilonValue := ops.Value(epsilon)
	strikeValue := ops.Value(strike)

	dt := ops.Scale(maturity, 1.0/float64(Nt))
	dtValue := matValue / float64(Nt)
	sdt := ops.Sqrt(dt)

	gen := generator
	gen.SkipTo(firstPath)
	z := make([]float64, Nt)

	sum := ops.Const(0)

	for path := firstPath; path < lastPath; path++ {
		gen.NextG(z)

		spot := S0
		spotValue := ops.Value(S0)
		timeValue := 0.0
		notionalAlive := ops.Const(1)
		dead := false

		for step := 0; step < Nt; step++ {
			vol := interp.Eval[T](ops, volGrid, spot, spotValue, timeValue)
			volSq := ops.Mul(vol, vol)
			drift := ops.Scale(ops.Mul(volSq, dt), -0.5)
			diffusion := ops.Scale(ops.Mul(vol, sdt), z[step])
			spot = ops.Mul(spot, ops.Exp(ops.Add(drift, diffusion)))
			spotValue = ops.Value(spot)
			timeValue += dtValue

			switch {
			case spotValue > barrierValue+epsilonValue:
				notionalAlive = ops.Const(0)
				dead = true
			case spotValue < barrierValue-epsilonValue:
				// definitely alive; no adjustment.
			default:
				numerator := ops.Sub(ops.Add(spot, epsilon), barrier)
				ramp := ops.Div(numerator, ops.Scale(epsilon, 2))
				factor := ops.Sub(ops.Const(1), ramp)
				notionalAlive = ops.Mul(notionalAlive, factor)
			}
			if dead {
				break
			}
		}

		if spotValue > strikeValue {
			payoff := ops.Mul(notionalAlive, ops.Sub(spot, strike))
			sum = ops.Add(sum, payoff)
		}
	}

	return ops.Scale(sum, 1.0/float64(lastPath-firstPath))
}
