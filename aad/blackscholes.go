package aad

// BlackScholes prices a European call with the standard closed-form
// formula, written generically over Ops[T] so the same function serves
// as both a plain float64 calculation and, instantiated with DualOps, a
// smoke test for the adjoint engine against an independently known set
// of partial derivatives.
func BlackScholes[T any](ops Ops[T], spot, rate, yield, vol, strike, mat T) T {
	negRateMat := ops.Scale(ops.Mul(rate, mat), -1)
	df := ops.Exp(negRateMat)
	fwd := ops.Mul(spot, ops.Exp(ops.Mul(ops.Sub(rate, yield), mat)))
	std := ops.Mul(vol, ops.Sqrt(mat))

	d := ops.Div(ops.Log(ops.Div(fwd, strike)), std)
	halfStd := ops.Scale(std, 0.5)
	d1 := ops.Add(d, halfStd)
	d2 := ops.Sub(d, halfStd)
	p1 := ops.CDF(d1)
	p2 := ops.CDF(d2)

	return ops.Mul(df, ops.Sub(ops.Mul(fwd, p1), ops.Mul(strike, p2)))
}
