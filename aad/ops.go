package aad

import "math"

// Ops is the numeric trait the pricing kernel is written against. Go has
// no operator overloading, so instead of requiring T itself to expose
// Add/Mul/etc. methods, the kernel takes an Ops[T] dictionary alongside
// every value of type T. The same kernel body, instantiated once with
// Float64Ops and once with DualOps, is both the pricer and the risk
// engine — there is exactly one implementation of the Dupire barrier
// algorithm in this module.
type Ops[T any] interface {
	Const(v float64) T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Exp(a T) T
	Log(a T) T
	Sqrt(a T) T
	Phi(a T) T
	CDF(a T) T
	// Scale multiplies a by a raw, non-differentiable float64 constant c.
	Scale(a T, c float64) T
	Value(a T) float64
}

// Float64Ops implements Ops[float64] directly on top of math and this
// package's normal density/CDF helpers. There is no tape to grow, so
// every method is a plain arithmetic expression.
type Float64Ops struct{}

func (Float64Ops) Const(v float64) float64            { return v }
func (Float64Ops) Add(a, b float64) float64           { return a + b }
func (Float64Ops) Sub(a, b float64) float64           { return a - b }
func (Float64Ops) Mul(a, b float64) float64           { return a * b }
func (Float64Ops) Div(a, b float64) float64           { return a / b }
func (Float64Ops) Exp(a float64) float64              { return math.Exp(a) }
func (Float64Ops) Log(a float64) float64              { return math.Log(a) }
func (Float64Ops) Sqrt(a float64) float64             { return math.Sqrt(a) }
func (Float64Ops) Phi(a float64) float64              { return normalDens(a) }
func (Float64Ops) CDF(a float64) float64              { return normalCdf(a) }
func (Float64Ops) Scale(a float64, c float64) float64 { return a * c }
func (Float64Ops) Value(a float64) float64            { return a }

// DualOps implements Ops[DualScalar] by delegating to DualScalar's
// methods, recording every operation onto Tape. Const seeds a fresh
// source node per call — callers that need the same constant reused
// across many operations should seed it once and reuse the resulting
// DualScalar, not call Const repeatedly.
type DualOps struct {
	Tape *Tape
}

func (o DualOps) Const(v float64) DualScalar            { return NewConstant(o.Tape, v) }
func (o DualOps) Add(a, b DualScalar) DualScalar        { return a.Add(b) }
func (o DualOps) Sub(a, b DualScalar) DualScalar        { return a.Sub(b) }
func (o DualOps) Mul(a, b DualScalar) DualScalar        { return a.Mul(b) }
func (o DualOps) Div(a, b DualScalar) DualScalar        { return a.Div(b) }
func (o DualOps) Exp(a DualScalar) DualScalar           { return a.Exp() }
func (o DualOps) Log(a DualScalar) DualScalar           { return a.Log() }
func (o DualOps) Sqrt(a DualScalar) DualScalar          { return a.Sqrt() }
func (o DualOps) Phi(a DualScalar) DualScalar           { return a.Phi() }
func (o DualOps) CDF(a DualScalar) DualScalar           { return a.CDF() }
func (o DualOps) Scale(a DualScalar, c float64) DualScalar { return a.Scale(c) }
func (o DualOps) Value(a DualScalar) float64            { return a.Value }
