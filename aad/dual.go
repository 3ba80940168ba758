package aad

import "math"

// DualScalar is a forward value paired with the index of the tape node
// that produced it. Every arithmetic method appends exactly one node to
// the scalar's tape (Neg appends two: a zero source node and the
// subtraction) and returns a new DualScalar referencing it; this is
// Go's stand-in for the source's operator overloading, since methods are
// the idiomatic way to get "a.Add(b)" to read like "a + b" without
// operator overloading.
type DualScalar struct {
	Value float64
	idx   int
	tape  *Tape
}

// Idx is this value's position on its tape.
func (d DualScalar) Idx() int { return d.idx }

// Tape is the tape this value was recorded on.
func (d DualScalar) Tape() *Tape { return d.tape }

// NewConstant lifts a plain float64 into a source node on tape and
// returns the DualScalar wrapping it. Every differentiable input to the
// pricing kernel — S0, the vol grid, product terms — is seeded this way,
// once per batch.
func NewConstant(tape *Tape, value float64) DualScalar {
	return DualScalar{Value: value, idx: tape.source(), tape: tape}
}

// Add implements a + b.
func (d DualScalar) Add(e DualScalar) DualScalar {
	return DualScalar{Value: d.Value + e.Value, idx: d.tape.binary(d.idx, e.idx, 1, 1), tape: d.tape}
}

// Sub implements a - b.
func (d DualScalar) Sub(e DualScalar) DualScalar {
	return DualScalar{Value: d.Value - e.Value, idx: d.tape.binary(d.idx, e.idx, 1, -1), tape: d.tape}
}

// Mul implements a * b.
func (d DualScalar) Mul(e DualScalar) DualScalar {
	return DualScalar{Value: d.Value * e.Value, idx: d.tape.binary(d.idx, e.idx, e.Value, d.Value), tape: d.tape}
}

// Div implements a / b.
func (d DualScalar) Div(e DualScalar) DualScalar {
	v := d.Value / e.Value
	return DualScalar{Value: v, idx: d.tape.binary(d.idx, e.idx, 1.0/e.Value, -d.Value/(e.Value*e.Value)), tape: d.tape}
}

// Neg implements unary minus as 0 - a.
func (d DualScalar) Neg() DualScalar {
	return NewConstant(d.tape, 0).Sub(d)
}

// Scale multiplies d by a raw, untaped float64 constant c, recording a
// single arity-1 node with derivative c rather than lifting c into its
// own source node first. This is how non-differentiable quantities —
// chiefly Gaussian path increments — get multiplied into the tape
// without growing it by one extra source node per draw.
func (d DualScalar) Scale(c float64) DualScalar {
	return DualScalar{Value: d.Value * c, idx: d.tape.unary(d.idx, c), tape: d.tape}
}

// Exp implements exp(a).
func (d DualScalar) Exp() DualScalar {
	v := math.Exp(d.Value)
	return DualScalar{Value: v, idx: d.tape.unary(d.idx, v), tape: d.tape}
}

// Log implements log(a).
func (d DualScalar) Log() DualScalar {
	return DualScalar{Value: math.Log(d.Value), idx: d.tape.unary(d.idx, 1.0/d.Value), tape: d.tape}
}

// Sqrt implements sqrt(a).
func (d DualScalar) Sqrt() DualScalar {
	v := math.Sqrt(d.Value)
	return DualScalar{Value: v, idx: d.tape.unary(d.idx, 0.5/v), tape: d.tape}
}

// Phi implements the standard normal density, φ(a).
func (d DualScalar) Phi() DualScalar {
	v := normalDens(d.Value)
	return DualScalar{Value: v, idx: d.tape.unary(d.idx, -v*d.Value), tape: d.tape}
}

// CDF implements the standard normal cumulative distribution, Φ(a).
func (d DualScalar) CDF() DualScalar {
	return DualScalar{Value: normalCdf(d.Value), idx: d.tape.unary(d.idx, normalDens(d.Value)), tape: d.tape}
}

// Float returns the forward value, for control-flow decisions (barrier
// branching, comparisons) that must never themselves be recorded.
func (d DualScalar) Float() float64 { return d.Value }
