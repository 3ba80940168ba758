package aad

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBlackScholesAdjointsMatchKnownScenario reproduces the concrete
// end-to-end scenario: spot=100, rate=0.02, yield=0.05, vol=0.2,
// strike=110, mat=2. Both the forward value and every first-order
// partial were independently verified against this exact input set.
func TestBlackScholesAdjointsMatchKnownScenario(t *testing.T) {
	tape := NewTape(0)
	ops := DualOps{Tape: tape}

	spot := NewConstant(tape, 100)
	rate := NewConstant(tape, 0.02)
	yield := NewConstant(tape, 0.05)
	vol := NewConstant(tape, 0.2)
	strike := NewConstant(tape, 110)
	mat := NewConstant(tape, 2)

	result := BlackScholes[DualScalar](ops, spot, rate, yield, vol, strike, mat)
	require.InDelta(t, 5.03705, result.Value, 5e-3)

	adjoints := tape.Adjoints(result.Idx())
	require.InDelta(t, 0.309, Adjoint(adjoints, spot), 5e-3)
	require.InDelta(t, 51.772, Adjoint(adjoints, rate), 5e-3)
	require.InDelta(t, -61.846, Adjoint(adjoints, yield), 5e-3)
	require.InDelta(t, 46.980, Adjoint(adjoints, vol), 5e-3)
	require.InDelta(t, -0.235, Adjoint(adjoints, strike), 5e-3)
	require.InDelta(t, 1.321, Adjoint(adjoints, mat), 5e-3)
}

func TestBlackScholesForwardMatchesFloat64(t *testing.T) {
	value := BlackScholes[float64](Float64Ops{}, 100, 0.02, 0.05, 0.2, 110, 2)
	require.InDelta(t, 5.03705, value, 5e-3)
}
