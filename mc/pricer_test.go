package mc

import (
	"testing"

	"github.com/banachtech/dupire-aad/rng"
	"github.com/stretchr/testify/require"
)

func scenarioParams(t *testing.T, parallel bool) *Params {
	spots := []float64{50, 75, 100, 125, 150}
	times := []float64{0.25, 0.5, 1, 2}
	vols := make([]float64, len(spots)*len(times))
	for i := range vols {
		vols[i] = 0.2
	}
	surface, err := NewVolSurface(spots, times, vols)
	require.NoError(t, err)

	return &Params{
		S0:       100,
		Surface:  surface,
		Maturity: 2,
		Strike:   110,
		Barrier:  150,
		Epsilon:  1.0,
		Np:       20000,
		Nb:       1024,
		Nt:       48,
		Parallel: parallel,
		RNG:      rng.NewPseudo(2024),
	}
}

// slopedScenarioParams builds a vol surface that genuinely varies across
// the spots axis (unlike scenarioParams' flat 0.2 everywhere), so that
// tests exercising the interpolator's spot-direction weight actually
// have a nonzero ∂vol/∂spot to catch.
func slopedScenarioParams(t *testing.T, parallel bool) *Params {
	spots := []float64{50, 75, 100, 125, 150}
	times := []float64{0.25, 0.5, 1, 2}
	vols := make([]float64, len(spots)*len(times))
	for i, s := range spots {
		rowVol := 0.35 - 0.2*(s-spots[0])/(spots[len(spots)-1]-spots[0])
		for j := range times {
			vols[i*len(times)+j] = rowVol
		}
	}
	surface, err := NewVolSurface(spots, times, vols)
	require.NoError(t, err)

	return &Params{
		S0:       100,
		Surface:  surface,
		Maturity: 2,
		Strike:   110,
		Barrier:  150,
		Epsilon:  1.0,
		Np:       20000,
		Nb:       1024,
		Nt:       48,
		Parallel: parallel,
		RNG:      rng.NewPseudo(2024),
	}
}

func TestPriceRejectsInvalidParams(t *testing.T) {
	p := scenarioParams(t, false)
	p.Np = 0
	_, err := Price(p)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewVolSurfaceRejectsShapeMismatch(t *testing.T) {
	_, err := NewVolSurface([]float64{1, 2}, []float64{1}, []float64{0.2})
	require.Error(t, err)
}

func TestPriceSerialEqualsParallel(t *testing.T) {
	serial := scenarioParams(t, false)
	parallel := scenarioParams(t, true)

	priceSerial, err := Price(serial)
	require.NoError(t, err)
	priceParallel, err := Price(parallel)
	require.NoError(t, err)

	require.InDelta(t, priceSerial, priceParallel, 1e-9)
}

func TestPriceIsDeterministicAcrossBatchSizes(t *testing.T) {
	p1 := scenarioParams(t, false)
	p1.Nb = 256
	p2 := scenarioParams(t, false)
	p2.Nb = 4096

	price1, err := Price(p1)
	require.NoError(t, err)
	price2, err := Price(p2)
	require.NoError(t, err)

	require.InDelta(t, price1, price2, 1e-9)
}

func TestPriceIsNonNegativeForCallLikePayoff(t *testing.T) {
	p := scenarioParams(t, false)
	price, err := Price(p)
	require.NoError(t, err)
	require.GreaterOrEqual(t, price, 0.0)
}
