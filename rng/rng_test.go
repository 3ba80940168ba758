package rng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPseudoSkipToIsRepositionable(t *testing.T) {
	p := NewPseudo(42)
	p.Init(4)

	buf1 := make([]float64, 4)
	p.SkipTo(10)
	p.NextG(buf1)

	buf2 := make([]float64, 4)
	p.SkipTo(10)
	p.NextG(buf2)

	require.Equal(t, buf1, buf2)
}

func TestPseudoDistinctPathsDiffer(t *testing.T) {
	p := NewPseudo(7)
	p.Init(4)

	buf1 := make([]float64, 4)
	p.SkipTo(0)
	p.NextG(buf1)

	buf2 := make([]float64, 4)
	p.SkipTo(1)
	p.NextG(buf2)

	require.NotEqual(t, buf1, buf2)
}

func TestPseudoCloneIsIndependent(t *testing.T) {
	p := NewPseudo(99)
	p.Init(3)
	p.SkipTo(5)

	clone := p.Clone()
	bufOriginal := make([]float64, 3)
	bufClone := make([]float64, 3)

	p.NextG(bufOriginal)
	clone.NextG(bufClone)

	require.Equal(t, bufOriginal, bufClone)

	bufOriginal2 := make([]float64, 3)
	bufClone2 := make([]float64, 3)
	p.NextG(bufOriginal2)
	clone.NextG(bufClone2)
	require.Equal(t, bufOriginal2, bufClone2)
}

func TestQuasiSkipToIsRepositionable(t *testing.T) {
	q := NewQuasi()
	q.Init(4)

	buf1 := make([]float64, 4)
	q.SkipTo(20)
	q.NextG(buf1)

	buf2 := make([]float64, 4)
	q.SkipTo(20)
	q.NextG(buf2)

	require.Equal(t, buf1, buf2)
}

func TestQuasiSequentialMatchesSkipTo(t *testing.T) {
	sequential := NewQuasi()
	sequential.Init(2)
	buf := make([]float64, 2)
	for i := 0; i < 5; i++ {
		sequential.NextG(buf)
	}

	direct := NewQuasi()
	direct.Init(2)
	direct.SkipTo(4)
	directBuf := make([]float64, 2)
	direct.NextG(directBuf)

	require.InDeltaSlice(t, buf, directBuf, 1e-9)
}

func TestRadicalInverseStaysInUnitInterval(t *testing.T) {
	for n := 1; n < 200; n++ {
		v := radicalInverse(n, 2)
		require.True(t, v > 0 && v < 1)
	}
}
