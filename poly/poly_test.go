package poly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/poly"
)

func seqCoeffs(n int) []bls.Fr {
	out := make([]bls.Fr, n)
	for i := range out {
		out[i] = bls.FrFromUint64(uint64(i + 1))
	}
	return out
}

func TestFFTInverseFFTRoundTrip(t *testing.T) {
	d, err := poly.NewDomain(16)
	require.NoError(t, err)

	coeffs := seqCoeffs(16)
	evals, err := d.FFT(coeffs)
	require.NoError(t, err)

	back, err := d.InverseFFT(evals)
	require.NoError(t, err)

	for i := range coeffs {
		require.True(t, coeffs[i].Equal(&back[i]), "index %d", i)
	}
}

func TestNewDomainRejectsNonPowerOfTwo(t *testing.T) {
	_, err := poly.NewDomain(17)
	require.Error(t, err)
}

func TestFFTLengthMismatch(t *testing.T) {
	d, err := poly.NewDomain(8)
	require.NoError(t, err)
	_, err = d.FFT(seqCoeffs(4))
	require.Error(t, err)
}

func TestBarycentricEvalMatchesDirectEvalAtDomainPoint(t *testing.T) {
	d, err := poly.NewDomain(8)
	require.NoError(t, err)
	coeffs := seqCoeffs(8)
	evals, err := d.FFT(coeffs)
	require.NoError(t, err)

	// Evaluating exactly at a domain point should just return the stored value.
	got, err := d.BarycentricEval(evals, d.Generator())
	require.NoError(t, err)
	require.True(t, got.Equal(&evals[1]))
}

func TestBarycentricEvalMatchesFFTAtNonDomainPoint(t *testing.T) {
	d, err := poly.NewDomain(8)
	require.NoError(t, err)
	coeffs := seqCoeffs(8)
	evals, err := d.FFT(coeffs)
	require.NoError(t, err)

	z := bls.FrFromUint64(999)
	got, err := d.BarycentricEval(evals, z)
	require.NoError(t, err)

	want := directEval(coeffs, z)
	require.True(t, got.Equal(&want))
}

func directEval(coeffs []bls.Fr, z bls.Fr) bls.Fr {
	var result bls.Fr
	power := bls.FrOne()
	for _, c := range coeffs {
		var term bls.Fr
		term.Mul(&c, &power)
		result.Add(&result, &term)
		power.Mul(&power, &z)
	}
	return result
}

func TestCosetFFTRoundTrip(t *testing.T) {
	d, err := poly.NewDomain(8)
	require.NoError(t, err)
	coeffs := seqCoeffs(8)

	evals, err := d.CosetFFT(coeffs, poly.CosetGenerator)
	require.NoError(t, err)
	back, err := d.CosetInverseFFT(evals, poly.CosetGenerator)
	require.NoError(t, err)

	for i := range coeffs {
		require.True(t, coeffs[i].Equal(&back[i]), "index %d", i)
	}
}

func TestMulPointwiseDivPointwiseInverses(t *testing.T) {
	a := seqCoeffs(4)
	b := []bls.Fr{bls.FrFromUint64(2), bls.FrFromUint64(3), bls.FrFromUint64(4), bls.FrFromUint64(5)}

	prod, err := poly.MulPointwise(a, b)
	require.NoError(t, err)
	back, err := poly.DivPointwise(prod, b)
	require.NoError(t, err)

	for i := range a {
		require.True(t, a[i].Equal(&back[i]))
	}
}

func TestDivPointwiseZeroDenominator(t *testing.T) {
	a := seqCoeffs(2)
	b := []bls.Fr{bls.FrZero(), bls.FrOne()}
	_, err := poly.DivPointwise(a, b)
	require.Error(t, err)
}

func TestBitReverseIndexMatchesBitReverseOnSlice(t *testing.T) {
	const size = 8
	vals := seqCoeffs(size)
	reversed := make([]bls.Fr, size)
	copy(reversed, vals)
	poly.BitReverse(reversed)

	for i := 0; i < size; i++ {
		j := poly.BitReverseIndex(uint64(i), size)
		require.True(t, reversed[i].Equal(&vals[j]), "index %d", i)
	}
}

func TestBitReverseInvolution(t *testing.T) {
	vals := seqCoeffs(8)
	orig := make([]bls.Fr, len(vals))
	copy(orig, vals)
	poly.BitReverse(vals)
	poly.BitReverse(vals)
	for i := range vals {
		require.True(t, vals[i].Equal(&orig[i]))
	}
}

func TestFFTG1ConsistentWithScalarMulOfFFT(t *testing.T) {
	d, err := poly.NewDomain(8)
	require.NoError(t, err)
	coeffs := seqCoeffs(8)
	gen := bls.G1Generator()

	g1Coeffs := make([]bls.G1Point, len(coeffs))
	for i, c := range coeffs {
		g1Coeffs[i] = bls.G1ScalarMul(&gen, &c)
	}

	g1Evals, err := d.FFTG1(g1Coeffs)
	require.NoError(t, err)

	frEvals, err := d.FFT(coeffs)
	require.NoError(t, err)

	for i := range frEvals {
		want := bls.G1ScalarMul(&gen, &frEvals[i])
		require.True(t, want.Equal(&g1Evals[i]), "index %d", i)
	}
}

func TestFFTG1InverseRoundTrip(t *testing.T) {
	d, err := poly.NewDomain(8)
	require.NoError(t, err)
	gen := bls.G1Generator()
	coeffs := seqCoeffs(8)
	g1Coeffs := make([]bls.G1Point, len(coeffs))
	for i, c := range coeffs {
		g1Coeffs[i] = bls.G1ScalarMul(&gen, &c)
	}

	evals, err := d.FFTG1(g1Coeffs)
	require.NoError(t, err)
	back, err := d.InverseFFTG1(evals)
	require.NoError(t, err)

	for i := range g1Coeffs {
		require.True(t, g1Coeffs[i].Equal(&back[i]), "index %d", i)
	}
}

func TestPow(t *testing.T) {
	base := bls.FrFromUint64(3)
	got := poly.Pow(base, 5)
	want := bls.FrFromUint64(243)
	require.True(t, got.Equal(&want))
}
