package bls_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethpandaops/go-das-kzg/bls"
)

func TestFrCanonicalBytesRoundTrip(t *testing.T) {
	v := bls.FrFromUint64(12345)
	b := bls.FrToBytes(&v)
	got, err := bls.FrFromCanonicalBytes(b[:])
	require.NoError(t, err)
	require.True(t, got.Equal(&v))
}

func TestFrFromCanonicalBytesRejectsModulus(t *testing.T) {
	// r itself, big-endian, must be rejected as non-canonical.
	modulus := [32]byte{0x73, 0xed, 0xa7, 0x53, 0x29, 0x9d, 0x7d, 0x48,
		0x33, 0x39, 0xd8, 0x08, 0x09, 0xa1, 0xd8, 0x05,
		0x53, 0xbd, 0xa4, 0x02, 0xff, 0xfe, 0x5b, 0xfe,
		0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x01}
	_, err := bls.FrFromCanonicalBytes(modulus[:])
	require.Error(t, err)
}

func TestFrFromCanonicalBytesRejectsWrongLength(t *testing.T) {
	_, err := bls.FrFromCanonicalBytes([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestFrBatchInvert(t *testing.T) {
	vals := []bls.Fr{bls.FrFromUint64(2), bls.FrFromUint64(3), bls.FrFromUint64(5)}
	want := make([]bls.Fr, len(vals))
	for i, v := range vals {
		want[i].Inverse(&v)
	}
	bls.FrBatchInvert(vals)
	for i := range vals {
		require.True(t, vals[i].Equal(&want[i]))
	}
}

func TestFrBatchInvertLeavesZeroAlone(t *testing.T) {
	vals := []bls.Fr{bls.FrZero(), bls.FrFromUint64(7)}
	bls.FrBatchInvert(vals)
	require.True(t, vals[0].IsZero())
}

func TestG1CompressedRoundTrip(t *testing.T) {
	gen := bls.G1Generator()
	scalar := bls.FrFromUint64(42)
	p := bls.G1ScalarMul(&gen, &scalar)
	b := bls.G1ToCompressed(&p)
	got, err := bls.G1FromCompressed(b[:])
	require.NoError(t, err)
	require.True(t, p.Equal(&got))
}

func TestG2CompressedRoundTrip(t *testing.T) {
	gen := bls.G2Generator()
	scalar := bls.FrFromUint64(42)
	p := bls.G2ScalarMul(&gen, &scalar)
	b := bls.G2ToCompressed(&p)
	got, err := bls.G2FromCompressed(b[:])
	require.NoError(t, err)
	require.True(t, p.Equal(&got))
}

func TestG1AddSubInverses(t *testing.T) {
	gen := bls.G1Generator()
	a := bls.G1ScalarMul(&gen, ptr(bls.FrFromUint64(7)))
	b := bls.G1ScalarMul(&gen, ptr(bls.FrFromUint64(11)))
	sum := bls.G1Add(&a, &b)
	back := bls.G1Sub(&sum, &b)
	require.True(t, back.Equal(&a))
}

func TestG1LinCombMatchesScalarMulAdd(t *testing.T) {
	gen := bls.G1Generator()
	p1 := bls.G1ScalarMul(&gen, ptr(bls.FrFromUint64(3)))
	p2 := bls.G1ScalarMul(&gen, ptr(bls.FrFromUint64(5)))
	s1 := bls.FrFromUint64(2)
	s2 := bls.FrFromUint64(9)

	got, err := bls.G1LinComb([]bls.G1Point{p1, p2}, []bls.Fr{s1, s2})
	require.NoError(t, err)

	t1 := bls.G1ScalarMul(&p1, &s1)
	t2 := bls.G1ScalarMul(&p2, &s2)
	want := bls.G1Add(&t1, &t2)
	require.True(t, got.Equal(&want))
}

func TestG1LinCombEmpty(t *testing.T) {
	got, err := bls.G1LinComb(nil, nil)
	require.NoError(t, err)
	identity := bls.G1Identity()
	require.True(t, got.Equal(&identity))
}

func TestG1LinCombLengthMismatch(t *testing.T) {
	gen := bls.G1Generator()
	_, err := bls.G1LinComb([]bls.G1Point{gen}, nil)
	require.Error(t, err)
}

func TestMultiPairingCheckBilinearity(t *testing.T) {
	g1 := bls.G1Generator()
	g2 := bls.G2Generator()
	a := bls.FrFromUint64(6)
	b := bls.FrFromUint64(7)

	aG1 := bls.G1ScalarMul(&g1, &a)
	bG2 := bls.G2ScalarMul(&g2, &b)
	abG1 := bls.G1ScalarMul(&g1, ptr(mulFr(a, b)))

	identity := bls.G1Identity()
	negABG1 := bls.G1Sub(&identity, &abG1)

	// e(a*G1, b*G2) * e(-(ab)*G1, G2) == 1
	ok, err := bls.MultiPairingCheck([]bls.G1Point{aG1, negABG1}, []bls.G2Point{bG2, g2})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMultiPairingCheckRejectsMismatch(t *testing.T) {
	g1 := bls.G1Generator()
	g2 := bls.G2Generator()
	aG1 := bls.G1ScalarMul(&g1, ptr(bls.FrFromUint64(6)))
	bG1 := bls.G1ScalarMul(&g1, ptr(bls.FrFromUint64(7)))
	identity := bls.G1Identity()
	negG1 := bls.G1Sub(&identity, &bG1)
	ok, err := bls.MultiPairingCheck([]bls.G1Point{aG1, negG1}, []bls.G2Point{g2, g2})
	require.NoError(t, err)
	require.False(t, ok)
}

func mulFr(a, b bls.Fr) bls.Fr {
	var r bls.Fr
	r.Mul(&a, &b)
	return r
}

func ptr(v bls.Fr) *bls.Fr { return &v }
