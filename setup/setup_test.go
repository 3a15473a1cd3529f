package setup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/params"
	"github.com/ethpandaops/go-das-kzg/setup"
)

func TestNewInsecureTestSetupShapes(t *testing.T) {
	s, err := setup.NewInsecureTestSetup(bls.FrFromUint64(999))
	require.NoError(t, err)
	require.Len(t, s.LagrangeG1(), params.FieldElementsPerBlob)
	require.Len(t, s.MonomialG2(), params.NumG2Points)
	require.NotNil(t, s.ProofContext())
}

func TestG2AccessorsMatchMonomialArray(t *testing.T) {
	s, err := setup.NewInsecureTestSetup(bls.FrFromUint64(999))
	require.NoError(t, err)
	require.True(t, s.G2Generator().Equal(ptrG2(s.MonomialG2()[0])))
	require.True(t, s.G2Tau().Equal(ptrG2(s.MonomialG2()[1])))
	require.True(t, s.G2TauCellLen().Equal(ptrG2(s.MonomialG2()[params.FieldElementsPerCell])))
}

func TestBlobScalarsRoundTrip(t *testing.T) {
	scalars := make([]bls.Fr, params.FieldElementsPerBlob)
	for i := range scalars {
		scalars[i] = bls.FrFromUint64(uint64(i))
	}
	blob, err := setup.ScalarsToBlob(scalars)
	require.NoError(t, err)
	require.Len(t, blob, params.BytesPerBlob)

	back, err := setup.BlobToScalars(blob)
	require.NoError(t, err)
	for i := range scalars {
		require.True(t, scalars[i].Equal(&back[i]))
	}
}

func TestBlobToScalarsRejectsWrongLength(t *testing.T) {
	_, err := setup.BlobToScalars(make([]byte, 10))
	require.Error(t, err)
}

func TestCellScalarsRoundTrip(t *testing.T) {
	scalars := make([]bls.Fr, params.FieldElementsPerCell)
	for i := range scalars {
		scalars[i] = bls.FrFromUint64(uint64(i * 2))
	}
	cell, err := setup.ScalarsToCell(scalars)
	require.NoError(t, err)
	require.Len(t, cell, params.BytesPerCell)

	back, err := setup.CellToScalars(cell)
	require.NoError(t, err)
	for i := range scalars {
		require.True(t, scalars[i].Equal(&back[i]))
	}
}

func TestCommitmentAndProofCodecRoundTrip(t *testing.T) {
	gen := bls.G1Generator()
	scalar := bls.FrFromUint64(55)
	p := bls.G1ScalarMul(&gen, &scalar)

	cb := setup.CommitmentToBytes(&p)
	back, err := setup.CommitmentFromBytes(cb[:])
	require.NoError(t, err)
	require.True(t, p.Equal(&back))

	pb := setup.ProofToBytes(&p)
	backProof, err := setup.ProofFromBytes(pb[:])
	require.NoError(t, err)
	require.True(t, p.Equal(&backProof))
}

func TestProofFromBytesRejectsBadLength(t *testing.T) {
	_, err := setup.ProofFromBytes([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestTranscriptChallengeIsDeterministic(t *testing.T) {
	g1 := bls.G1Generator()

	t1 := setup.NewTranscript("test-domain")
	t1.WriteUint64(7)
	t1.WriteG1(&g1)
	c1 := t1.Challenge()

	t2 := setup.NewTranscript("test-domain")
	t2.WriteUint64(7)
	t2.WriteG1(&g1)
	c2 := t2.Challenge()

	require.True(t, c1.Equal(&c2))
}

func TestTranscriptChallengeDiffersOnDifferentInput(t *testing.T) {
	t1 := setup.NewTranscript("test-domain")
	t1.WriteUint64(1)
	c1 := t1.Challenge()

	t2 := setup.NewTranscript("test-domain")
	t2.WriteUint64(2)
	c2 := t2.Challenge()

	require.False(t, c1.Equal(&c2))
}

func TestComputePowers(t *testing.T) {
	r := bls.FrFromUint64(3)
	powers := setup.ComputePowers(r, 4)
	require.Len(t, powers, 4)

	one := bls.FrOne()
	require.True(t, powers[0].Equal(&one))
	require.True(t, powers[1].Equal(&r))

	want2 := bls.FrFromUint64(9)
	require.True(t, powers[2].Equal(&want2))
	want3 := bls.FrFromUint64(27)
	require.True(t, powers[3].Equal(&want3))
}

func TestComputeBlobEvaluationChallengeDeterministic(t *testing.T) {
	blob := make([]bls.Fr, params.FieldElementsPerBlob)
	for i := range blob {
		blob[i] = bls.FrFromUint64(uint64(i))
	}
	commitment := bls.G1Generator()

	z1 := setup.ComputeBlobEvaluationChallenge(blob, commitment)
	z2 := setup.ComputeBlobEvaluationChallenge(blob, commitment)
	require.True(t, z1.Equal(&z2))
}

func ptrG2(v bls.G2Point) *bls.G2Point { return &v }
