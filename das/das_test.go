package das_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/das"
	"github.com/ethpandaops/go-das-kzg/params"
	"github.com/ethpandaops/go-das-kzg/setup"
)

func testSetup(t *testing.T) *setup.Setup {
	t.Helper()
	s, err := setup.NewInsecureTestSetup(bls.FrFromUint64(424242))
	require.NoError(t, err)
	return s
}

func randomBlob(t *testing.T, seed uint64) []byte {
	t.Helper()
	scalars := make([]bls.Fr, params.FieldElementsPerBlob)
	for i := range scalars {
		scalars[i] = bls.FrFromUint64(seed + uint64(i)*17 + 3)
	}
	blob, err := setup.ScalarsToBlob(scalars)
	require.NoError(t, err)
	return blob
}

func TestBlobToKZGCommitmentDeterministic(t *testing.T) {
	s := testSetup(t)
	ctx, err := das.NewContext(s, true)
	require.NoError(t, err)

	blob := randomBlob(t, 1)
	c1, err := ctx.BlobToKZGCommitment(blob)
	require.NoError(t, err)
	c2, err := ctx.BlobToKZGCommitment(blob)
	require.NoError(t, err)
	require.Equal(t, c1, c2)
}

func TestComputeAndVerifyKZGProof(t *testing.T) {
	s := testSetup(t)
	ctx, err := das.NewContext(s, true)
	require.NoError(t, err)

	blob := randomBlob(t, 2)
	commitment, err := ctx.BlobToKZGCommitment(blob)
	require.NoError(t, err)

	var z [params.BytesPerFieldElement]byte
	z[31] = 7 // small, guaranteed canonical scalar, outside the domain

	proof, y, err := ctx.ComputeKZGProof(blob, z)
	require.NoError(t, err)

	ok, err := ctx.VerifyKZGProof(commitment, z, y, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyKZGProofRejectsWrongY(t *testing.T) {
	s := testSetup(t)
	ctx, err := das.NewContext(s, true)
	require.NoError(t, err)

	blob := randomBlob(t, 3)
	commitment, err := ctx.BlobToKZGCommitment(blob)
	require.NoError(t, err)

	var z [params.BytesPerFieldElement]byte
	z[31] = 11

	proof, y, err := ctx.ComputeKZGProof(blob, z)
	require.NoError(t, err)

	yFr, err := bls.FrFromCanonicalBytes(y[:])
	require.NoError(t, err)
	yFr.Add(&yFr, ptrOneFr())
	wrongY := bls.FrToBytes(&yFr)

	ok, err := ctx.VerifyKZGProof(commitment, z, wrongY, proof)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestComputeAndVerifyBlobKZGProof(t *testing.T) {
	s := testSetup(t)
	ctx, err := das.NewContext(s, true)
	require.NoError(t, err)

	blob := randomBlob(t, 4)
	commitment, err := ctx.BlobToKZGCommitment(blob)
	require.NoError(t, err)

	proof, err := ctx.ComputeBlobKZGProof(blob, commitment)
	require.NoError(t, err)

	ok, err := ctx.VerifyBlobKZGProof(blob, commitment, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyBlobKZGProofBatch(t *testing.T) {
	s := testSetup(t)
	ctx, err := das.NewContext(s, true)
	require.NoError(t, err)

	const n = 3
	blobs := make([][]byte, n)
	commitments := make([][params.BytesPerCommitment]byte, n)
	proofs := make([][params.BytesPerProof]byte, n)

	for i := 0; i < n; i++ {
		blobs[i] = randomBlob(t, uint64(100*i+1))
		commitments[i], err = ctx.BlobToKZGCommitment(blobs[i])
		require.NoError(t, err)
		proofs[i], err = ctx.ComputeBlobKZGProof(blobs[i], commitments[i])
		require.NoError(t, err)
	}

	ok, err := ctx.VerifyBlobKZGProofBatch(blobs, commitments, proofs)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyBlobKZGProofBatchRejectsTamperedProof(t *testing.T) {
	s := testSetup(t)
	ctx, err := das.NewContext(s, true)
	require.NoError(t, err)

	blob := randomBlob(t, 5)
	commitment, err := ctx.BlobToKZGCommitment(blob)
	require.NoError(t, err)
	proof, err := ctx.ComputeBlobKZGProof(blob, commitment)
	require.NoError(t, err)

	proof[0] ^= 0xFF

	ok, err := ctx.VerifyBlobKZGProofBatch([][]byte{blob}, [][params.BytesPerCommitment]byte{commitment}, [][params.BytesPerProof]byte{proof})
	if err != nil {
		// A flipped high byte can also just fail to decode as a valid
		// compressed point; either outcome demonstrates rejection.
		return
	}
	require.False(t, ok)
}

func TestVerifyBlobKZGProofBatchEmpty(t *testing.T) {
	s := testSetup(t)
	ctx, err := das.NewContext(s, true)
	require.NoError(t, err)

	ok, err := ctx.VerifyBlobKZGProofBatch(nil, nil, nil)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestComputeCellsAndKZGProofsThenVerifyBatch(t *testing.T) {
	s := testSetup(t)
	ctx, err := das.NewContext(s, true)
	require.NoError(t, err)

	blob := randomBlob(t, 6)
	commitment, err := ctx.BlobToKZGCommitment(blob)
	require.NoError(t, err)

	cells, proofs, err := ctx.ComputeCellsAndKZGProofs(blob)
	require.NoError(t, err)
	require.Len(t, cells, params.CellsPerExtBlob)
	require.Len(t, proofs, params.CellsPerExtBlob)

	commitments := make([][]byte, params.CellsPerExtBlob)
	cellIndices := make([]uint64, params.CellsPerExtBlob)
	for i := range commitments {
		commitments[i] = commitment[:]
		cellIndices[i] = uint64(i)
	}

	ok, err := ctx.VerifyCellKZGProofBatch(commitments, cellIndices, cells, proofs)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestComputeCellsAndKZGProofsWithoutPrecomputeMatches(t *testing.T) {
	s := testSetup(t)
	ctxPrecomp, err := das.NewContext(s, true)
	require.NoError(t, err)
	ctxDirect, err := das.NewContext(s, false)
	require.NoError(t, err)

	blob := randomBlob(t, 7)

	cellsA, proofsA, err := ctxPrecomp.ComputeCellsAndKZGProofs(blob)
	require.NoError(t, err)
	cellsB, proofsB, err := ctxDirect.ComputeCellsAndKZGProofs(blob)
	require.NoError(t, err)

	require.Equal(t, cellsA, cellsB)
	require.Equal(t, proofsA, proofsB)
}

func TestRecoverCellsAndKZGProofsFromHalf(t *testing.T) {
	s := testSetup(t)
	ctx, err := das.NewContext(s, true)
	require.NoError(t, err)

	blob := randomBlob(t, 8)
	cells, proofs, err := ctx.ComputeCellsAndKZGProofs(blob)
	require.NoError(t, err)

	var indices []uint64
	var have [][]byte
	for i := 0; i < params.CellsPerExtBlob && len(indices) < params.MinCellsForRecovery; i += 2 {
		indices = append(indices, uint64(i))
		have = append(have, cells[i])
	}

	allCells, allProofs, err := ctx.RecoverCellsAndKZGProofs(indices, have)
	require.NoError(t, err)
	require.Equal(t, cells, allCells)
	require.Equal(t, proofs, allProofs)
}

func TestVerifyCellKZGProofBatchEmpty(t *testing.T) {
	s := testSetup(t)
	ctx, err := das.NewContext(s, true)
	require.NoError(t, err)

	ok, err := ctx.VerifyCellKZGProofBatch(nil, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, ok)
}

func ptrOneFr() *bls.Fr {
	v := bls.FrOne()
	return &v
}
