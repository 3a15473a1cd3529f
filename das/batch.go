package das

import (
	"fmt"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/errs"
	"github.com/ethpandaops/go-das-kzg/params"
	"github.com/ethpandaops/go-das-kzg/setup"
)

// VerifyBlobKZGProofBatch implements verify_blob_kzg_proof_batch:
// checks a whole batch of single-blob proofs with one multi-pairing,
// generalizing the teacher's BlobsBatch random-linear-combination trick
// (crypto/kzg.BlobsBatch.Join/Verify) from a commitment-equality
// accumulator to the proof-verification identity, with the combination
// weights drawn from a Fiat-Shamir transcript (setup.ComputeBlobBatchChallenges)
// rather than the teacher's bls.RandomFr(), so the check is deterministic
// and replayable instead of depending on the verifier's own randomness.
func (c *Context) VerifyBlobKZGProofBatch(blobs [][]byte, commitments [][params.BytesPerCommitment]byte, proofs [][params.BytesPerProof]byte) (bool, error) {
	if len(blobs) != len(commitments) || len(commitments) != len(proofs) {
		return false, fmt.Errorf("%w: %d blobs, %d commitments, %d proofs", errs.ErrLengthMismatch, len(blobs), len(commitments), len(proofs))
	}
	if len(blobs) == 0 {
		return true, nil
	}

	commitmentsG1 := make([]bls.G1Point, len(blobs))
	proofsG1 := make([]bls.G1Point, len(blobs))
	zs := make([]bls.Fr, len(blobs))
	ys := make([]bls.Fr, len(blobs))

	for i := range blobs {
		evals, err := setup.BlobToScalars(blobs[i])
		if err != nil {
			return false, err
		}
		commitG1, err := setup.CommitmentFromBytes(commitments[i][:])
		if err != nil {
			return false, err
		}
		proofG1, err := setup.ProofFromBytes(proofs[i][:])
		if err != nil {
			return false, err
		}
		z := setup.ComputeBlobEvaluationChallenge(evals, commitG1)
		y, err := c.blobDomain.BarycentricEval(evals, z)
		if err != nil {
			return false, err
		}
		commitmentsG1[i] = commitG1
		proofsG1[i] = proofG1
		zs[i] = z
		ys[i] = y
	}

	weights := setup.ComputeBlobBatchChallenges(commitmentsG1, proofsG1, zs, ys)

	g1Gen := bls.G1Generator()
	lhsPoints := make([]bls.G1Point, 0, 3*len(blobs))
	lhsScalars := make([]bls.Fr, 0, 3*len(blobs))
	negWeights := make([]bls.Fr, len(blobs))

	for i := range blobs {
		yG1 := bls.G1ScalarMul(&g1Gen, &ys[i])
		term := bls.G1Sub(&commitmentsG1[i], &yG1)

		zWeighted := bls.G1ScalarMul(&proofsG1[i], &zs[i])
		term = bls.G1Add(&term, &zWeighted)

		lhsPoints = append(lhsPoints, term)
		lhsScalars = append(lhsScalars, weights[i])

		negWeights[i].Neg(&weights[i])
	}

	lhsG1, err := bls.G1LinComb(lhsPoints, lhsScalars)
	if err != nil {
		return false, err
	}
	rhsG1, err := bls.G1LinComb(proofsG1, negWeights)
	if err != nil {
		return false, err
	}

	return bls.MultiPairingCheck([]bls.G1Point{lhsG1, rhsG1}, []bls.G2Point{c.setup.G2Generator(), c.setup.G2Tau()})
}
