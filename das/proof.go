package das

import (
	"fmt"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/errs"
	"github.com/ethpandaops/go-das-kzg/params"
	"github.com/ethpandaops/go-das-kzg/poly"
	"github.com/ethpandaops/go-das-kzg/setup"
)

// ComputeKZGProof implements compute_kzg_proof: opens a blob's
// polynomial at a point z, returning the proof and the claimed
// evaluation y = f(z). z must lie outside the blob domain: for z equal
// to one of its roots of unity no quotient is computed and the call
// returns ErrInvalidInput.
func (c *Context) ComputeKZGProof(blob []byte, z [params.BytesPerFieldElement]byte) (proof [params.BytesPerProof]byte, y [params.BytesPerFieldElement]byte, err error) {
	evals, err := setup.BlobToScalars(blob)
	if err != nil {
		return proof, y, err
	}
	zFr, err := bls.FrFromCanonicalBytes(z[:])
	if err != nil {
		return proof, y, fmt.Errorf("%w: z: %v", errs.ErrInvalidScalar, err)
	}
	proofG1, yFr, err := c.computeProofAt(evals, zFr)
	if err != nil {
		return proof, y, err
	}
	return setup.ProofToBytes(&proofG1), bls.FrToBytes(&yFr), nil
}

// ComputeBlobKZGProof implements compute_blob_kzg_proof: the single-blob
// EIP-4844 opening at a point the transcript itself derives from the
// blob and its commitment, so the proof doubles as a commitment to the
// whole blob rather than to one arbitrary evaluation.
func (c *Context) ComputeBlobKZGProof(blob []byte, commitment [params.BytesPerCommitment]byte) ([params.BytesPerProof]byte, error) {
	evals, err := setup.BlobToScalars(blob)
	if err != nil {
		return [params.BytesPerProof]byte{}, err
	}
	commitG1, err := setup.CommitmentFromBytes(commitment[:])
	if err != nil {
		return [params.BytesPerProof]byte{}, err
	}
	z := setup.ComputeBlobEvaluationChallenge(evals, commitG1)
	proofG1, _, err := c.computeProofAt(evals, z)
	if err != nil {
		return [params.BytesPerProof]byte{}, err
	}
	return setup.ProofToBytes(&proofG1), nil
}

// computeProofAt evaluates evals (Lagrange form, over c.blobDomain) at z
// and commits the quotient (evals - y)/(domain - z), pointwise, against
// the Lagrange-form SRS - evaluate_polynomial_in_evaluation_form and
// compute_kzg_proof from the EIP-4844 consensus spec, generalized from
// the teacher's fixed-domain crypto/kzg.ComputeProof to this module's
// poly.Domain.
func (c *Context) computeProofAt(evals []bls.Fr, z bls.Fr) (bls.G1Point, bls.Fr, error) {
	y, err := c.blobDomain.BarycentricEval(evals, z)
	if err != nil {
		return bls.G1Point{}, bls.Fr{}, err
	}

	numerator := make([]bls.Fr, len(evals))
	for i := range evals {
		numerator[i].Sub(&evals[i], &y)
	}
	domainElems := c.blobDomain.Elements()
	denominator := make([]bls.Fr, len(domainElems))
	for i := range domainElems {
		denominator[i].Sub(&domainElems[i], &z)
	}

	quotient, err := poly.DivPointwise(numerator, denominator)
	if err != nil {
		return bls.G1Point{}, bls.Fr{}, fmt.Errorf("%w: evaluation point coincides with a domain element", errs.ErrInvalidInput)
	}

	proofG1, err := bls.G1LinComb(c.setup.LagrangeG1(), quotient)
	if err != nil {
		return bls.G1Point{}, bls.Fr{}, err
	}
	return proofG1, y, nil
}

// VerifyKZGProof implements verify_kzg_proof: checks that proof opens
// commitment at z to y, via the single-point pairing identity
//
//	e(commitment - y*G1, G2) == e(proof, tau*G2 - z*G2)
func (c *Context) VerifyKZGProof(commitment [params.BytesPerCommitment]byte, z, y [params.BytesPerFieldElement]byte, proof [params.BytesPerProof]byte) (bool, error) {
	commitG1, err := setup.CommitmentFromBytes(commitment[:])
	if err != nil {
		return false, err
	}
	proofG1, err := setup.ProofFromBytes(proof[:])
	if err != nil {
		return false, err
	}
	zFr, err := bls.FrFromCanonicalBytes(z[:])
	if err != nil {
		return false, fmt.Errorf("%w: z: %v", errs.ErrInvalidScalar, err)
	}
	yFr, err := bls.FrFromCanonicalBytes(y[:])
	if err != nil {
		return false, fmt.Errorf("%w: y: %v", errs.ErrInvalidScalar, err)
	}
	return c.verifySinglePoint(commitG1, zFr, yFr, proofG1)
}

// VerifyBlobKZGProof implements verify_blob_kzg_proof: re-derives the
// evaluation point and claimed value from the blob and commitment the
// same way ComputeBlobKZGProof did, then runs the single-point check.
func (c *Context) VerifyBlobKZGProof(blob []byte, commitment [params.BytesPerCommitment]byte, proof [params.BytesPerProof]byte) (bool, error) {
	evals, err := setup.BlobToScalars(blob)
	if err != nil {
		return false, err
	}
	commitG1, err := setup.CommitmentFromBytes(commitment[:])
	if err != nil {
		return false, err
	}
	proofG1, err := setup.ProofFromBytes(proof[:])
	if err != nil {
		return false, err
	}
	z := setup.ComputeBlobEvaluationChallenge(evals, commitG1)
	y, err := c.blobDomain.BarycentricEval(evals, z)
	if err != nil {
		return false, err
	}
	return c.verifySinglePoint(commitG1, z, y, proofG1)
}

// verifySinglePoint checks the single-claim identity
// e(C - y*G1, G2) == e(proof, tau*G2 - z*G2) as one two-term
// multi-pairing. VerifyBlobKZGProofBatch regroups the same identity over
// many claims with Fiat-Shamir weights; this single-claim check needs
// neither a weight nor a linear combination.
func (c *Context) verifySinglePoint(commitment bls.G1Point, z, y bls.Fr, proof bls.G1Point) (bool, error) {
	g1Gen := bls.G1Generator()
	yG1 := bls.G1ScalarMul(&g1Gen, &y)
	pMinusY := bls.G1Sub(&commitment, &yG1)

	g2Gen := c.setup.G2Generator()
	zG2 := bls.G2ScalarMul(&g2Gen, &z)
	xMinusZ := bls.G2Sub(&c.setup.G2Tau(), &zG2)

	identity := bls.G1Identity()
	negProof := bls.G1Sub(&identity, &proof)

	return bls.MultiPairingCheck([]bls.G1Point{pMinusY, negProof}, []bls.G2Point{g2Gen, xMinusZ})
}
