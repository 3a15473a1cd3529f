package fk20

import (
	"fmt"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/errs"
	"github.com/ethpandaops/go-das-kzg/poly"
)

// CellProofClaim bundles one claimed (commitment, cell, proof) triple
// for batch verification: cell holds the claimed FieldElementsPerCell
// scalars of the coset at cellIndex, committed to by commitment and
// opened by proof.
type CellProofClaim struct {
	Commitment bls.G1Point
	CellIndex  uint64
	Cell       []bls.Fr
	Proof      bls.G1Point
}

// VerifyCellProofBatch checks every claim with a single multi-pairing.
//
// Each individual claim amounts to the coset-opening identity
//
//	e(C_j - R_j, g2) == e(pi_j, tau^L*g2 - h_j^L*g2)
//
// where R_j is the commitment to the degree-<L polynomial interpolating
// cell_j over its coset, and h_j is that coset's shift. Expanding the
// right-hand side and grouping every term that shares a G2 operand
// collapses the whole batch - weighted by powers of a single
// Fiat-Shamir challenge, supplied by the caller as coefficients - into
// exactly two pairings:
//
//	e( sum_j coeffs[j]*(C_j - R_j) + sum_j coeffs[j]*h_j^L*pi_j, g2 )
//	  * e( -sum_j coeffs[j]*pi_j, g2TauL ) == 1
//
// g2Gen and g2TauL must be the trusted setup's degree-0 and degree-L G2
// monomial points.
func VerifyCellProofBatch(claims []CellProofClaim, pc *ProofContext, g2Gen, g2TauL bls.G2Point, coeffs []bls.Fr) (bool, error) {
	if len(claims) != len(coeffs) {
		return false, fmt.Errorf("%w: %d claims vs %d challenge coefficients", errs.ErrLengthMismatch, len(claims), len(coeffs))
	}
	if len(claims) == 0 {
		return true, nil
	}

	lhsPoints := make([]bls.G1Point, 0, 2*len(claims))
	lhsScalars := make([]bls.Fr, 0, 2*len(claims))
	proofPoints := make([]bls.G1Point, len(claims))
	negCoeffs := make([]bls.Fr, len(claims))

	for j, claim := range claims {
		if uint64(len(claim.Cell)) != pc.cellLen {
			return false, fmt.Errorf("%w: cell %d has %d scalars, want %d", errs.ErrInvalidCell, claim.CellIndex, len(claim.Cell), pc.cellLen)
		}
		if claim.CellIndex >= pc.numCells {
			return false, fmt.Errorf("%w: %d", errs.ErrInvalidCellIndex, claim.CellIndex)
		}

		residue := poly.BitReverseIndex(claim.CellIndex, pc.numCells)
		hL := poly.Pow(pc.domain2K.Generator(), residue)

		r, err := pc.interpolateCellCommitment(claim.CellIndex, claim.Cell)
		if err != nil {
			return false, err
		}
		diff := bls.G1Sub(&claim.Commitment, &r)

		lhsPoints = append(lhsPoints, diff)
		lhsScalars = append(lhsScalars, coeffs[j])

		weightedHL := coeffs[j]
		weightedHL.Mul(&weightedHL, &hL)
		lhsPoints = append(lhsPoints, claim.Proof)
		lhsScalars = append(lhsScalars, weightedHL)

		proofPoints[j] = claim.Proof
		negCoeffs[j].Neg(&coeffs[j])
	}

	lhsG1, err := bls.G1LinComb(lhsPoints, lhsScalars)
	if err != nil {
		return false, err
	}
	rhsG1, err := bls.G1LinComb(proofPoints, negCoeffs)
	if err != nil {
		return false, err
	}

	return bls.MultiPairingCheck([]bls.G1Point{lhsG1, rhsG1}, []bls.G2Point{g2Gen, g2TauL})
}

// interpolateCellCommitment computes R_j, the KZG commitment (against the
// short monomial SRS, degrees 0..cellLen-1) to the unique degree-<cellLen
// polynomial agreeing with cell over its coset.
//
// cell arrives in wire order, where wire position j holds the coset's
// natural-order evaluation at bit-reversed index bitrev(j) (the same
// convention erasure.naturalIndexInCell encodes), so it is bit-reversed
// onto a copy before the coset inverse FFT, which expects natural order.
func (pc *ProofContext) interpolateCellCommitment(cellIndex uint64, cell []bls.Fr) (bls.G1Point, error) {
	residue := poly.BitReverseIndex(cellIndex, pc.numCells)
	shift := poly.Pow(pc.domainExt.Generator(), residue)

	natural := make([]bls.Fr, len(cell))
	copy(natural, cell)
	poly.BitReverse(natural)

	coeffs, err := pc.domainCell.CosetInverseFFT(natural, shift)
	if err != nil {
		return bls.G1Point{}, err
	}
	return bls.G1LinComb(pc.shortSRS, coeffs)
}
