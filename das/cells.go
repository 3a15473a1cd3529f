package das

import (
	"fmt"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/erasure"
	"github.com/ethpandaops/go-das-kzg/errs"
	"github.com/ethpandaops/go-das-kzg/fk20"
	"github.com/ethpandaops/go-das-kzg/internal/parallel"
	"github.com/ethpandaops/go-das-kzg/setup"
)

// ComputeCellsAndKZGProofs implements compute_cells_and_kzg_proofs: the
// full PeerDAS encode step for one blob - extend to 2N evaluations via
// the erasure codec, split into CellsPerExtBlob wire cells, and compute
// every cell's opening proof.
func (c *Context) ComputeCellsAndKZGProofs(blob []byte) (cells [][]byte, proofs [][]byte, err error) {
	evals, err := setup.BlobToScalars(blob)
	if err != nil {
		return nil, nil, err
	}
	coeffs, err := c.blobDomain.InverseFFT(evals)
	if err != nil {
		return nil, nil, err
	}
	return c.computeCellsAndProofsFromCoeffs(coeffs)
}

// RecoverCellsAndKZGProofs implements recover_cells_and_kzg_proofs:
// reconstruct a blob's full polynomial from a partial, valid set of
// cells, then produce the complete cell set and proofs exactly as
// ComputeCellsAndKZGProofs would from the original blob.
func (c *Context) RecoverCellsAndKZGProofs(cellIndices []uint64, cells [][]byte) (allCells [][]byte, allProofs [][]byte, err error) {
	cellsFr := make([][]bls.Fr, len(cells))
	for i, cell := range cells {
		fr, err := setup.CellToScalars(cell)
		if err != nil {
			return nil, nil, err
		}
		cellsFr[i] = fr
	}
	coeffs, err := erasure.RecoverPolynomial(cellIndices, cellsFr)
	if err != nil {
		return nil, nil, err
	}
	return c.computeCellsAndProofsFromCoeffs(coeffs)
}

func (c *Context) computeCellsAndProofsFromCoeffs(coeffs []bls.Fr) ([][]byte, [][]byte, error) {
	eval2N, err := erasure.Encode(coeffs)
	if err != nil {
		return nil, nil, err
	}
	cellsFr, err := erasure.CellsFromExtended(eval2N)
	if err != nil {
		return nil, nil, err
	}

	proofsG1, err := c.computeAllProofs(coeffs)
	if err != nil {
		return nil, nil, err
	}

	cells := make([][]byte, len(cellsFr))
	for i, cf := range cellsFr {
		b, err := setup.ScalarsToCell(cf)
		if err != nil {
			return nil, nil, err
		}
		cells[i] = b
	}
	proofs := make([][]byte, len(proofsG1))
	for i := range proofsG1 {
		b := setup.ProofToBytes(&proofsG1[i])
		proofs[i] = b[:]
	}
	return cells, proofs, nil
}

// computeAllProofs dispatches to the precomputed FK20 batch pass or the
// direct per-cell path according to c.usePrecomp, fanning the direct
// path out across ParallelFor since each cell's proof is independent.
func (c *Context) computeAllProofs(coeffs []bls.Fr) ([]bls.G1Point, error) {
	pc := c.setup.ProofContext()
	if c.usePrecomp {
		return fk20.ComputeAllProofs(coeffs, pc)
	}
	proofs := make([]bls.G1Point, pc.NumCells())
	err := parallel.ParallelFor(len(proofs), func(i int) error {
		p, err := fk20.ComputeSingleProofDirect(coeffs, uint64(i), pc)
		if err != nil {
			return err
		}
		proofs[i] = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return proofs, nil
}

// VerifyCellKZGProofBatch implements verify_cell_kzg_proof_batch:
// commitments, cellIndices, cells, and proofs are parallel arrays (the
// caller repeats a blob's commitment once per cell claimed against it),
// checked with a single multi-pairing via fk20.VerifyCellProofBatch.
func (c *Context) VerifyCellKZGProofBatch(commitments [][]byte, cellIndices []uint64, cells [][]byte, proofs [][]byte) (bool, error) {
	if len(commitments) != len(cellIndices) || len(cellIndices) != len(cells) || len(cells) != len(proofs) {
		return false, fmt.Errorf("%w: commitments, cellIndices, cells, and proofs must share length", errs.ErrLengthMismatch)
	}
	if len(cells) == 0 {
		return true, nil
	}

	commitmentsG1 := make([]bls.G1Point, len(cells))
	cellsFr := make([][]bls.Fr, len(cells))
	claims := make([]fk20.CellProofClaim, len(cells))

	for i := range cells {
		commitG1, err := setup.CommitmentFromBytes(commitments[i])
		if err != nil {
			return false, err
		}
		cellFr, err := setup.CellToScalars(cells[i])
		if err != nil {
			return false, err
		}
		proofG1, err := setup.ProofFromBytes(proofs[i])
		if err != nil {
			return false, err
		}

		commitmentsG1[i] = commitG1
		cellsFr[i] = cellFr
		claims[i] = fk20.CellProofClaim{
			Commitment: commitG1,
			CellIndex:  cellIndices[i],
			Cell:       cellFr,
			Proof:      proofG1,
		}
	}

	weights := setup.ComputeCellChallenges(commitmentsG1, cellIndices, cellsFr)
	return fk20.VerifyCellProofBatch(claims, c.setup.ProofContext(), c.setup.G2Generator(), c.setup.G2TauCellLen(), weights)
}
