package fk20

import (
	"fmt"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/errs"
	"github.com/ethpandaops/go-das-kzg/poly"
)

// ComputeAllProofs computes all NumCells() KZG opening proofs for the
// given degree-<FieldElementsPerBlob polynomial, one per coset of the
// extended evaluation domain, in bit-reversed cell-index order.
//
// The computation is the Toeplitz-matrix-times-vector product that
// gives FK20 its name, expressed as two FFTs over the precomputed
// per-coefficient-residue tables in pc.tables:
//
//  1. For each residue s in [0, cellLen), build the degree-<numBlocks
//     "column" of polynomial coefficients at stride cellLen, zero-pad to
//     2*numBlocks, and FFT it.
//  2. Multiply that FFT pointwise (Fr scalar times G1 point) against the
//     precomputed table for that residue, accumulating over s. This
//     computes, for every residue simultaneously, a circular convolution
//     between the reversed monomial-SRS column and the coefficient
//     column - exactly the correlation a Toeplitz matrix-vector product
//     needs, but batched over all cosets at once via the convolution
//     theorem.
//  3. Inverse-FFT the accumulator and keep the upper half: these are the
//     coefficients of a degree-<numBlocks-1 polynomial whose evaluation
//     at the numCells-th roots of unity gives exactly the proof
//     commitment for the coset at that root - because each coset's
//     shift-to-the-cellLen-th-power is itself one of those roots.
//  4. Zero-pad and FFT once more (now over G1) to evaluate at every
//     root simultaneously, then bit-reverse into wire cell order.
func ComputeAllProofs(coeffs []bls.Fr, pc *ProofContext) ([]bls.G1Point, error) {
	n := pc.numBlocks * pc.cellLen
	if uint64(len(coeffs)) != n {
		return nil, fmt.Errorf("%w: expected %d coefficients, got %d", errs.ErrLengthMismatch, n, len(coeffs))
	}

	identity := bls.G1Identity()
	hExtFFT := make([]bls.G1Point, pc.numCells)
	for i := range hExtFFT {
		hExtFFT[i] = identity
	}

	for s := uint64(0); s < pc.cellLen; s++ {
		vec := make([]bls.Fr, pc.numCells)
		for t := uint64(0); t < pc.numBlocks; t++ {
			vec[t] = coeffs[t*pc.cellLen+s]
		}
		vecFFT, err := pc.domain2K.FFT(vec)
		if err != nil {
			return nil, err
		}
		table := pc.tables[s]
		for idx := range hExtFFT {
			term := bls.G1ScalarMul(&table[idx], &vecFFT[idx])
			hExtFFT[idx] = bls.G1Add(&hExtFFT[idx], &term)
		}
	}

	hExt, err := pc.domain2K.InverseFFTG1(hExtFFT)
	if err != nil {
		return nil, err
	}

	rPadded := make([]bls.G1Point, pc.numCells)
	for i := range rPadded {
		rPadded[i] = identity
	}
	for u := uint64(0); u+1 < pc.numBlocks; u++ {
		rPadded[u] = hExt[u+pc.numBlocks]
	}

	proofsNatural, err := pc.domain2K.FFTG1(rPadded)
	if err != nil {
		return nil, err
	}
	poly.BitReverseG1(proofsNatural)
	return proofsNatural, nil
}

// ComputeSingleProofDirect computes one cell's opening proof without
// going through the batched Toeplitz-FFT construction: it folds the
// polynomial's coefficients into cellLen interleaved sequences and
// divides each by (Y - h^cellLen) via synthetic division directly, an
// O(N) computation independent of ComputeAllProofs. It exists as a
// cross-check of the batched path and as a cheaper option when only one
// or two cells (not the full set) are ever needed from a given blob, at
// the cost of a degree-(N-cellLen) MSM instead of amortizing cost over
// all cells.
func ComputeSingleProofDirect(coeffs []bls.Fr, cellIndex uint64, pc *ProofContext) (bls.G1Point, error) {
	n := pc.numBlocks * pc.cellLen
	if uint64(len(coeffs)) != n {
		return bls.G1Point{}, fmt.Errorf("%w: expected %d coefficients, got %d", errs.ErrLengthMismatch, n, len(coeffs))
	}
	if cellIndex >= pc.numCells {
		return bls.G1Point{}, fmt.Errorf("%w: %d", errs.ErrInvalidCellIndex, cellIndex)
	}

	residue := poly.BitReverseIndex(cellIndex, pc.numCells)
	a := poly.Pow(pc.domain2K.Generator(), residue)

	qCoeffs := make([]bls.Fr, n)
	for s := uint64(0); s < pc.cellLen; s++ {
		if pc.numBlocks < 2 {
			continue
		}
		carry := coeffs[(pc.numBlocks-1)*pc.cellLen+s]
		qCoeffs[(pc.numBlocks-2)*pc.cellLen+s] = carry
		for q := int64(pc.numBlocks) - 2; q >= 1; q-- {
			var t bls.Fr
			t.Mul(&a, &carry)
			t.Add(&t, &coeffs[uint64(q)*pc.cellLen+s])
			carry = t
			qCoeffs[(uint64(q)-1)*pc.cellLen+s] = carry
		}
	}

	degree := (pc.numBlocks - 1) * pc.cellLen
	return bls.G1LinComb(pc.monomial[:degree], qCoeffs[:degree])
}
