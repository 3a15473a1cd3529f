package erasure

import (
	"fmt"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/errs"
	"github.com/ethpandaops/go-das-kzg/params"
	"github.com/ethpandaops/go-das-kzg/poly"
)

// Encode extends a degree-<N coefficient polynomial to its 2N evaluation
// form (rate-1/2 Reed-Solomon systematic encoding), in natural domain
// order.
func Encode(coeffs []bls.Fr) ([]bls.Fr, error) {
	if len(coeffs) != params.FieldElementsPerBlob {
		return nil, fmt.Errorf("%w: expected %d coefficients, got %d", errs.ErrLengthMismatch, params.FieldElementsPerBlob, len(coeffs))
	}
	_, ext, _, err := domains()
	if err != nil {
		return nil, err
	}
	padded := make([]bls.Fr, ext.Size())
	copy(padded, coeffs)
	return ext.FFT(padded)
}

// RecoverPolynomial reconstructs the degree-<N coefficient polynomial
// from a set of distinct, valid (cellIndex, cell) pairs. cellIndex
// values must be < CellsPerExtBlob and must not repeat; at least
// params.MinCellsForRecovery distinct cells are required.
//
// It automatically detects the block-aligned erasure pattern (every
// missing position falls in a whole missing cell, which is always true
// for this codec's unit of erasure) and builds the vanishing polynomial
// by multiplying out one linear factor per missing cell directly (O(k^2)
// for k missing cells, see buildVanishingSmall), then lifting it to
// X^FieldElementsPerCell. A general, non-cell-aligned erasure mask would
// instead take the O(N log N) FFT-based product accumulation path
// (buildGeneralVanishing); RecoverPolynomial only erases whole cells, so
// it never takes that path.
func RecoverPolynomial(cellIndices []uint64, cells [][]bls.Fr) ([]bls.Fr, error) {
	if len(cellIndices) != len(cells) {
		return nil, fmt.Errorf("%w: %d indices vs %d cells", errs.ErrLengthMismatch, len(cellIndices), len(cells))
	}
	seen := make(map[uint64]bool, len(cellIndices))
	for _, idx := range cellIndices {
		if idx >= params.CellsPerExtBlob {
			return nil, fmt.Errorf("%w: %d", errs.ErrInvalidCellIndex, idx)
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: %d", errs.ErrDuplicateIndex, idx)
		}
		seen[idx] = true
	}
	if len(seen) < params.MinCellsForRecovery {
		return nil, fmt.Errorf("%w: have %d distinct cells, need %d", errs.ErrNotEnoughCells, len(seen), params.MinCellsForRecovery)
	}
	for _, cell := range cells {
		if len(cell) != params.FieldElementsPerCell {
			return nil, fmt.Errorf("%w: cell has %d scalars, want %d", errs.ErrInvalidCell, len(cell), params.FieldElementsPerCell)
		}
	}

	_, ext, _, err := domains()
	if err != nil {
		return nil, err
	}
	n := ext.Size()

	evalMasked := make([]bls.Fr, n)
	for i, idx := range cellIndices {
		for j := uint64(0); j < params.FieldElementsPerCell; j++ {
			natIdx := naturalIndexInCell(idx, j)
			evalMasked[natIdx] = cells[i][j]
		}
	}

	missingCells := make([]uint64, 0, params.CellsPerExtBlob-len(seen))
	for i := uint64(0); i < params.CellsPerExtBlob; i++ {
		if !seen[i] {
			missingCells = append(missingCells, i)
		}
	}
	erasedNatural := make([]uint64, 0, len(missingCells)*params.FieldElementsPerCell)
	for _, idx := range missingCells {
		for j := uint64(0); j < params.FieldElementsPerCell; j++ {
			erasedNatural = append(erasedNatural, naturalIndexInCell(idx, j))
		}
	}

	return recoverFromMask(evalMasked, erasedNatural)
}

// recoverFromMask runs §4.C's vanishing-polynomial division strategy
// given the masked evaluations (zero at every erased position) and the
// explicit list of erased natural-domain indices. It is the shared core
// of both the block-aligned and general paths; only the construction of
// the vanishing polynomial Z differs between them, chosen automatically
// by buildVanishing.
func recoverFromMask(evalMasked []bls.Fr, erasedNatural []uint64) ([]bls.Fr, error) {
	if len(erasedNatural) > params.FieldElementsPerBlob {
		return nil, fmt.Errorf("%w: %d erased positions exceeds capacity %d", errs.ErrNotEnoughCells, len(erasedNatural), params.FieldElementsPerBlob)
	}

	_, ext, _, err := domains()
	if err != nil {
		return nil, err
	}
	n := ext.Size()

	zCoeffs, err := buildVanishing(erasedNatural)
	if err != nil {
		return nil, err
	}
	zPadded := make([]bls.Fr, n)
	copy(zPadded, zCoeffs)

	zEval, err := ext.FFT(zPadded)
	if err != nil {
		return nil, err
	}

	maskedTimesZ, err := poly.MulPointwise(evalMasked, zEval)
	if err != nil {
		return nil, err
	}

	dzCoeffs, err := ext.InverseFFT(maskedTimesZ)
	if err != nil {
		return nil, err
	}

	shift := poly.CosetGenerator
	dzCoset, err := ext.CosetFFT(dzCoeffs, shift)
	if err != nil {
		return nil, err
	}
	zCoset, err := ext.CosetFFT(zPadded, shift)
	if err != nil {
		return nil, err
	}

	fCoset, err := poly.DivPointwise(dzCoset, zCoset)
	if err != nil {
		return nil, fmt.Errorf("%w: erasure pattern is not recoverable", errs.ErrNotEnoughCells)
	}

	fCoeffs, err := ext.CosetInverseFFT(fCoset, shift)
	if err != nil {
		return nil, err
	}
	return fCoeffs[:params.FieldElementsPerBlob], nil
}

// buildVanishing constructs the coefficients of the degree-<2N vanishing
// polynomial Z(X) = prod_{i in erased} (X - omega_2N^i), automatically
// choosing the block-aligned construction (a direct O(k^2) product over
// the k erased residues, lifted to X^FieldElementsPerCell) when every
// erased-mod-CellsPerExtBlob residue class is either fully erased or not
// erased at all (always true when erasures come in whole-cell units),
// falling back to the general O(N log N) FFT product-accumulation
// otherwise.
func buildVanishing(erasedNatural []uint64) ([]bls.Fr, error) {
	if len(erasedNatural) == 0 {
		return []bls.Fr{bls.FrOne()}, nil
	}

	byResidue := make(map[uint64]int, params.CellsPerExtBlob)
	for _, idx := range erasedNatural {
		byResidue[idx%params.CellsPerExtBlob]++
	}
	blockAligned := true
	residues := make([]uint64, 0, len(byResidue))
	for r, count := range byResidue {
		if count != params.FieldElementsPerCell {
			blockAligned = false
			break
		}
		residues = append(residues, r)
	}

	if blockAligned {
		return buildBlockAlignedVanishing(residues)
	}
	return buildGeneralVanishing(erasedNatural)
}

func buildBlockAlignedVanishing(residues []uint64) ([]bls.Fr, error) {
	_, _, cellsDomain, err := domains()
	if err != nil {
		return nil, err
	}
	gen := cellsDomain.Generator()
	roots := make([]bls.Fr, len(residues))
	for i, r := range residues {
		roots[i] = poly.Pow(gen, r)
	}
	zSmall := buildVanishingSmall(roots)

	zLifted := make([]bls.Fr, (len(zSmall)-1)*params.FieldElementsPerCell+1)
	for j, c := range zSmall {
		zLifted[j*params.FieldElementsPerCell] = c
	}
	return zLifted, nil
}

func buildGeneralVanishing(erasedNatural []uint64) ([]bls.Fr, error) {
	_, ext, _, err := domains()
	if err != nil {
		return nil, err
	}
	domainElems := ext.Elements()
	roots := make([]bls.Fr, len(erasedNatural))
	for i, idx := range erasedNatural {
		roots[i] = domainElems[idx]
	}
	return buildVanishingGeneral(roots)
}
