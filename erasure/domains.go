// Package erasure implements the Reed-Solomon erasure codec of §4.C:
// systematic encoding of a blob at expansion factor 2 via FFT, and
// recovery of missing evaluations via a vanishing-polynomial division
// strategy, with an automatic fast path for the block-aligned
// (whole-cell) erasure pattern the DAS façade always produces.
package erasure

import (
	"fmt"
	"sync"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/errs"
	"github.com/ethpandaops/go-das-kzg/params"
	"github.com/ethpandaops/go-das-kzg/poly"
)

var (
	domainsOnce sync.Once
	domainN     *poly.Domain // size 4096, the blob domain
	domain2N    *poly.Domain // size 8192, the extended domain
	domainCells *poly.Domain // size 128, one point per cell residue class
	domainsErr  error
)

func domains() (n, ext, cells *poly.Domain, err error) {
	domainsOnce.Do(func() {
		domainN, domainsErr = poly.NewDomain(params.FieldElementsPerBlob)
		if domainsErr != nil {
			return
		}
		domain2N, domainsErr = poly.NewDomain(params.FieldElementsPerExtBlob)
		if domainsErr != nil {
			return
		}
		domainCells, domainsErr = poly.NewDomain(params.CellsPerExtBlob)
	})
	return domainN, domain2N, domainCells, domainsErr
}

// cellResidue returns the bit-reversal of a cell index over
// log2(CellsPerExtBlob) bits: the residue (mod CellsPerExtBlob) that
// cell's 64 scalars occupy in the natural-order extended domain, per the
// cell-index ordering fixed in §3 ("bit-reversed ordering of the
// size-128 coset partition of the 2N-domain").
func cellResidue(cellIndex uint64) uint64 {
	return poly.BitReverseIndex(cellIndex, params.CellsPerExtBlob)
}

// naturalIndexInCell returns the natural-order 2N-domain index holding
// the j-th scalar (wire order, 0-63) of the given cell.
func naturalIndexInCell(cellIndex uint64, j uint64) uint64 {
	return cellResidue(cellIndex) + params.CellsPerExtBlob*poly.BitReverseIndex(j, params.FieldElementsPerCell)
}

// BlobDomain returns the shared size-FieldElementsPerBlob domain this
// package and its callers use to move a blob between coefficient and
// evaluation form, so the das façade never has to construct its own.
func BlobDomain() (*poly.Domain, error) {
	n, _, _, err := domains()
	return n, err
}

// CellsFromExtended splits a full (no erasures) 2N-length extended
// evaluation, in natural domain order, into the CellsPerExtBlob cells in
// wire cell-index order - the inverse layout of the mapping
// RecoverPolynomial reads cells back through.
func CellsFromExtended(eval2N []bls.Fr) ([][]bls.Fr, error) {
	if uint64(len(eval2N)) != params.FieldElementsPerExtBlob {
		return nil, fmt.Errorf("%w: expected %d evaluations, got %d", errs.ErrLengthMismatch, params.FieldElementsPerExtBlob, len(eval2N))
	}
	cells := make([][]bls.Fr, params.CellsPerExtBlob)
	for idx := uint64(0); idx < params.CellsPerExtBlob; idx++ {
		cell := make([]bls.Fr, params.FieldElementsPerCell)
		for j := uint64(0); j < params.FieldElementsPerCell; j++ {
			cell[j] = eval2N[naturalIndexInCell(idx, j)]
		}
		cells[idx] = cell
	}
	return cells, nil
}
