// Package fk20 implements the FK20 multi-opening proof system of §4.D:
// computing all CellsPerExtBlob KZG opening proofs for a blob in
// quasi-linear time via a Toeplitz-matrix construction, and batch
// verification of cell proofs via a single multi-pairing check.
//
// The construction generalizes the single-point FK20 algorithm (compute
// all per-point opening proofs via one FFT over a precomputed SRS table)
// to per-coset openings: each of the CellsPerExtBlob=128 output proofs
// opens the blob's polynomial at all FieldElementsPerCell=64 points of
// one coset of the extended evaluation domain simultaneously, which is
// what PeerDAS cell sampling needs instead of per-point proofs.
package fk20

import (
	"fmt"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/errs"
	"github.com/ethpandaops/go-das-kzg/params"
	"github.com/ethpandaops/go-das-kzg/poly"
)

// ProofContext holds the precomputed, SRS-derived tables FK20 needs to
// turn a blob's coefficients into all of its cell proofs without ever
// doing an O(N) sized MSM per proof. It depends only on the trusted
// setup's Lagrange-form G1 points, so it is built once by the setup
// package and shared read-only across concurrent callers.
type ProofContext struct {
	cellLen    uint64          // L: FieldElementsPerCell
	numBlocks  uint64          // K: FieldElementsPerBlob / L
	numCells   uint64          // 2K: CellsPerExtBlob
	domainCell *poly.Domain    // size L, used to interpolate a single cell's values
	domain2K   *poly.Domain    // size 2K, the Toeplitz/coset-evaluation domain
	domainExt  *poly.Domain    // size 2N, used to recover a coset's shift point
	tables     [][]bls.G1Point // L tables, each of length 2K
	shortSRS   []bls.G1Point   // monomial SRS, degrees 0..L-1
	monomial   []bls.G1Point   // full monomial SRS, degrees 0..N-1, for ComputeSingleProofDirect
}

// NewProofContext derives the FK20 precomputed table from the trusted
// setup's Lagrange-basis G1 points (length FieldElementsPerBlob). The
// monomial-basis SRS is recovered from the Lagrange-basis SRS via a
// forward FFT carried out directly on G1 points (poly.Domain.FFTG1):
// since G1 is an Fr-module, the same linear transform that turns
// monomial coefficients into Lagrange evaluations over Fr turns a
// monomial-basis SRS into a Lagrange-basis SRS over G1, so recovering the
// monomial SRS from the Lagrange one runs that transform forward, not its
// inverse (setup.NewInsecureTestSetup derives lagrangeG1 from monomialG1
// via InverseFFTG1 - the two calls are exact inverses of each other, not
// the same call twice).
func NewProofContext(lagrangeG1 []bls.G1Point) (*ProofContext, error) {
	n := uint64(len(lagrangeG1))
	if n != params.FieldElementsPerBlob {
		return nil, fmt.Errorf("%w: expected %d Lagrange G1 points, got %d", errs.ErrLengthMismatch, params.FieldElementsPerBlob, n)
	}
	domainN, err := poly.NewDomain(n)
	if err != nil {
		return nil, err
	}
	monomial, err := domainN.FFTG1(lagrangeG1)
	if err != nil {
		return nil, err
	}

	cellLen := uint64(params.FieldElementsPerCell)
	numBlocks := n / cellLen
	numCells := 2 * numBlocks

	domainCell, err := poly.NewDomain(cellLen)
	if err != nil {
		return nil, err
	}
	domain2K, err := poly.NewDomain(numCells)
	if err != nil {
		return nil, err
	}
	domainExt, err := poly.NewDomain(2 * n)
	if err != nil {
		return nil, err
	}

	identity := bls.G1Identity()
	tables := make([][]bls.G1Point, cellLen)
	for s := uint64(0); s < cellLen; s++ {
		padded := make([]bls.G1Point, numCells)
		for q := uint64(0); q < numBlocks; q++ {
			padded[q] = monomial[(numBlocks-1-q)*cellLen+s]
		}
		for q := numBlocks; q < numCells; q++ {
			padded[q] = identity
		}
		colFFT, err := domain2K.FFTG1(padded)
		if err != nil {
			return nil, err
		}
		tables[s] = colFFT
	}

	shortSRS := make([]bls.G1Point, cellLen)
	copy(shortSRS, monomial[:cellLen])

	return &ProofContext{
		cellLen:    cellLen,
		numBlocks:  numBlocks,
		numCells:   numCells,
		domainCell: domainCell,
		domain2K:   domain2K,
		domainExt:  domainExt,
		tables:     tables,
		shortSRS:   shortSRS,
		monomial:   monomial,
	}, nil
}

// NumCells returns the number of cell proofs this context computes per
// blob (CellsPerExtBlob).
func (pc *ProofContext) NumCells() uint64 { return pc.numCells }
