// Package setup implements §4.E: loading and holding the trusted setup
// (the Lagrange-form G1 SRS and monomial-form G2 SRS), deriving FK20's
// precomputed proof context from it, the Fiat-Shamir transcript used to
// draw verifier challenges, and the wire-format byte codecs of §6.
package setup

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/errs"
	"github.com/ethpandaops/go-das-kzg/fk20"
	"github.com/ethpandaops/go-das-kzg/params"
)

// Setup is the trusted setup of §3: a Lagrange-form G1 SRS (one point
// per blob domain position), a monomial-form G2 SRS of NumG2Points
// points (degrees 0..FieldElementsPerCell), and the FK20 proof context
// derived from the G1 SRS. It is read-only after construction and safe
// to share across any number of concurrent das.Context instances.
type Setup struct {
	lagrangeG1 []bls.G1Point
	g2Monomial []bls.G2Point
	proofCtx   *fk20.ProofContext
}

// jsonTrustedSetup mirrors §6's trusted-setup file format: hex-encoded
// compressed points, g1_lagrange in natural domain order (index i is
// the commitment to the Lagrange basis polynomial of domain point
// omega^i) and g2_monomial as plain ascending powers of tau. Unlike the
// teacher's crypto/kzg.init(), which bit-reverses its loaded Lagrange
// SRS to match go-kzg's FFT convention, this module's poly.Domain
// applies its own bit-reversal internally as part of the Cooley-Tukey
// butterfly, so callers always exchange natural-order data and no extra
// permutation belongs here.
type jsonTrustedSetup struct {
	G1Lagrange []string `json:"g1_lagrange"`
	G2Monomial []string `json:"g2_monomial"`
}

// NewSetupFromJSON parses a trusted setup in the §6 wire format and
// derives the FK20 proof context from it.
func NewSetupFromJSON(data []byte) (*Setup, error) {
	var parsed jsonTrustedSetup
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: trusted setup: %v", errs.ErrInvalidInput, err)
	}
	if len(parsed.G1Lagrange) != params.FieldElementsPerBlob {
		return nil, fmt.Errorf("%w: expected %d g1_lagrange points, got %d", errs.ErrInvalidInput, params.FieldElementsPerBlob, len(parsed.G1Lagrange))
	}
	if len(parsed.G2Monomial) != params.NumG2Points {
		return nil, fmt.Errorf("%w: expected %d g2_monomial points, got %d", errs.ErrInvalidInput, params.NumG2Points, len(parsed.G2Monomial))
	}

	lagrangeG1 := make([]bls.G1Point, len(parsed.G1Lagrange))
	for i, hexStr := range parsed.G1Lagrange {
		b, err := decodeHexPoint(hexStr, params.BytesPerCommitment)
		if err != nil {
			return nil, fmt.Errorf("%w: g1_lagrange[%d]: %v", errs.ErrInvalidInput, i, err)
		}
		p, err := bls.G1FromCompressed(b)
		if err != nil {
			return nil, fmt.Errorf("g1_lagrange[%d]: %w", i, err)
		}
		lagrangeG1[i] = p
	}

	g2Monomial := make([]bls.G2Point, len(parsed.G2Monomial))
	for i, hexStr := range parsed.G2Monomial {
		b, err := decodeHexPoint(hexStr, params.BytesPerG2Point)
		if err != nil {
			return nil, fmt.Errorf("%w: g2_monomial[%d]: %v", errs.ErrInvalidInput, i, err)
		}
		p, err := bls.G2FromCompressed(b)
		if err != nil {
			return nil, fmt.Errorf("g2_monomial[%d]: %w", i, err)
		}
		g2Monomial[i] = p
	}

	return newSetup(lagrangeG1, g2Monomial)
}

// NewSetupFromFile reads and parses a trusted setup file from disk.
func NewSetupFromFile(path string) (*Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading trusted setup: %v", errs.ErrInvalidInput, err)
	}
	return NewSetupFromJSON(data)
}

func newSetup(lagrangeG1 []bls.G1Point, g2Monomial []bls.G2Point) (*Setup, error) {
	proofCtx, err := fk20.NewProofContext(lagrangeG1)
	if err != nil {
		return nil, err
	}
	return &Setup{
		lagrangeG1: lagrangeG1,
		g2Monomial: g2Monomial,
		proofCtx:   proofCtx,
	}, nil
}

// LagrangeG1 returns the Lagrange-basis G1 SRS, one point per blob
// domain position, in the order BlobToKZGCommitment's evaluation-form
// input expects.
func (s *Setup) LagrangeG1() []bls.G1Point { return s.lagrangeG1 }

// MonomialG2 returns the NumG2Points monomial-basis G2 SRS points,
// ascending by degree (index i holds tau^i * g2).
func (s *Setup) MonomialG2() []bls.G2Point { return s.g2Monomial }

// ProofContext returns the FK20 proof context derived from this setup's
// G1 SRS.
func (s *Setup) ProofContext() *fk20.ProofContext { return s.proofCtx }

// G2Generator returns tau^0 * g2.
func (s *Setup) G2Generator() bls.G2Point { return s.g2Monomial[0] }

// G2Tau returns tau^1 * g2, the degree-1 G2 point the single-point
// (pre-PeerDAS) EIP-4844 opening identity needs.
func (s *Setup) G2Tau() bls.G2Point { return s.g2Monomial[1] }

// G2TauCellLen returns tau^FieldElementsPerCell * g2, the degree-64 G2
// point the coset-opening verification identity needs.
func (s *Setup) G2TauCellLen() bls.G2Point { return s.g2Monomial[params.FieldElementsPerCell] }
