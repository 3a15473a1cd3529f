package setup

import (
	"fmt"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/errs"
	"github.com/ethpandaops/go-das-kzg/params"
)

// BlobToScalars decodes a BytesPerBlob-length wire blob into
// FieldElementsPerBlob canonical scalars, rejecting any 32-byte chunk
// that is not strictly less than the scalar field modulus - the same
// check the teacher's BytesToBLSField performs implicitly via FrFrom32.
func BlobToScalars(blob []byte) ([]bls.Fr, error) {
	if len(blob) != params.BytesPerBlob {
		return nil, fmt.Errorf("%w: blob must be %d bytes, got %d", errs.ErrInvalidBlob, params.BytesPerBlob, len(blob))
	}
	out := make([]bls.Fr, params.FieldElementsPerBlob)
	for i := range out {
		chunk := blob[i*params.BytesPerFieldElement : (i+1)*params.BytesPerFieldElement]
		fe, err := bls.FrFromCanonicalBytes(chunk)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", errs.ErrInvalidBlob, i, err)
		}
		out[i] = fe
	}
	return out, nil
}

// ScalarsToBlob is the inverse of BlobToScalars.
func ScalarsToBlob(scalars []bls.Fr) ([]byte, error) {
	if len(scalars) != params.FieldElementsPerBlob {
		return nil, fmt.Errorf("%w: expected %d scalars, got %d", errs.ErrLengthMismatch, params.FieldElementsPerBlob, len(scalars))
	}
	out := make([]byte, params.BytesPerBlob)
	for i, s := range scalars {
		b := bls.FrToBytes(&s)
		copy(out[i*params.BytesPerFieldElement:], b[:])
	}
	return out, nil
}

// CellToScalars decodes a BytesPerCell-length wire cell into
// FieldElementsPerCell canonical scalars.
func CellToScalars(cell []byte) ([]bls.Fr, error) {
	if len(cell) != params.BytesPerCell {
		return nil, fmt.Errorf("%w: cell must be %d bytes, got %d", errs.ErrInvalidCell, params.BytesPerCell, len(cell))
	}
	out := make([]bls.Fr, params.FieldElementsPerCell)
	for i := range out {
		chunk := cell[i*params.BytesPerFieldElement : (i+1)*params.BytesPerFieldElement]
		fe, err := bls.FrFromCanonicalBytes(chunk)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", errs.ErrInvalidCell, i, err)
		}
		out[i] = fe
	}
	return out, nil
}

// ScalarsToCell is the inverse of CellToScalars.
func ScalarsToCell(scalars []bls.Fr) ([]byte, error) {
	if len(scalars) != params.FieldElementsPerCell {
		return nil, fmt.Errorf("%w: expected %d scalars, got %d", errs.ErrLengthMismatch, params.FieldElementsPerCell, len(scalars))
	}
	out := make([]byte, params.BytesPerCell)
	for i, s := range scalars {
		b := bls.FrToBytes(&s)
		copy(out[i*params.BytesPerFieldElement:], b[:])
	}
	return out, nil
}

// CommitmentToBytes and ProofToBytes/FromBytes are thin aliases over the
// shared compressed-G1 codec: commitments and proofs are both 48-byte
// compressed G1 points on the wire, but kept as distinct functions so
// call sites read the way §6's wire format documents them.

func CommitmentFromBytes(b []byte) (bls.G1Point, error) {
	return bls.G1FromCompressed(b)
}

func CommitmentToBytes(c *bls.G1Point) [params.BytesPerCommitment]byte {
	return bls.G1ToCompressed(c)
}

func ProofFromBytes(b []byte) (bls.G1Point, error) {
	p, err := bls.G1FromCompressed(b)
	if err != nil {
		return p, fmt.Errorf("%w: %v", errs.ErrInvalidProof, err)
	}
	return p, nil
}

func ProofToBytes(p *bls.G1Point) [params.BytesPerProof]byte {
	return bls.G1ToCompressed(p)
}
