// Package errs defines the sentinel error taxonomy shared by every public
// entry point in this module. Errors are never panicked; every exported
// function either returns a value or one of these wrapped with context via
// fmt.Errorf("%w: ...").
package errs

import "errors"

var (
	// ErrInvalidBlob means a blob's length or one of its 32-byte chunks
	// failed to decode to a valid scalar.
	ErrInvalidBlob = errors.New("invalid blob")

	// ErrInvalidCommitment means a commitment failed to decode to a
	// canonical, subgroup-valid compressed G1 point.
	ErrInvalidCommitment = errors.New("invalid commitment")

	// ErrInvalidProof means a proof failed to decode to a canonical,
	// subgroup-valid compressed G1 point.
	ErrInvalidProof = errors.New("invalid proof")

	// ErrInvalidCell means a cell's length or one of its scalars failed
	// to decode.
	ErrInvalidCell = errors.New("invalid cell")

	// ErrInvalidScalar means a 32-byte value was not a canonical
	// representative of Fr (>= the field modulus).
	ErrInvalidScalar = errors.New("invalid scalar")

	// ErrInvalidCellIndex means a cell index was >= params.CellsPerExtBlob.
	ErrInvalidCellIndex = errors.New("invalid cell index")

	// ErrDuplicateIndex means the same cell index appeared twice in a
	// recovery input.
	ErrDuplicateIndex = errors.New("duplicate cell index")

	// ErrNotEnoughCells means fewer than params.MinCellsForRecovery
	// distinct cells were supplied to a recovery operation.
	ErrNotEnoughCells = errors.New("not enough cells to recover")

	// ErrLengthMismatch means parallel input slices disagreed in length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrInvalidInput is the structural/decoding failure of trusted-setup
	// loading and G2 point decoding, and the error for an opening point z
	// that lies on the blob domain. Verifier entry points do not return
	// it: they report decoding failures with the more specific sentinels
	// above, and a cryptographic mismatch as (false, nil).
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivisionByZero means a pointwise polynomial division hit a zero
	// denominator at some evaluation point.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInternal marks an invariant breach that should be unreachable
	// in correct code: a failed MSM inside bls, or a poly.NewDomain size
	// that is not a power of two dividing r-1. Treat any occurrence as a
	// bug report, not a
	// reachable user-facing condition.
	ErrInternal = errors.New("internal error")
)
