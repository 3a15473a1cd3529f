// Package params collects the fixed sizes of the EIP-4844 / EIP-7594
// wire formats. These are consensus constants, not configuration: they
// never vary at runtime.
package params

const (
	// FieldElementsPerBlob is the number of scalars (N) making up one blob.
	FieldElementsPerBlob = 4096

	// FieldElementsPerExtBlob is the number of evaluations (2N) of the
	// extended (rate-1/2) blob polynomial.
	FieldElementsPerExtBlob = 2 * FieldElementsPerBlob

	// FieldElementsPerCell is the number of scalars in one cell (B).
	FieldElementsPerCell = 64

	// CellsPerExtBlob is the number of cells (m) an extended blob splits into.
	CellsPerExtBlob = FieldElementsPerExtBlob / FieldElementsPerCell

	// BytesPerFieldElement is the canonical big-endian scalar encoding width.
	BytesPerFieldElement = 32

	// BytesPerBlob is the wire size of a blob.
	BytesPerBlob = FieldElementsPerBlob * BytesPerFieldElement

	// BytesPerCell is the wire size of a cell.
	BytesPerCell = FieldElementsPerCell * BytesPerFieldElement

	// BytesPerCommitment is the compressed G1 encoding width.
	BytesPerCommitment = 48

	// BytesPerProof is the compressed G1 encoding width of an opening proof.
	BytesPerProof = 48

	// BytesPerG2Point is the compressed G2 encoding width.
	BytesPerG2Point = 96

	// MinCellsForRecovery is the minimum number of distinct valid cells
	// required to reconstruct a blob (half the extended cell count).
	MinCellsForRecovery = CellsPerExtBlob / 2

	// NumG2Points is the number of G2 monomial points in the trusted setup
	// (degree-64 commitment to tau, one more than FieldElementsPerCell).
	NumG2Points = FieldElementsPerCell + 1

	// FiatShamirDomain is the domain-separation tag absorbed first by the
	// blob evaluation-challenge and blob batch-challenge transcripts (the
	// cell batch verifier's transcript uses RandomChallengeDomain).
	FiatShamirDomain = "FSBLOBVERIFY_V1_"

	// RandomChallengeDomain separates the per-cell {r_i} draws used by the
	// batch cell-proof verifier from the teacher's single-blob tag.
	RandomChallengeDomain = "RCKZGCBATCH___V1_"
)
