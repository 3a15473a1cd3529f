package setup

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/params"
)

// Transcript is a SHA-256 sponge used to derive verifier challenges via
// the Fiat-Shamir transform: every value the verifier will later check
// against is absorbed before any challenge is squeezed, so a prover
// cannot choose inputs after seeing the challenge they'll be judged
// against. This generalizes the teacher's HashToBLSField (crypto/kzg/kzg_new.go),
// which hard-codes one domain tag and one shape of input, into a
// reusable sponge the DAS façade can drive with whatever it needs to
// absorb for a given batch.
type Transcript struct {
	h hash.Hash
}

// NewTranscript starts a transcript with the given domain-separation
// tag absorbed first, exactly as the teacher's
// FIAT_SHAMIR_PROTOCOL_DOMAIN constant is written before anything else.
func NewTranscript(domainTag string) *Transcript {
	t := &Transcript{h: sha256.New()}
	t.h.Write([]byte(domainTag))
	return t
}

// WriteUint64 absorbs a big-endian uint64, used for length-prefixing
// variable-sized inputs the way the teacher's writer absorbs
// params.FieldElementsPerBlob and the polynomial count.
func (t *Transcript) WriteUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	t.h.Write(b[:])
}

// WriteFr absorbs the canonical 32-byte encoding of a scalar.
func (t *Transcript) WriteFr(f *bls.Fr) {
	b := bls.FrToBytes(f)
	t.h.Write(b[:])
}

// WriteG1 absorbs the compressed encoding of a G1 point.
func (t *Transcript) WriteG1(p *bls.G1Point) {
	b := bls.G1ToCompressed(p)
	t.h.Write(b[:])
}

// Challenge squeezes the transcript into a single scalar, reducing the
// 32-byte digest modulo r (gnark-crypto's Fr.SetBytes convention).
// Squeezing does not reset the sponge: absorbing further input after a
// Challenge call mixes it into any subsequent squeeze, matching the
// standard Fiat-Shamir sponge construction.
func (t *Transcript) Challenge() bls.Fr {
	digest := t.h.Sum(nil)
	var z bls.Fr
	z.SetBytes(digest)
	return z
}

// ComputePowers implements compute_powers from the EIP-4844/EIP-7594
// consensus specs: r^0, r^1, ..., r^(n-1). Ported directly from the
// teacher's crypto/kzg/kzg_new.go ComputePowers, generalized from
// protolambda/go-kzg/bls's Fr ops to gnark-crypto's.
func ComputePowers(r bls.Fr, n int) []bls.Fr {
	powers := make([]bls.Fr, n)
	current := bls.FrOne()
	for i := range powers {
		powers[i] = current
		current.Mul(&current, &r)
	}
	return powers
}

// ComputeCellChallenges derives the batch cell-proof verifier's
// per-tuple weights: a single Fiat-Shamir challenge r over every
// (commitment, cell index, cell) triple, expanded to powers of r. This
// is the multi-tuple generalization of the teacher's
// ComputeAggregatedPolyAndCommitment challenge derivation.
func ComputeCellChallenges(commitments []bls.G1Point, cellIndices []uint64, cells [][]bls.Fr) []bls.Fr {
	t := NewTranscript(params.RandomChallengeDomain)
	t.WriteUint64(params.FieldElementsPerBlob)
	t.WriteUint64(params.FieldElementsPerCell)
	t.WriteUint64(uint64(len(commitments)))
	for i := range commitments {
		t.WriteG1(&commitments[i])
		t.WriteUint64(cellIndices[i])
		for j := range cells[i] {
			t.WriteFr(&cells[i][j])
		}
	}
	r := t.Challenge()
	return ComputePowers(r, len(commitments))
}

// ComputeBlobEvaluationChallenge derives the point z at which
// ComputeBlobKZGProof/VerifyBlobKZGProof open a blob's polynomial,
// generalizing the teacher's HashToBLSField to this module's Fr type.
func ComputeBlobEvaluationChallenge(blob []bls.Fr, commitment bls.G1Point) bls.Fr {
	t := NewTranscript(params.FiatShamirDomain)
	t.WriteUint64(params.FieldElementsPerBlob)
	for i := range blob {
		t.WriteFr(&blob[i])
	}
	t.WriteG1(&commitment)
	return t.Challenge()
}

// ComputeBlobBatchChallenges derives the per-blob random linear
// combination weights for VerifyBlobKZGProofBatch, the Fiat-Shamir
// replacement for the teacher's BlobsBatch.join, which drew its
// combination scalar from bls.RandomFr() (true randomness) rather than
// a transcript - fine for an interactive/local batch accumulator, but a
// stateless batch verifier needs a deterministic, replayable challenge
// derived from its own inputs instead.
func ComputeBlobBatchChallenges(commitments, proofs []bls.G1Point, zs, ys []bls.Fr) []bls.Fr {
	t := NewTranscript(params.FiatShamirDomain)
	t.WriteUint64(uint64(len(commitments)))
	for i := range commitments {
		t.WriteG1(&commitments[i])
		t.WriteG1(&proofs[i])
		t.WriteFr(&zs[i])
		t.WriteFr(&ys[i])
	}
	r := t.Challenge()
	return ComputePowers(r, len(commitments))
}
