// Package das is the façade of §4.F: the public entry points that
// compose bls, poly, erasure, fk20, and setup into the Ethereum-level
// operations a node actually calls - blob_to_kzg_commitment,
// compute_cells_and_kzg_proofs, recover_cells_and_kzg_proofs,
// verify_cell_kzg_proof_batch, plus the single-blob EIP-4844 entry
// points the teacher's crypto/kzg and crypto/agg_kzg packages expose.
//
// Unlike the teacher's crypto/kzg, which loads its trusted setup once
// into package-level globals via init(), Context takes an explicit
// *setup.Setup: any number of contexts, backed by independently loaded
// setups, can coexist in one process (no package-level singleton).
package das

import (
	"github.com/ethpandaops/go-das-kzg/erasure"
	"github.com/ethpandaops/go-das-kzg/poly"
	"github.com/ethpandaops/go-das-kzg/setup"
)

// Context is the spec's DASContext: a trusted setup plus the choice of
// how cell proofs get computed.
type Context struct {
	setup      *setup.Setup
	blobDomain *poly.Domain
	usePrecomp bool
}

// NewContext builds a Context over the given trusted setup.
//
// usePrecomp selects between fk20.ComputeAllProofs, which amortizes an
// O(N log N) FFT-based computation across all CellsPerExtBlob proofs at
// once, and fk20.ComputeSingleProofDirect, which computes each proof
// independently by synthetic division. Either way,
// ComputeCellsAndKZGProofs and RecoverCellsAndKZGProofs produce every
// cell's proof; with usePrecomp=false that is one
// ComputeSingleProofDirect call (one degree-(N-FieldElementsPerCell)
// MSM) per cell, fanned out through parallel.ParallelFor.
func NewContext(s *setup.Setup, usePrecomp bool) (*Context, error) {
	blobDomain, err := erasure.BlobDomain()
	if err != nil {
		return nil, err
	}
	return &Context{setup: s, blobDomain: blobDomain, usePrecomp: usePrecomp}, nil
}

// Close releases Context's resources. The trusted setup and FK20 tables
// it wraps are plain read-only memory with nothing to release, but
// Close is kept as part of the public surface so Context has the usual
// acquire/release lifecycle of a long-lived resource, and so a future
// caching layer (an on-disk SRS mmap, say) has somewhere to hook in
// without breaking callers.
func (c *Context) Close() {}
