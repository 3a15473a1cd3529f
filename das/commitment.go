package das

import (
	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/params"
	"github.com/ethpandaops/go-das-kzg/setup"
)

// BlobToKZGCommitment implements blob_to_kzg_commitment: the blob's
// scalars, read directly as Lagrange-basis evaluations, are committed by
// a single linear combination against the setup's Lagrange-form G1 SRS -
// no FFT needed, since a blob is already in the basis the commitment
// scheme expects.
func (c *Context) BlobToKZGCommitment(blob []byte) ([params.BytesPerCommitment]byte, error) {
	evals, err := setup.BlobToScalars(blob)
	if err != nil {
		return [params.BytesPerCommitment]byte{}, err
	}
	commitment, err := bls.G1LinComb(c.setup.LagrangeG1(), evals)
	if err != nil {
		return [params.BytesPerCommitment]byte{}, err
	}
	return setup.CommitmentToBytes(&commitment), nil
}
