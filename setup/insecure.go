package setup

import (
	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/params"
	"github.com/ethpandaops/go-das-kzg/poly"
)

// NewInsecureTestSetup derives a trusted setup directly from a known
// scalar tau, by computing powers of tau in G1 and G2 and transforming
// the G1 powers into Lagrange form via an inverse FFT over G1.
//
// This is the standard "toxic waste known to the caller" construction
// every KZG test suite uses in place of a real multi-party ceremony
// (mirrored, for instance, by gnark-crypto's own kzg.NewSRS test
// helper): correct, real curve arithmetic, but insecure, since whoever
// calls this function learns tau and can forge proofs. It must never be
// used to back a production DASContext; NewSetupFromJSON/NewSetupFromFile
// load an actual ceremony's output instead.
func NewInsecureTestSetup(tau bls.Fr) (*Setup, error) {
	domainN, err := poly.NewDomain(params.FieldElementsPerBlob)
	if err != nil {
		return nil, err
	}

	monomialG1 := make([]bls.G1Point, params.FieldElementsPerBlob)
	g1Gen := bls.G1Generator()
	power := bls.FrOne()
	for i := range monomialG1 {
		monomialG1[i] = bls.G1ScalarMul(&g1Gen, &power)
		power.Mul(&power, &tau)
	}

	g2Monomial := make([]bls.G2Point, params.NumG2Points)
	g2Gen := bls.G2Generator()
	power = bls.FrOne()
	for i := range g2Monomial {
		g2Monomial[i] = bls.G2ScalarMul(&g2Gen, &power)
		power.Mul(&power, &tau)
	}

	lagrangeG1, err := domainN.InverseFFTG1(monomialG1)
	if err != nil {
		return nil, err
	}

	return newSetup(lagrangeG1, g2Monomial)
}
