package poly

import "github.com/ethpandaops/go-das-kzg/bls"

// CosetGenerator is the fixed shift of the RS recovery coset trick of
// §4.C step 4. FK20's per-cell cosets use their own shifts (powers of
// the extended domain's generator) instead. 7 generates the full
// multiplicative group of Fr, so it lies outside every proper
// power-of-two-order subgroup used here and is never itself a root of a
// vanishing polynomial built from one of those subgroups.
var CosetGenerator = frFromBigInt(primitiveRootCandidate)

// CosetFFT evaluates coeffs (coefficient form) over the coset
// shift*Domain, by scaling coefficient i by shift^i before running the
// ordinary domain FFT.
func (d *Domain) CosetFFT(coeffs []bls.Fr, shift bls.Fr) ([]bls.Fr, error) {
	scaled := make([]bls.Fr, len(coeffs))
	power := bls.FrOne()
	for i := range coeffs {
		scaled[i].Mul(&coeffs[i], &power)
		power.Mul(&power, &shift)
	}
	return d.FFT(scaled)
}

// CosetInverseFFT interpolates values sampled over the coset shift*Domain
// back into coefficient form, undoing CosetFFT's pre-scaling with
// shift^-i afterward.
func (d *Domain) CosetInverseFFT(vals []bls.Fr, shift bls.Fr) ([]bls.Fr, error) {
	coeffs, err := d.InverseFFT(vals)
	if err != nil {
		return nil, err
	}
	var invShift bls.Fr
	invShift.Inverse(&shift)
	power := bls.FrOne()
	for i := range coeffs {
		coeffs[i].Mul(&coeffs[i], &power)
		power.Mul(&power, &invShift)
	}
	return coeffs, nil
}
