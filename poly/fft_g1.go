package poly

import (
	"fmt"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/errs"
)

// FFTG1 evaluates a "polynomial" with G1-point coefficients at every
// point of d, in natural order. G1 is an Fr-module under scalar
// multiplication, so the same butterfly network that transforms Fr
// coefficients into Fr evaluations transforms G1 coefficients into G1
// evaluations: every "coefficient * twiddle" multiplication becomes a
// scalar multiplication of a G1 point by an Fr twiddle factor. This is
// how the monomial-basis SRS is recovered from the Lagrange-basis SRS
// (§4.E), and how FK20 evaluates its aggregated proof polynomial at
// every coset simultaneously (§4.D).
func (d *Domain) FFTG1(coeffs []bls.G1Point) ([]bls.G1Point, error) {
	if uint64(len(coeffs)) != d.size {
		return nil, fmt.Errorf("%w: expected %d G1 coefficients, got %d", errs.ErrLengthMismatch, d.size, len(coeffs))
	}
	vals := make([]bls.G1Point, d.size)
	copy(vals, coeffs)
	d.butterflyG1(vals, d.generator)
	return vals, nil
}

// InverseFFTG1 is the G1 analogue of InverseFFT.
func (d *Domain) InverseFFTG1(vals []bls.G1Point) ([]bls.G1Point, error) {
	if uint64(len(vals)) != d.size {
		return nil, fmt.Errorf("%w: expected %d G1 evaluations, got %d", errs.ErrLengthMismatch, d.size, len(vals))
	}
	coeffs := make([]bls.G1Point, d.size)
	copy(coeffs, vals)
	d.butterflyG1(coeffs, d.invGen)
	for i := range coeffs {
		coeffs[i] = bls.G1ScalarMul(&coeffs[i], &d.invSize)
	}
	return coeffs, nil
}

func (d *Domain) butterflyG1(vals []bls.G1Point, root bls.Fr) {
	n := len(vals)
	if n == 1 {
		return
	}
	BitReverseG1(vals)

	for blockLen := 2; blockLen <= n; blockLen <<= 1 {
		half := blockLen / 2
		wLen := frPow(root, uint64(n/blockLen))

		for start := 0; start < n; start += blockLen {
			w := bls.FrOne()
			for j := 0; j < half; j++ {
				u := vals[start+j]
				v := bls.G1ScalarMul(&vals[start+j+half], &w)

				sum := bls.G1Add(&u, &v)
				diff := bls.G1Sub(&u, &v)
				vals[start+j] = sum
				vals[start+j+half] = diff

				w.Mul(&w, &wLen)
			}
		}
	}
}
