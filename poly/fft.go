package poly

import (
	"fmt"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/errs"
)

// FFT evaluates the coefficient-form polynomial coeffs (length must equal
// d.Size()) at every point of d, in natural order. coeffs is not
// mutated; the result is a freshly allocated slice.
func (d *Domain) FFT(coeffs []bls.Fr) ([]bls.Fr, error) {
	if uint64(len(coeffs)) != d.size {
		return nil, fmt.Errorf("%w: expected %d coefficients, got %d", errs.ErrLengthMismatch, d.size, len(coeffs))
	}
	vals := make([]bls.Fr, d.size)
	copy(vals, coeffs)
	d.butterfly(vals, d.generator)
	return vals, nil
}

// InverseFFT interpolates eval-form values (length must equal d.Size(),
// natural order) back into coefficient form.
func (d *Domain) InverseFFT(vals []bls.Fr) ([]bls.Fr, error) {
	if uint64(len(vals)) != d.size {
		return nil, fmt.Errorf("%w: expected %d evaluations, got %d", errs.ErrLengthMismatch, d.size, len(vals))
	}
	coeffs := make([]bls.Fr, d.size)
	copy(coeffs, vals)
	d.butterfly(coeffs, d.invGen)
	for i := range coeffs {
		coeffs[i].Mul(&coeffs[i], &d.invSize)
	}
	return coeffs, nil
}

// butterfly runs the standard iterative decimation-in-time radix-2 FFT of
// vals (in place) using root as the primitive n-th root of unity: a
// bit-reversal permutation followed by log2(n) passes of butterflies.
// Forward and inverse FFT share this routine, differing only in which
// root (omega vs omega^-1) drives the twiddle factors and whether the
// 1/n scaling is applied afterward.
func (d *Domain) butterfly(vals []bls.Fr, root bls.Fr) {
	n := len(vals)
	if n == 1 {
		return
	}
	BitReverse(vals)

	for blockLen := 2; blockLen <= n; blockLen <<= 1 {
		half := blockLen / 2
		// wLen = root^(n/blockLen): the primitive blockLen-th root of
		// unity derived from the full n-th root.
		var wLen bls.Fr
		exponent := uint64(n / blockLen)
		wLen = frPow(root, exponent)

		for start := 0; start < n; start += blockLen {
			w := bls.FrOne()
			for j := 0; j < half; j++ {
				u := vals[start+j]
				var v bls.Fr
				v.Mul(&vals[start+j+half], &w)

				var sum, diff bls.Fr
				sum.Add(&u, &v)
				diff.Sub(&u, &v)
				vals[start+j] = sum
				vals[start+j+half] = diff

				w.Mul(&w, &wLen)
			}
		}
	}
}

// Pow computes base^exp by repeated squaring.
func Pow(base bls.Fr, exp uint64) bls.Fr {
	return frPow(base, exp)
}

// frPow computes base^exp by repeated squaring.
func frPow(base bls.Fr, exp uint64) bls.Fr {
	result := bls.FrOne()
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			result.Mul(&result, &b)
		}
		b.Mul(&b, &b)
		exp >>= 1
	}
	return result
}
