package poly

import (
	"fmt"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/errs"
)

// MulPointwise returns a*b, element by element, where a and b are two
// polynomials in evaluation form over the same domain.
func MulPointwise(a, b []bls.Fr) ([]bls.Fr, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", errs.ErrLengthMismatch, len(a), len(b))
	}
	out := make([]bls.Fr, len(a))
	for i := range a {
		out[i].Mul(&a[i], &b[i])
	}
	return out, nil
}

// DivPointwise returns a/b, element by element. Every element of b must
// be nonzero; a zero denominator at any position means the quotient
// polynomial isn't well-defined at that evaluation point and the
// operation fails with ErrDivisionByZero, per §4.B.
func DivPointwise(a, b []bls.Fr) ([]bls.Fr, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", errs.ErrLengthMismatch, len(a), len(b))
	}
	invB := make([]bls.Fr, len(b))
	copy(invB, b)
	for _, v := range invB {
		if v.IsZero() {
			return nil, errs.ErrDivisionByZero
		}
	}
	bls.FrBatchInvert(invB)
	out := make([]bls.Fr, len(a))
	for i := range a {
		out[i].Mul(&a[i], &invB[i])
	}
	return out, nil
}

// BarycentricEval evaluates a polynomial given in evaluation form over
// domain d at a point z that is assumed to lie outside d (EIP-4844's
// evaluate_polynomial_in_evaluation_form / compute_kzg_proof). If z
// happens to equal a domain element, the corresponding evaluation is
// returned directly rather than dividing by zero.
func (d *Domain) BarycentricEval(evals []bls.Fr, z bls.Fr) (bls.Fr, error) {
	if uint64(len(evals)) != d.size {
		return bls.Fr{}, fmt.Errorf("%w: expected %d evaluations, got %d", errs.ErrLengthMismatch, d.size, len(evals))
	}

	denominators := make([]bls.Fr, d.size)
	cur := bls.FrOne()
	for i := range denominators {
		denominators[i].Sub(&z, &cur)
		if denominators[i].IsZero() {
			return evals[i], nil
		}
		cur.Mul(&cur, &d.generator)
	}
	bls.FrBatchInvert(denominators)

	var sum bls.Fr
	domainElem := bls.FrOne()
	for i := range evals {
		var term bls.Fr
		term.Mul(&evals[i], &domainElem)
		term.Mul(&term, &denominators[i])
		sum.Add(&sum, &term)
		domainElem.Mul(&domainElem, &d.generator)
	}

	var zPowN, one, widthInv bls.Fr
	zPowN = frPow(z, d.size)
	one.SetOne()
	zPowN.Sub(&zPowN, &one)
	widthInv.SetUint64(d.size)
	widthInv.Inverse(&widthInv)

	sum.Mul(&sum, &zPowN)
	sum.Mul(&sum, &widthInv)
	return sum, nil
}
