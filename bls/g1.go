package bls

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/ethpandaops/go-das-kzg/errs"
)

// G1Point is a point on the BLS12-381 G1 subgroup, in affine form.
type G1Point = bls12381.G1Affine

// g1GenAff, g1GenJac cache the standard generator so callers never need to
// re-derive it.
var (
	g1GenAff bls12381.G1Affine
	g1GenJac bls12381.G1Jac
)

func init() {
	g1GenJac, _, g1GenAff, _ = bls12381.Generators()
}

// G1Generator returns the standard G1 generator point.
func G1Generator() G1Point {
	return g1GenAff
}

// G1Identity returns the point at infinity, the additive identity of G1.
func G1Identity() G1Point {
	var r G1Point
	r.FromJacobian(new(bls12381.G1Jac))
	return r
}

// G1FromCompressed decodes a 48-byte compressed G1 point, rejecting
// non-canonical encodings, points off the curve, and points outside the
// prime-order subgroup.
func G1FromCompressed(b []byte) (G1Point, error) {
	var p G1Point
	if len(b) != 48 {
		return p, fmt.Errorf("%w: G1 point must be 48 bytes, got %d", errs.ErrInvalidCommitment, len(b))
	}
	if _, err := p.SetBytes(b); err != nil {
		return p, fmt.Errorf("%w: %v", errs.ErrInvalidCommitment, err)
	}
	if !p.IsInSubGroup() {
		return p, fmt.Errorf("%w: point not in G1 subgroup", errs.ErrInvalidCommitment)
	}
	return p, nil
}

// G1ToCompressed returns the 48-byte compressed encoding of p.
func G1ToCompressed(p *G1Point) [48]byte {
	return p.Bytes()
}

// G1Add returns a+b as a new affine point.
func G1Add(a, b *G1Point) G1Point {
	var aj, bj, rj bls12381.G1Jac
	aj.FromAffine(a)
	bj.FromAffine(b)
	rj.Set(&aj).AddAssign(&bj)
	var r G1Point
	r.FromJacobian(&rj)
	return r
}

// G1Sub returns a-b as a new affine point.
func G1Sub(a, b *G1Point) G1Point {
	var aj, bj, rj bls12381.G1Jac
	aj.FromAffine(a)
	bj.FromAffine(b)
	rj.Set(&aj).SubAssign(&bj)
	var r G1Point
	r.FromJacobian(&rj)
	return r
}

// G1ScalarMul returns s*p.
func G1ScalarMul(p *G1Point, s *Fr) G1Point {
	var sBig big.Int
	s.BigInt(&sBig)
	var pj, rj bls12381.G1Jac
	pj.FromAffine(p)
	rj.ScalarMultiplication(&pj, &sBig)
	var r G1Point
	r.FromJacobian(&rj)
	return r
}

// G1LinComb computes sum_i scalars[i]*points[i] via a single windowed
// multi-scalar multiplication. This is the "specialized MSM
// implementation" the performance contract in §4.A of the spec requires,
// rather than a naive loop of G1ScalarMul+G1Add.
func G1LinComb(points []G1Point, scalars []Fr) (G1Point, error) {
	if len(points) != len(scalars) {
		return G1Point{}, fmt.Errorf("%w: %d points vs %d scalars", errs.ErrLengthMismatch, len(points), len(scalars))
	}
	var r G1Point
	if len(points) == 0 {
		r.FromJacobian(new(bls12381.G1Jac)) // point at infinity
		return r, nil
	}
	if _, err := r.MultiExp(points, scalars, multiExpConfig()); err != nil {
		return G1Point{}, fmt.Errorf("%w: msm: %v", errs.ErrInternal, err)
	}
	return r, nil
}
