package bls

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/ethpandaops/go-das-kzg/errs"
)

// G2Point is a point on the BLS12-381 G2 subgroup, in affine form.
type G2Point = bls12381.G2Affine

var g2GenAff bls12381.G2Affine

func init() {
	_, _, _, g2GenAff = bls12381.Generators()
}

// G2Generator returns the standard G2 generator point.
func G2Generator() G2Point {
	return g2GenAff
}

// G2FromCompressed decodes a 96-byte compressed G2 point, rejecting
// non-canonical encodings, points off the curve, and non-subgroup points.
func G2FromCompressed(b []byte) (G2Point, error) {
	var p G2Point
	if len(b) != 96 {
		return p, fmt.Errorf("%w: G2 point must be 96 bytes, got %d", errs.ErrInvalidInput, len(b))
	}
	if _, err := p.SetBytes(b); err != nil {
		return p, fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
	}
	if !p.IsInSubGroup() {
		return p, fmt.Errorf("%w: point not in G2 subgroup", errs.ErrInvalidInput)
	}
	return p, nil
}

// G2ToCompressed returns the 96-byte compressed encoding of p.
func G2ToCompressed(p *G2Point) [96]byte {
	return p.Bytes()
}

// G2Sub returns a-b as a new affine point.
func G2Sub(a, b *G2Point) G2Point {
	var aj, bj, rj bls12381.G2Jac
	aj.FromAffine(a)
	bj.FromAffine(b)
	rj.Set(&aj).SubAssign(&bj)
	var r G2Point
	r.FromJacobian(&rj)
	return r
}

// G2ScalarMul returns s*p.
func G2ScalarMul(p *G2Point, s *Fr) G2Point {
	var sBig big.Int
	s.BigInt(&sBig)
	var pj, rj bls12381.G2Jac
	pj.FromAffine(p)
	rj.ScalarMultiplication(&pj, &sBig)
	var r G2Point
	r.FromJacobian(&rj)
	return r
}

// G2LinComb computes sum_i scalars[i]*points[i] with gnark-crypto's
// windowed MSM. No code in this module calls it: the verifiers pair
// against fixed points of the setup's G2 monomial array. No fixed-base
// table is kept for G2.
func G2LinComb(points []G2Point, scalars []Fr) (G2Point, error) {
	if len(points) != len(scalars) {
		return G2Point{}, fmt.Errorf("%w: %d points vs %d scalars", errs.ErrLengthMismatch, len(points), len(scalars))
	}
	var r G2Point
	if len(points) == 0 {
		r.FromJacobian(new(bls12381.G2Jac))
		return r, nil
	}
	if _, err := r.MultiExp(points, scalars, multiExpConfig()); err != nil {
		return G2Point{}, fmt.Errorf("%w: msm: %v", errs.ErrInternal, err)
	}
	return r, nil
}
