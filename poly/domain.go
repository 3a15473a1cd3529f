// Package poly implements the polynomial and domain layer of §4.B:
// coefficient/evaluation-form polynomials, roots-of-unity domains,
// forward/inverse FFT, coset FFT, and bit-reversal. It is built directly
// on bls.Fr arithmetic rather than a borrowed FFT package, since the
// domain/FFT layer is itself one of the components this module exists to
// implement (spec.md §4.B), generalizing the single fixed-size root of
// unity computation in the teacher's crypto/kzg/util.go (initDomain) to
// an arbitrary power-of-two domain size.
package poly

import (
	"fmt"
	"math/big"

	fr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/ethpandaops/go-das-kzg/bls"
	"github.com/ethpandaops/go-das-kzg/errs"
)

// primitiveRootCandidate is the smallest value known to generate the full
// multiplicative group of the BLS12-381 scalar field; the teacher's
// util.go uses the same constant to derive the EIP-4844 domain.
var primitiveRootCandidate = big.NewInt(7)

// Domain is the multiplicative subgroup {omega^0, ..., omega^(size-1)}
// of Fr, where omega is a primitive size-th root of unity.
type Domain struct {
	size       uint64
	generator  bls.Fr // omega
	invGen     bls.Fr // omega^-1
	invSize    bls.Fr // size^-1
	bitRevPerm []uint32
}

// NewDomain builds the domain of the given power-of-two size. size must
// divide r-1 (true for every power of two up to 2^32, BLS12-381's
// 2-adicity), otherwise no primitive root of that order exists and the
// result would silently alias a smaller domain.
func NewDomain(size uint64) (*Domain, error) {
	if size == 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: domain size %d is not a power of two", errs.ErrInternal, size)
	}
	rMinus1 := new(big.Int).Sub(frModulus(), big.NewInt(1))
	exp := new(big.Int).Div(rMinus1, new(big.Int).SetUint64(size))
	if new(big.Int).Mul(exp, new(big.Int).SetUint64(size)).Cmp(rMinus1) != 0 {
		return nil, fmt.Errorf("%w: domain size %d does not divide r-1", errs.ErrInternal, size)
	}

	var gen bls.Fr
	gen.Exp(frFromBigInt(primitiveRootCandidate), exp)

	var invGen bls.Fr
	invGen.Inverse(&gen)

	var invSize bls.Fr
	invSize.SetUint64(size)
	invSize.Inverse(&invSize)

	return &Domain{
		size:       size,
		generator:  gen,
		invGen:     invGen,
		invSize:    invSize,
		bitRevPerm: bitReversalPermutationIndices(size),
	}, nil
}

// Size returns the domain's element count.
func (d *Domain) Size() uint64 { return d.size }

// Generator returns omega.
func (d *Domain) Generator() bls.Fr { return d.generator }

// Elements returns omega^0, ..., omega^(size-1) in natural order. Callers
// on a hot path should prefer FFT over materializing this.
func (d *Domain) Elements() []bls.Fr {
	out := make([]bls.Fr, d.size)
	cur := bls.FrOne()
	for i := range out {
		out[i] = cur
		cur.Mul(&cur, &d.generator)
	}
	return out
}

func frModulus() *big.Int {
	return fr.Modulus()
}

func frFromBigInt(v *big.Int) bls.Fr {
	var z bls.Fr
	z.SetBigInt(v)
	return z
}
