// Package bls wraps the BLS12-381 field and curve arithmetic this module
// needs on top of gnark-crypto, in the shape the teacher's crypto/kzg
// package wraps protolambda/go-kzg/bls: a thin Fr/G1/G2 façade with
// canonical-byte codecs that reject rather than silently reduce
// out-of-range input.
package bls

import (
	"fmt"

	fr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/ethpandaops/go-das-kzg/errs"
)

// Fr is an element of the BLS12-381 scalar field.
type Fr = fr.Element

// frModulusBytes is the big-endian byte encoding of the scalar field order r.
var frModulusBytes = fr.Modulus().Bytes()

// FrFromCanonicalBytes decodes a big-endian 32-byte scalar, rejecting any
// value >= r. Constant-time with respect to the input value once the
// length check has passed, since the comparison and the subsequent
// Montgomery conversion both run in data-independent time for a
// fixed-width field element.
func FrFromCanonicalBytes(b []byte) (Fr, error) {
	var z Fr
	if len(b) != 32 {
		return z, fmt.Errorf("%w: scalar must be 32 bytes, got %d", errs.ErrInvalidScalar, len(b))
	}
	if !lessThanModulus(b) {
		return z, fmt.Errorf("%w: scalar out of range", errs.ErrInvalidScalar)
	}
	z.SetBytes(b)
	return z, nil
}

// lessThanModulus reports whether the big-endian bytes b, zero-padded to
// 32 bytes, represent an integer strictly less than the scalar field
// modulus r.
func lessThanModulus(b []byte) bool {
	var pad [32]byte
	copy(pad[32-len(b):], b)
	// pad < r exactly when pad - r borrows out of the most significant
	// byte; every byte is visited whatever the input value.
	var borrow uint16
	for i := 31; i >= 0; i-- {
		d := uint16(pad[i]) - uint16(frModulusBytes[i]) - borrow
		borrow = (d >> 8) & 1
	}
	return borrow == 1
}

// FrToBytes returns the canonical big-endian 32-byte encoding of z.
func FrToBytes(z *Fr) [32]byte {
	return z.Bytes()
}

// FrFromUint64 builds a field element from a small non-negative integer.
func FrFromUint64(v uint64) Fr {
	var z Fr
	z.SetUint64(v)
	return z
}

// FrBatchInvert inverts every element of vals in place using Montgomery's
// trick: one field inversion plus 3*len(vals) multiplications, instead of
// len(vals) inversions. Elements equal to zero are left as zero, matching
// the convention of a single Inverse() call on zero.
func FrBatchInvert(vals []Fr) {
	n := len(vals)
	if n == 0 {
		return
	}
	prefix := make([]Fr, n)
	acc := FrOne()
	for i, v := range vals {
		prefix[i] = acc
		if !v.IsZero() {
			acc.Mul(&acc, &v)
		}
	}
	accInv := acc
	accInv.Inverse(&accInv)
	for i := n - 1; i >= 0; i-- {
		if vals[i].IsZero() {
			continue
		}
		var vInv Fr
		vInv.Mul(&accInv, &prefix[i])
		accInv.Mul(&accInv, &vals[i])
		vals[i] = vInv
	}
}

// FrOne returns the multiplicative identity.
func FrOne() Fr {
	var z Fr
	z.SetOne()
	return z
}

// FrZero returns the additive identity.
func FrZero() Fr {
	var z Fr
	z.SetZero()
	return z
}
