package bls

import bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

// MultiPairingCheck reports whether prod_i e(g1s[i], g2s[i]) == 1 in GT,
// computed via a single shared Miller loop accumulation and one final
// exponentiation, per §4.A's multi-pairing requirement.
func MultiPairingCheck(g1s []G1Point, g2s []G2Point) (bool, error) {
	if len(g1s) == 0 {
		return true, nil
	}
	return bls12381.PairingCheck(g1s, g2s)
}
