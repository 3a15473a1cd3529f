package erasure

import "github.com/ethpandaops/go-das-kzg/bls"

// mulPolyFFT multiplies two coefficient-form polynomials by evaluating
// both over the shared size-2N domain, multiplying pointwise, and
// interpolating back - safe as long as deg(a)+deg(b) < 2N, which always
// holds here since the vanishing polynomial this builds never exceeds
// degree N.
func mulPolyFFT(a, b []bls.Fr) ([]bls.Fr, error) {
	_, ext, _, err := domains()
	if err != nil {
		return nil, err
	}
	n := ext.Size()
	pa := make([]bls.Fr, n)
	pb := make([]bls.Fr, n)
	copy(pa, a)
	copy(pb, b)

	ea, err := ext.FFT(pa)
	if err != nil {
		return nil, err
	}
	eb, err := ext.FFT(pb)
	if err != nil {
		return nil, err
	}
	prod := make([]bls.Fr, n)
	for i := range prod {
		prod[i].Mul(&ea[i], &eb[i])
	}
	coeffs, err := ext.InverseFFT(prod)
	if err != nil {
		return nil, err
	}
	resultLen := len(a) + len(b) - 1
	return coeffs[:resultLen], nil
}

// buildVanishingGeneral constructs, via FFT-based product accumulation
// (a balanced binary merge tree of FFT multiplications), the coefficients
// of prod_i (X - roots[i]) in ascending-degree order. This is §4.C step 1
// of the general recovery path.
func buildVanishingGeneral(roots []bls.Fr) ([]bls.Fr, error) {
	if len(roots) == 0 {
		one := bls.FrOne()
		return []bls.Fr{one}, nil
	}
	if len(roots) == 1 {
		var c0 bls.Fr
		c0.Neg(&roots[0])
		return []bls.Fr{c0, bls.FrOne()}, nil
	}
	mid := len(roots) / 2
	left, err := buildVanishingGeneral(roots[:mid])
	if err != nil {
		return nil, err
	}
	right, err := buildVanishingGeneral(roots[mid:])
	if err != nil {
		return nil, err
	}
	return mulPolyFFT(left, right)
}

// buildVanishingSmall multiplies out prod_i (X - roots[i]) directly,
// coefficient by coefficient. Used only for the block-aligned fast path,
// where len(roots) <= CellsPerExtBlob/2 = 64: small enough that a direct
// O(k^2) accumulation beats the overhead of going through an FFT, while
// still being asymptotically negligible next to the O(N log N) general
// path it replaces.
func buildVanishingSmall(roots []bls.Fr) []bls.Fr {
	coeffs := []bls.Fr{bls.FrOne()}
	for _, root := range roots {
		next := make([]bls.Fr, len(coeffs)+1)
		var negRoot bls.Fr
		negRoot.Neg(&root)
		for i, c := range coeffs {
			var t bls.Fr
			t.Mul(&c, &negRoot)
			next[i].Add(&next[i], &t)
			next[i+1].Add(&next[i+1], &c)
		}
		coeffs = next
	}
	return coeffs
}
