package sparkle

import "math/bits"

// diffuse applies the ℒnb linear diffusion layer in place to a state of
// 2*nb words: a Feistel-style mix across the outer half followed by a
// rotate-by-one-branch swap of the outer and inner halves. nb is the
// branch count (4, 6, or 8); the same shape serves ℒ4, ℒ6, and ℒ8.
func diffuse(s []uint32, nb int) {
	half := nb / 2

	var tx, ty uint32
	for j := range half {
		tx ^= s[2*j]
		ty ^= s[2*j+1]
	}
	tx = bits.RotateLeft32(tx^(tx<<16), 16)
	ty = bits.RotateLeft32(ty^(ty<<16), 16)

	for j := range half {
		s[nb+2*j] ^= s[2*j] ^ ty
		s[nb+2*j+1] ^= s[2*j+1] ^ tx
	}

	// Branch permutation: the new outer half is the inner half rotated
	// left by one branch (one pair of words); the new inner half is the
	// old outer half, unrotated.
	var outer, inner [8]uint32 // max nb is 8
	copy(outer[:nb], s[:nb])
	copy(inner[:nb], s[nb:2*nb])

	for j := range half {
		src := (j + 1) % half
		s[2*j] = inner[2*src]
		s[2*j+1] = inner[2*src+1]
	}
	copy(s[nb:2*nb], outer[:nb])
}
