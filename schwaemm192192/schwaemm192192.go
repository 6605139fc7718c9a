// Package schwaemm192192 implements Schwaemm192-192, the Schwaemm AEAD
// variant with a 24-byte rate and 24-byte capacity, built on Sparkle384
// (nb=6).
package schwaemm192192

import (
	"fmt"

	"github.com/sparkle-suite/sparkle/internal/schwaemm"
)

const (
	// KeySize is the required key length, in bytes.
	KeySize = 24
	// NonceSize is the required nonce length, in bytes.
	NonceSize = 24
	// TagSize is the length of the authentication tag, in bytes.
	TagSize = 24
)

var params = func() schwaemm.Params {
	a0, a1, m0, m1 := schwaemm.DomainConstants(3)
	return schwaemm.Params{
		R: NonceSize, C: KeySize, BR: 6,
		NSSlim: 7, NSBig: 11,
		A0: a0, A1: a1, M0: m0, M1: m1,
	}
}()

// Encrypt seals pt under key and nonce with ad as associated data,
// returning ciphertext the same length as pt and a TagSize-byte tag.
func Encrypt(key, nonce, ad, pt []byte) (ct, tag []byte, err error) {
	if len(key) != KeySize {
		return nil, nil, fmt.Errorf("schwaemm192192: invalid key size %d, want %d", len(key), KeySize)
	}
	if len(nonce) != NonceSize {
		return nil, nil, fmt.Errorf("schwaemm192192: invalid nonce size %d, want %d", len(nonce), NonceSize)
	}
	ct, tag = schwaemm.Encrypt(params, key, nonce, ad, pt)
	return ct, tag, nil
}

// Decrypt opens ct under key and nonce with ad as associated data and
// the supplied tag. ok reports whether the tag verified; on failure pt
// is all-zero.
func Decrypt(key, nonce, tag, ad, ct []byte) (pt []byte, ok bool, err error) {
	if len(key) != KeySize {
		return nil, false, fmt.Errorf("schwaemm192192: invalid key size %d, want %d", len(key), KeySize)
	}
	if len(nonce) != NonceSize {
		return nil, false, fmt.Errorf("schwaemm192192: invalid nonce size %d, want %d", len(nonce), NonceSize)
	}
	if len(tag) != TagSize {
		return nil, false, fmt.Errorf("schwaemm192192: invalid tag size %d, want %d", len(tag), TagSize)
	}
	pt, ok = schwaemm.Decrypt(params, key, nonce, tag, ad, ct)
	return pt, ok, nil
}
