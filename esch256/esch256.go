// Package esch256 implements the Esch256 lightweight hash function, a
// binding of the generic Esch sponge core to Sparkle384 (nb=6), slim
// step count 7, big step count 11, producing a 32-byte digest.
package esch256

import "github.com/sparkle-suite/sparkle/internal/esch"

// Size is the length, in bytes, of an Esch256 digest.
const Size = 32

var params = esch.Params{NB: 6, NSSlim: 7, NSBig: 11, DigestSize: Size}

// Sum256 returns the Esch256 digest of msg.
func Sum256(msg []byte) [Size]byte {
	var out [Size]byte
	copy(out[:], esch.Hash(params, msg))
	return out
}
