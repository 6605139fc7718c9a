// Package esch384 implements the Esch384 lightweight hash function, a
// binding of the generic Esch sponge core to Sparkle512 (nb=8), slim
// step count 8, big step count 12, producing a 48-byte digest.
package esch384

import "github.com/sparkle-suite/sparkle/internal/esch"

// Size is the length, in bytes, of an Esch384 digest.
const Size = 48

var params = esch.Params{NB: 8, NSSlim: 8, NSBig: 12, DigestSize: Size}

// Sum384 returns the Esch384 digest of msg.
func Sum384(msg []byte) [Size]byte {
	var out [Size]byte
	copy(out[:], esch.Hash(params, msg))
	return out
}
