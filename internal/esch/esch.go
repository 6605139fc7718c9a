// Package esch implements the generic Esch sponge-style hash
// construction shared by Esch256 and Esch384: sponge absorption with a
// Feistel-style message injection, domain-separated final-block
// handling, and a multi-step squeeze phase, all driven by Sparkle.
package esch

import (
	"math/bits"

	"github.com/sparkle-suite/sparkle/internal/sparkle"
)

const (
	// Rate is the 16-byte (four-word) absorption rate shared by both
	// Esch variants.
	Rate = 16

	// domain-separation constants, XORed into the state just before the
	// final block's big Sparkle call.
	constM0 = 1 << 24
	constM1 = 2 << 24
)

// Params names one Esch hash instance.
type Params struct {
	NB         int // Sparkle branch count: 6 for Esch256, 8 for Esch384
	NSSlim     int // slim step count used between non-final blocks
	NSBig      int // big step count used after the final injection
	DigestSize int // 32 for Esch256, 48 for Esch384
}

// Hash computes the Esch digest of msg into a freshly allocated slice of
// length p.DigestSize.
func Hash(p Params, msg []byte) []byte {
	state := make([]uint32, 2*p.NB)
	slim := sparkle.Params{NB: p.NB, NS: p.NSSlim}
	big := sparkle.Params{NB: p.NB, NS: p.NSBig}

	var block [4]uint32
	for len(msg) > Rate {
		clear(block[:])
		sparkle.BytesToWordsExact(block[:], msg, Rate)
		feistelInject(state, block[:], p.NB)
		sparkle.Permute(state, slim)
		msg = msg[Rate:]
	}

	clear(block[:])
	n := len(msg)
	sparkle.BytesToWordsPartial(block[:], msg, n)
	if n < Rate {
		sparkle.PadLastBlock(block[:], n)
	}

	stateMid := p.NB
	if n == Rate {
		state[stateMid-1] ^= constM0
	} else {
		state[stateMid-1] ^= constM1
	}

	feistelInject(state, block[:], p.NB)
	sparkle.Permute(state, big)

	digest := make([]byte, p.DigestSize)
	squeezed := 0
	for squeezed < p.DigestSize {
		n := min(Rate, p.DigestSize-squeezed)
		sparkle.WordsToBytesExact(digest[squeezed:squeezed+n], state[:4], n)
		squeezed += n
		if squeezed < p.DigestSize {
			sparkle.Permute(state, slim)
		}
	}
	return digest
}

// feistelInject performs the Feistel-style message injection M_k: it
// mixes the four-word message buffer into the outer half of state ahead
// of the following Sparkle call.
func feistelInject(state []uint32, msg []uint32, nb int) {
	tx := msg[0] ^ msg[2]
	ty := msg[1] ^ msg[3]
	tx = bits.RotateLeft32(tx^(tx<<16), 16)
	ty = bits.RotateLeft32(ty^(ty<<16), 16)

	state[0] ^= msg[0] ^ ty
	state[1] ^= msg[1] ^ tx
	state[2] ^= msg[2] ^ ty
	state[3] ^= msg[3] ^ tx

	for e := 2; 2*e < nb; e++ {
		state[2*e] ^= ty
		state[2*e+1] ^= tx
	}
}
