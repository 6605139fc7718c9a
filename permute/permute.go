// Package permute exposes the bare Sparkle permutation for diagnostics
// and testing (spec §6's sparkle_permute), bound to its six legal
// (branch count, step count) instances.
package permute

import "github.com/sparkle-suite/sparkle/internal/sparkle"

// Permute256 applies Sparkle256 with its big step count (nb=4, ns=10)
// in place to an 8-word state.
func Permute256(state *[8]uint32) {
	sparkle.Permute(state[:], sparkle.Params{NB: 4, NS: 10})
}

// Permute256Slim applies Sparkle256 with its slim step count (nb=4, ns=7).
func Permute256Slim(state *[8]uint32) {
	sparkle.Permute(state[:], sparkle.Params{NB: 4, NS: 7})
}

// Permute384 applies Sparkle384 with its big step count (nb=6, ns=11) in
// place to a 12-word state.
func Permute384(state *[12]uint32) {
	sparkle.Permute(state[:], sparkle.Params{NB: 6, NS: 11})
}

// Permute384Slim applies Sparkle384 with its slim step count (nb=6, ns=7).
func Permute384Slim(state *[12]uint32) {
	sparkle.Permute(state[:], sparkle.Params{NB: 6, NS: 7})
}

// Permute512 applies Sparkle512 with its big step count (nb=8, ns=12) in
// place to a 16-word state.
func Permute512(state *[16]uint32) {
	sparkle.Permute(state[:], sparkle.Params{NB: 8, NS: 12})
}

// Permute512Slim applies Sparkle512 with its slim step count (nb=8, ns=8).
func Permute512Slim(state *[16]uint32) {
	sparkle.Permute(state[:], sparkle.Params{NB: 8, NS: 8})
}
