package sparkle_test

import (
	"testing"

	"github.com/sparkle-suite/sparkle/esch256"
	"github.com/sparkle-suite/sparkle/esch384"
	"github.com/sparkle-suite/sparkle/internal/sparkle"
	"github.com/sparkle-suite/sparkle/permute"
	"github.com/sparkle-suite/sparkle/schwaemm128128"
	"github.com/sparkle-suite/sparkle/schwaemm256128"
)

// BenchmarkPermute compares the three Sparkle permutation widths against
// each other at their big step counts, plus Sparkle256 at its slim step
// count.
func BenchmarkPermute(b *testing.B) {
	b.Run("Sparkle256/big", func(b *testing.B) {
		state := [8]uint32{0, 1, 2, 3, 4, 5, 6, 7}
		b.ReportAllocs()
		for b.Loop() {
			permute.Permute256(&state)
		}
	})
	b.Run("Sparkle256/slim", func(b *testing.B) {
		state := [8]uint32{0, 1, 2, 3, 4, 5, 6, 7}
		b.ReportAllocs()
		for b.Loop() {
			permute.Permute256Slim(&state)
		}
	})
	b.Run("Sparkle384/big", func(b *testing.B) {
		state := [12]uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
		b.ReportAllocs()
		for b.Loop() {
			permute.Permute384(&state)
		}
	})
	b.Run("Sparkle512/big", func(b *testing.B) {
		var state [16]uint32
		for i := range state {
			state[i] = uint32(i)
		}
		b.ReportAllocs()
		for b.Loop() {
			permute.Permute512(&state)
		}
	})
}

func BenchmarkHashScheme(b *testing.B) {
	b.Run("Esch256", func(b *testing.B) {
		for _, length := range lengths {
			b.Run(length.name, func(b *testing.B) {
				input := make([]byte, length.n)
				b.ReportAllocs()
				b.SetBytes(int64(len(input)))
				for b.Loop() {
					esch256.Sum256(input)
				}
			})
		}
	})
	b.Run("Esch384", func(b *testing.B) {
		for _, length := range lengths {
			b.Run(length.name, func(b *testing.B) {
				input := make([]byte, length.n)
				b.ReportAllocs()
				b.SetBytes(int64(len(input)))
				for b.Loop() {
					esch384.Sum384(input)
				}
			})
		}
	})
}

func BenchmarkAEADScheme(b *testing.B) {
	key128 := make([]byte, schwaemm128128.KeySize)
	nonce128 := make([]byte, schwaemm128128.NonceSize)
	ad := make([]byte, 32)

	b.Run("Schwaemm128-128", func(b *testing.B) {
		for _, length := range lengths {
			b.Run(length.name, func(b *testing.B) {
				pt := make([]byte, length.n)
				b.ReportAllocs()
				b.SetBytes(int64(len(pt)))
				for b.Loop() {
					_, _, err := schwaemm128128.Encrypt(key128, nonce128, ad, pt)
					if err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	})

	key256 := make([]byte, schwaemm256128.KeySize)
	nonce256 := make([]byte, schwaemm256128.NonceSize)

	b.Run("Schwaemm256-128", func(b *testing.B) {
		for _, length := range lengths {
			b.Run(length.name, func(b *testing.B) {
				pt := make([]byte, length.n)
				b.ReportAllocs()
				b.SetBytes(int64(len(pt)))
				for b.Loop() {
					_, _, err := schwaemm256128.Encrypt(key256, nonce256, ad, pt)
					if err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	})
}

// BenchmarkSparklePermuteOnly isolates the raw internal/sparkle permutation
// entry point, bypassing the permute package's parameter dispatch, for
// comparison against the dispatch-wrapped figures above.
func BenchmarkSparklePermuteOnly(b *testing.B) {
	state := make([]uint32, 16)
	for i := range state {
		state[i] = uint32(i)
	}
	params := sparkle.Params{NB: 8, NS: 12}
	b.ReportAllocs()
	for b.Loop() {
		sparkle.Permute(state, params)
	}
}

var lengths = []struct {
	name string
	n    int
}{
	{"16B", 16},
	{"64B", 64},
	{"256B", 256},
	{"1KiB", 1024},
	{"16KiB", 16 * 1024},
}
