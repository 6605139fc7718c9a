// Package sparkle implements the Sparkle family of ARX permutations
// (Sparkle256, Sparkle384, Sparkle512) as specified by the NIST
// Lightweight Cryptography Sparkle submission: the Alzette ARX-box,
// the ℒ4/ℒ6/ℒ8 diffusion layers, and the parameterized permutation
// driver that combines them with the round constant schedule.
package sparkle

import "encoding/binary"

// BytesToWordsExact packs n bytes of src into dst as little-endian 32-bit
// words. n must be a multiple of 4 and dst must hold at least n/4 words.
func BytesToWordsExact(dst []uint32, src []byte, n int) {
	for i := 0; i < n; i += 4 {
		dst[i/4] = binary.LittleEndian.Uint32(src[i : i+4])
	}
}

// BytesToWordsPartial packs the first n bytes of src (0 <= n <= 4*len(dst))
// into the low bytes of dst's words, little-endian. The caller must have
// zero-filled dst beforehand; bytes above n within a partially-filled word
// are left untouched here.
func BytesToWordsPartial(dst []uint32, src []byte, n int) {
	full := n / 4
	BytesToWordsExact(dst, src, full*4)

	if rem := n - full*4; rem > 0 {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], dst[full])
		copy(buf[:rem], src[full*4:n])
		dst[full] = binary.LittleEndian.Uint32(buf[:])
	}
}

// WordsToBytesExact unpacks n bytes worth of src (n a multiple of 4) into
// dst as little-endian bytes.
func WordsToBytesExact(dst []byte, src []uint32, n int) {
	for i := 0; i < n; i += 4 {
		binary.LittleEndian.PutUint32(dst[i:i+4], src[i/4])
	}
}

// WordsToBytesPartial writes the full words of src below n, plus the low
// n%4 bytes of the final partial word, into dst.
func WordsToBytesPartial(dst []byte, src []uint32, n int) {
	full := n / 4
	WordsToBytesExact(dst, src, full*4)

	if rem := n - full*4; rem > 0 {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], src[full])
		copy(dst[full*4:n], buf[:rem])
	}
}

// PadLastBlock places the 0x80 padding marker at byte offset n of a
// little-endian word block, leaving everything above it untouched. The
// caller must have zero-filled block beforehand and already copied in
// the first n bytes of real data (e.g. via BytesToWordsPartial); this is
// the shared partial-block padding step used by both Esch's message
// injection and Schwaemm's AD/plaintext absorption.
func PadLastBlock(block []uint32, n int) {
	var buf [4]byte
	word := n / 4
	off := n % 4
	binary.LittleEndian.PutUint32(buf[:], block[word])
	buf[off] = 0x80
	block[word] = binary.LittleEndian.Uint32(buf[:])
}
