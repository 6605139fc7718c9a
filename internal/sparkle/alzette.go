package sparkle

import "math/bits"

// alzette applies the four-round Alzette ARX-box to the lane pair (x, y)
// under round constant c, returning the updated pair.
func alzette(x, y, c uint32) (uint32, uint32) {
	x += bits.RotateLeft32(y, -31)
	y ^= bits.RotateLeft32(x, -24)
	x ^= c

	x += bits.RotateLeft32(y, -17)
	y ^= bits.RotateLeft32(x, -17)
	x ^= c

	x += y
	y ^= bits.RotateLeft32(x, -31)
	x ^= c

	x += bits.RotateLeft32(y, -24)
	y ^= bits.RotateLeft32(x, -16)
	x ^= c

	return x, y
}
