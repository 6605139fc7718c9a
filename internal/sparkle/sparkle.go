package sparkle

// roundConstants is the fixed eight-word table shared by every Sparkle
// instance, both for the per-step constant XORed into the state and for
// the per-lane constants consumed by Alzette.
var roundConstants = [8]uint32{
	0xB7E15162, 0xBF715880, 0x38B4DA56, 0x324E7738,
	0xBB1185EB, 0x4F7C7B57, 0xCFBFA1C8, 0xC2B3293D,
}

// Params names a single legal (branch count, step count) Sparkle instance.
type Params struct {
	NB int // number of branches: 4, 6, or 8
	NS int // number of steps
}

var legalParams = map[Params]bool{
	{NB: 4, NS: 7}:  true,
	{NB: 4, NS: 10}: true,
	{NB: 6, NS: 7}:  true,
	{NB: 6, NS: 11}: true,
	{NB: 8, NS: 8}:  true,
	{NB: 8, NS: 12}: true,
}

// Valid reports whether p names one of the six legal Sparkle instances.
func (p Params) Valid() bool {
	return legalParams[p]
}

// Permute applies the Sparkle<nb, ns> permutation in place to state, which
// must hold exactly 2*p.NB words. It panics if p is not one of the six
// legal (nb, ns) pairs, since that is an invariant breach rather than a
// caller input to validate.
func Permute(state []uint32, p Params) {
	if !p.Valid() {
		panic("sparkle: illegal (nb, ns) pair")
	}
	if len(state) != 2*p.NB {
		panic("sparkle: state length does not match nb")
	}

	for i := range p.NS {
		state[1] ^= roundConstants[i%8]
		state[3] ^= uint32(i)

		for j := range p.NB {
			state[2*j], state[2*j+1] = alzette(state[2*j], state[2*j+1], roundConstants[j%8])
		}

		diffuse(state, p.NB)
	}
}
