// Package revrng implements a reversible MT-19937 pseudo-random number
// generator. A caller seeds the generator, draws a sequence of values, and
// at any point may flip direction so that subsequent draws replay the
// just-produced sequence in exact reverse order.
//
// The design follows Matsumoto and Nishimura's MT-19937
// (http://www.math.sci.hiroshima-u.ac.jp/~m-mat/MT/ARTICLES/mt.pdf), with
// a closed-form inverse of the twist step that makes the generator's
// output stream reversible.
package revrng

// keyLength is the MT-19937 state size, N in the reference paper.
const keyLength = 624

// midOffset is M in the reference paper.
const midOffset = 397

// State is the mutable state of a reversible MT-19937 generator. It is a
// plain value type: it owns no external resources, performs no I/O, and
// may be copied by value to snapshot it for later replay (nothing in it
// aliases memory outside the struct itself).
//
// The zero value is not valid; use NewState.
type State struct {
	seed    uint32
	key     [keyLength]uint32
	pos     int
	reverse bool
	nTwists int
}

// NewState creates a reversible MT-19937 generator seeded from a single
// 32-bit integer, using the canonical MT-19937 seeding recurrence.
func NewState(seed uint32) *State {
	s := &State{seed: seed}
	s.key[0] = seed
	for p := 1; p < keyLength; p++ {
		s.key[p] = 1812433253*(s.key[p-1]^(s.key[p-1]>>30)) + uint32(p)
	}
	s.pos = keyLength
	s.reverse = false
	s.nTwists = 0
	return s
}
