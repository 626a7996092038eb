package revrng

// Mersenne Twister generation constants.
const (
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// twist advances key in place by one MT-19937 generation, refreshing all
// 624 words. The loop is split into two ranges (rather than indexing with
// a modulus) so the hot path avoids a division per word.
func (s *State) twist() {
	mag01 := [2]uint32{0, matrixA}

	i := 0
	for ; i < keyLength-midOffset; i++ {
		y := (s.key[i] & upperMask) | (s.key[i+1] & lowerMask)
		s.key[i] = s.key[i+midOffset] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; i < keyLength-1; i++ {
		y := (s.key[i] & upperMask) | (s.key[i+1] & lowerMask)
		s.key[i] = s.key[i+(midOffset-keyLength)] ^ (y >> 1) ^ mag01[y&1]
	}
	y := (s.key[keyLength-1] & upperMask) | (s.key[0] & lowerMask)
	s.key[keyLength-1] = s.key[midOffset-1] ^ (y >> 1) ^ mag01[y&1]

	s.nTwists++
}
