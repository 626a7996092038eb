package revrng

import "math"

// Mersenne Twister tempering shifts and masks.
const (
	temperShiftA = 11
	temperShiftB = 7
	temperShiftC = 15
	temperShiftD = 18
	temperMaskB  = 0x9d2c5680
	temperMaskC  = 0xefc60000
)

// Constants for building a uniform double from two 32-bit words, after
// Isaku Wada: 27 bits from a, 26 bits from b.
const (
	uniformShiftA = 5
	uniformShiftB = 6
	uniformMul    = 67108864.0         // 2^26
	uniformDiv    = 9007199254740992.0 // 2^53
)

// nextWord advances the cursor by one position, twisting or inverse
// twisting when it runs off the end of key, and returns the raw
// (untempered) word at the position just consumed.
func (s *State) nextWord() uint32 {
	var y uint32
	if !s.reverse {
		if s.pos == keyLength {
			s.twist()
			s.pos = 0
		}
		y = s.key[s.pos]
		s.pos++
	} else {
		if s.pos == -1 {
			s.inverseTwist()
			s.pos = keyLength - 1
			if s.nTwists == 0 {
				s.key[0] = s.seed
			}
		}
		y = s.key[s.pos]
		s.pos--
	}
	return y
}

// temper applies the MT-19937 output tempering transform. The same
// tempering is applied on every emitted word regardless of direction, so
// it need not itself be reversed for the output stream to be reversible.
func temper(y uint32) uint32 {
	y ^= y >> temperShiftA
	y ^= (y << temperShiftB) & temperMaskB
	y ^= (y << temperShiftC) & temperMaskC
	y ^= y >> temperShiftD
	return y
}

// Uint32 draws the next 32-bit word from the generator.
func (s *State) Uint32() uint32 {
	return temper(s.nextWord())
}

// Uniform draws the next value from the continuous uniform distribution
// on [0, 1), consuming two 32-bit words.
func (s *State) Uniform() float64 {
	var a, b uint32
	if !s.reverse {
		a = s.Uint32() >> uniformShiftA
		b = s.Uint32() >> uniformShiftB
	} else {
		// Swap draw order so the pair (a, b) consumed by a forward
		// sample matches the pair consumed by its mirror reverse sample.
		b = s.Uint32() >> uniformShiftB
		a = s.Uint32() >> uniformShiftA
	}
	return (float64(a)*uniformMul + float64(b)) / uniformDiv
}

// NormalPair draws two independent values from the standard normal
// distribution (zero mean, unit variance) using the non-polar Box-Muller
// transform, consuming two uniform draws (four words).
//
// This is Strategy A of the two variants spec.md documents: it caches
// nothing between calls, which makes direction reversal a pure function
// of the two consecutive uniforms it consumes — see DESIGN.md for why
// this was chosen over the cached, rejection-sampling polar variant.
func (s *State) NormalPair() (float64, float64) {
	var u1, u2 float64
	if !s.reverse {
		u1 = s.Uniform()
		u2 = s.Uniform()
	} else {
		u2 = s.Uniform()
		u1 = s.Uniform()
	}
	r := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2
	return r * math.Cos(theta), r * math.Sin(theta)
}
