package revrng

// Reverse toggles the generator's direction. After calling Reverse, the
// next value drawn is exactly equal to the last value drawn before the
// call; the second value drawn equals the penultimate, and so on.
// Calling Reverse again switches back to forward order under the same
// rule: the next value repeats the last value drawn in reverse, and the
// values after it are those the reverse draws passed over, then fresh ones.
//
// This is the Strategy A flip (spec.md §4.6): there is no Gaussian cache
// term, since NormalPair caches nothing between calls.
func (s *State) Reverse() {
	if !s.reverse {
		s.reverse = true
		s.pos--
		if s.pos == -1 {
			s.inverseTwist()
			s.pos = keyLength - 1
			if s.nTwists == 0 {
				s.key[0] = s.seed
			}
		}
		return
	}

	s.reverse = false
	s.pos++
	if s.pos == keyLength {
		s.twist()
		s.pos = 0
	}
}
