package revrng

// inverseTwist reconstructs the pre-twist key from the post-twist key,
// bit-exact: inverseTwist(twist(s)) leaves key unchanged, apart from the
// key[0] seed-boundary case described below.
//
// The forward twist writes each key[i] from key[(i+M) mod N] and from the
// top bit of key[i] together with the low 31 bits of key[(i+1) mod N]
// (call that 32-bit composition y_i). y_i>>1 has a clear top bit and
// matrixA has its top bit set, so the top bit of key[i] ^ key[(i+M) mod N]
// gives the parity of y_i, and from it all 32 bits of y_i follow: the top
// bit of the pre-twist key[i] and the low 31 bits of the pre-twist
// key[(i+1) mod N]. The key[(i+M) mod N] used is the value the forward
// twist read: for i < N-M that slot is overwritten later in the forward
// sweep and has already been restored by this backward sweep; for
// i >= N-M the forward sweep had already rewritten it, so its post-twist
// value is the one needed.
//
// The forward twist never reads the low 31 bits of the pre-twist key[0].
// They are recovered from the restored key[N-1] and key[M-1], which holds
// only when the pre-twist key was itself produced by a twist.
//
// Recovery runs from i = N-1 down to i = 0, split into the same two ranges
// as twist to avoid modular indexing.
//
// inverseTwist does not itself patch the seed-boundary case (spec.md
// §4.3's "Boundary patch"): callers must overwrite key[0] with the seed
// whenever nTwists reaches 0 as a result of the call, since that is a
// caller-visible event tied to *why* the inverse twist was invoked
// (cursor underflow during sampling vs. a direction flip), not a property
// of the inverse twist itself.
func (s *State) inverseTwist() {
	// Bootstrap: reconstruct the top bit of pre-twist key[N-1], which is
	// also the top bit of y_{N-1}.
	t := s.key[keyLength-1] ^ s.key[midOffset-1]
	s.key[keyLength-1] = (t << 1) & upperMask

	i := keyLength - 2
	for ; i >= keyLength-midOffset; i-- {
		t := s.key[i] ^ s.key[i+midOffset-keyLength]
		odd := (t & upperMask) == upperMask
		if odd {
			t ^= matrixA
		}
		t = (t << 1)
		if odd {
			t |= 1
		}
		s.key[i] = t & upperMask
		s.key[i+1] |= t & lowerMask
	}
	for ; i >= 0; i-- {
		t := s.key[i] ^ s.key[i+midOffset]
		odd := (t & upperMask) == upperMask
		if odd {
			t ^= matrixA
		}
		t = (t << 1)
		if odd {
			t |= 1
		}
		s.key[i] = t & upperMask
		s.key[i+1] |= t & lowerMask
	}

	// Finalization: pour the recovered lower 31 bits into key[0].
	t = s.key[keyLength-1] ^ s.key[midOffset-1]
	odd := (t & upperMask) == upperMask
	if odd {
		t ^= matrixA
	}
	t = (t << 1)
	if odd {
		t |= 1
	}
	s.key[0] |= t & lowerMask

	s.nTwists--
}
