package gf2

// CyclicShifts returns the length rotations of word in the ring
// GF(2)[x]/(x^length - 1). Index i holds x^i * word: index 0 is word
// itself and each following entry advances every set bit position by one,
// wrapping at length. Callers pair shift index with syndrome index, so the
// order is part of the contract.
func CyclicShifts(word Word, length int) []Word {
	word &= Mask(length)
	shifts := make([]Word, length)
	shifts[0] = word
	for i := 1; i < length; i++ {
		shifts[i] = Rotate(shifts[i-1], 1, length)
	}
	return shifts
}

// Rotate advances every set bit position of v by `by` modulo length.
// Rotate(v, by, n) is multiplication by x^by in GF(2)[x]/(x^n - 1).
func Rotate(v Word, by, length int) Word {
	v &= Mask(length)
	by %= length
	if by < 0 {
		by += length
	}
	if by == 0 {
		return v
	}
	return (v<<by | v>>(length-by)) & Mask(length)
}

// Span returns the length of the smallest window [low,high] containing all
// set bits of v, without wrap-around. The zero word has span 0.
func Span(v Word, length int) int {
	v &= Mask(length)
	if v == 0 {
		return 0
	}
	low, high := -1, 0
	for p := 0; p < length; p++ {
		if v>>p&1 == 1 {
			if low == -1 {
				low = p
			}
			high = p
		}
	}
	return high - low + 1
}

// BurstLength returns the minimum of Span over all cyclic rotations of v:
// the length of the shortest cyclic window covering every set bit. The
// zero word has burst length 0.
func BurstLength(v Word, length int) int {
	v &= Mask(length)
	if v == 0 {
		return 0
	}
	best := length
	for i := 0; i < length; i++ {
		if s := Span(Rotate(v, i, length), length); s < best {
			best = s
		}
	}
	return best
}
