package gf2

import "math/bits"

// Word is a bit-packed vector over GF(2). Bit i holds the coefficient of
// x^i, so bit 0 is the constant term. Addition is XOR and multiplication
// is AND.
type Word uint64

// MaxLen is the number of usable bit positions in a Word.
const MaxLen = 64

// Mask returns a Word with the low length bits set.
func Mask(length int) Word {
	if length >= MaxLen {
		return ^Word(0)
	}
	return Word(1)<<length - 1
}

// Dot computes the GF(2) dot product of a and b over the low length bits.
func Dot(a, b Word, length int) int {
	return bits.OnesCount64(uint64(a&b&Mask(length))) & 1
}

// Weight returns the Hamming weight of v restricted to the low length bits.
func Weight(v Word, length int) int {
	return bits.OnesCount64(uint64(v & Mask(length)))
}

// HammingDistance returns the number of bit positions where a and b differ,
// restricted to the low length bits.
func HammingDistance(a, b Word, length int) int {
	return Weight(a^b, length)
}

// Pow computes base**exponent by repeated multiplication. Pow(b,0) == 1.
func Pow(base, exponent uint) uint64 {
	result := uint64(1)
	for i := uint(0); i < exponent; i++ {
		result *= uint64(base)
	}
	return result
}

// ReverseIndex maps index i to n-1-i. The transpose, encoder and syndrome
// computations all index rows high-degree-first while bit 0 stays the
// lowest-degree coefficient; this helper is the single home for that
// convention.
func ReverseIndex(i, n int) int {
	return n - 1 - i
}
