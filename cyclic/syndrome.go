package cyclic

import "github.com/jaredallen/cycliccode/gf2"

// Syndromes computes the syndrome of every cyclic shift of received
// against the parity check matrix. Index i of the result is the syndrome
// of x^i * received mod (x^n - 1); the decoder's error re-alignment pairs
// shift index with syndrome index, so the order must not change.
func (c *Code) Syndromes(received gf2.Word) []gf2.Word {
	shifts := gf2.CyclicShifts(received, c.codeLength)

	syndromes := make([]gf2.Word, len(shifts))
	for i, shift := range shifts {
		syndromes[i] = c.syndrome(shift)
	}
	return syndromes
}

// syndrome XORs together the parity transpose rows selected by the word's
// set bits, bit p choosing row ReverseIndex(p, n).
func (c *Code) syndrome(word gf2.Word) gf2.Word {
	var syn gf2.Word
	rows := len(c.parityTranspose)
	for place := 0; place < rows; place++ {
		if word>>place&1 == 1 {
			syn ^= c.parityTranspose[gf2.ReverseIndex(place, rows)]
		}
	}
	return syn
}
