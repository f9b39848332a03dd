package gf2

// Transpose converts an r x length matrix, stored as bit-packed rows, into
// a length x r matrix. Row i bit j of the input lands in output row
// ReverseIndex(j, length) at bit ReverseIndex(i, r): the output rows run
// high-degree column first. The syndrome computation depends on this exact
// arrangement, so Transpose(Transpose(m)) recovers m but neither half may
// be reordered independently.
func Transpose(matrix []Word, length int) []Word {
	r := len(matrix)
	result := make([]Word, length)

	for i, row := range matrix {
		for j := 0; j < length; j++ {
			if row>>j&1 == 1 {
				result[ReverseIndex(j, length)] |= Word(1) << ReverseIndex(i, r)
			}
		}
	}
	return result
}
