package gf2

import (
	"math/rand"
	"reflect"
	"strconv"
	"testing"
)

func TestTranspose(t *testing.T) {
	tests := []struct {
		matrix   []Word
		length   int
		expected []Word
	}{
		// the (7,4) Hamming parity check used throughout the decoder tests
		{[]Word{0x4e, 0x27, 0x1d}, 7, []Word{0x4, 0x2, 0x1, 0x5, 0x7, 0x6, 0x3}},
		{[]Word{0b1}, 1, []Word{0b1}},
		{[]Word{0b10, 0b01}, 2, []Word{0b10, 0b01}},
		{[]Word{0b01, 0b10}, 2, []Word{0b01, 0b10}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := Transpose(test.matrix, test.length)
			if !reflect.DeepEqual(actual, test.expected) {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestTransposeRoundTrip(t *testing.T) {
	for trial := 0; trial < 100; trial++ {
		length := rand.Intn(20) + 1
		rows := rand.Intn(length) + 1
		matrix := make([]Word, rows)
		for i := range matrix {
			matrix[i] = Word(rand.Uint64()) & Mask(length)
		}

		actual := Transpose(Transpose(matrix, length), rows)
		if !reflect.DeepEqual(actual, matrix) {
			t.Fatalf("expected %v but found %v", matrix, actual)
		}
	}
}
