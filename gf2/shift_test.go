package gf2

import (
	"reflect"
	"strconv"
	"testing"
)

func TestCyclicShifts(t *testing.T) {
	tests := []struct {
		word     Word
		length   int
		expected []Word
	}{
		{0b0000001, 7, []Word{1, 2, 4, 8, 16, 32, 64}},
		{0b1000000, 7, []Word{64, 1, 2, 4, 8, 16, 32}},
		{0b0000011, 3, []Word{0b011, 0b110, 0b101}},
		{0, 5, []Word{0, 0, 0, 0, 0}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := CyclicShifts(test.word, test.length)
			if !reflect.DeepEqual(actual, test.expected) {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestCyclicShiftsOrder(t *testing.T) {
	// index i must equal multiplication by x^i
	word := Word(0b1100101)
	shifts := CyclicShifts(word, 7)
	for i, s := range shifts {
		if s != Rotate(word, i, 7) {
			t.Fatalf("shift %v: expected %v but found %v", i, Rotate(word, i, 7), s)
		}
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		v        Word
		by       int
		length   int
		expected Word
	}{
		{0b0000001, 1, 7, 0b0000010},
		{0b1000000, 1, 7, 0b0000001},
		{0b1000001, 3, 7, 0b0001100},
		{0b0000101, 0, 7, 0b0000101},
		{0b0000101, 7, 7, 0b0000101},
		{0b0000010, -1, 7, 0b0000001},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := Rotate(test.v, test.by, test.length)
			if actual != test.expected {
				t.Fatalf("expected %b but found %b", test.expected, actual)
			}
		})
	}
}

func TestSpanAndBurstLength(t *testing.T) {
	tests := []struct {
		v             Word
		length        int
		expectedSpan  int
		expectedBurst int
	}{
		{0, 6, 0, 0},
		{0b000001, 6, 1, 1},
		{0b100000, 6, 1, 1},
		{0b000110, 6, 2, 2},
		{0b100001, 6, 6, 2},
		{0b101000, 6, 3, 3},
		{0b110011, 6, 6, 4},
		{0b111111, 6, 6, 6},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if actual := Span(test.v, test.length); actual != test.expectedSpan {
				t.Fatalf("span: expected %v but found %v", test.expectedSpan, actual)
			}
			if actual := BurstLength(test.v, test.length); actual != test.expectedBurst {
				t.Fatalf("burst: expected %v but found %v", test.expectedBurst, actual)
			}
		})
	}
}
