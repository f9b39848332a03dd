package cyclic

import (
	"errors"
	"strconv"
	"testing"

	"github.com/jaredallen/cycliccode/gf2"
)

func TestDecodeIdempotentOnCodewords(t *testing.T) {
	tests := []struct {
		code   *Code
		policy Policy
	}{
		{hamming74(t), BurstTrapping{MaxBurst: 1}},
		{hamming74(t), BoundedDistance{}},
		{fire159(t), BurstTrapping{MaxBurst: DefaultMaxBurst}},
		{fire159(t), BoundedDistance{}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			for _, cw := range test.code.Codewords() {
				actual, err := test.code.Decode(cw, test.policy)
				if err != nil {
					t.Fatalf("expected no error found :%v", err)
				}
				if actual != cw {
					t.Fatalf("expected %v but found %v", cw, actual)
				}
			}
		})
	}
}

func TestDecodeBoundedSingleBit(t *testing.T) {
	for name, c := range map[string]*Code{"hamming74": hamming74(t), "fire159": fire159(t)} {
		t.Run(name, func(t *testing.T) {
			for _, cw := range c.Codewords() {
				for b := 0; b < c.CodeLength(); b++ {
					received := cw ^ gf2.Word(1)<<b
					actual, err := c.Decode(received, BoundedDistance{})
					if err != nil {
						t.Fatalf("expected no error found :%v", err)
					}
					if actual != cw {
						t.Fatalf("codeword %v bit %v: expected %v but found %v", cw, b, cw, actual)
					}
				}
			}
		})
	}
}

func TestDecodeBurstSingleBit(t *testing.T) {
	c := hamming74(t)
	for _, cw := range c.Codewords() {
		for b := 0; b < 7; b++ {
			received := cw ^ gf2.Word(1)<<b
			actual, err := c.Decode(received, BurstTrapping{MaxBurst: 1})
			if err != nil {
				t.Fatalf("expected no error found :%v", err)
			}
			if actual != cw {
				t.Fatalf("codeword %v bit %v: expected %v but found %v", cw, b, cw, actual)
			}
		}
	}
}

// burstPatterns returns every error word whose set bits fit a cyclic
// window of at most maxLen positions.
func burstPatterns(maxLen, length int) []gf2.Word {
	seen := map[gf2.Word]bool{}
	patterns := make([]gf2.Word, 0)
	for l := 1; l <= maxLen; l++ {
		for pat := gf2.Word(1); pat < 1<<l; pat++ {
			if pat&1 == 0 {
				continue
			}
			if l > 1 && pat>>(l-1)&1 == 0 {
				continue
			}
			for pos := 0; pos < length; pos++ {
				e := gf2.Rotate(pat, pos, length)
				if !seen[e] {
					seen[e] = true
					patterns = append(patterns, e)
				}
			}
		}
	}
	return patterns
}

func TestDecodeBurstCorrection(t *testing.T) {
	c := fire159(t)
	patterns := burstPatterns(DefaultMaxBurst, 15)
	if len(patterns) != 60 {
		t.Fatalf("expected 60 burst patterns but found %v", len(patterns))
	}

	for _, cw := range c.Codewords() {
		for _, e := range patterns {
			actual, err := c.Decode(cw^e, BurstTrapping{MaxBurst: DefaultMaxBurst})
			if err != nil {
				t.Fatalf("codeword %v error %b: expected no error found :%v", cw, e, err)
			}
			if actual != cw {
				t.Fatalf("codeword %v error %b: expected %v but found %v", cw, e, cw, actual)
			}
		}
	}
}

func TestDecodeBurstFailsClosed(t *testing.T) {
	c := fire159(t)

	// every syndrome of this word spans more than DefaultMaxBurst bits
	received := gf2.Word(19)
	actual, err := c.Decode(received, BurstTrapping{MaxBurst: DefaultMaxBurst})
	if !errors.Is(err, ErrDecodeFailed) {
		t.Fatalf("expected ErrDecodeFailed but found %v", err)
	}
	if actual != received {
		t.Fatalf("expected %v but found %v", received, actual)
	}
}

func TestDecodeBoundedFailsOpen(t *testing.T) {
	c := fire159(t)

	// same word the burst decoder gives up on
	actual, err := c.Decode(19, BoundedDistance{})
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	if !c.IsCodeword(actual) {
		t.Fatalf("expected a codeword but found %v", actual)
	}
	if actual != 0 {
		t.Fatalf("expected %v but found %v", 0, actual)
	}
}

func TestDecodeBoundedAlwaysAnswers(t *testing.T) {
	c := hamming74(t)
	for w := gf2.Word(0); w < 1<<7; w++ {
		actual, err := c.Decode(w, BoundedDistance{})
		if err != nil {
			t.Fatalf("word %v: expected no error found :%v", w, err)
		}
		if !c.IsCodeword(actual) {
			t.Fatalf("word %v: expected a codeword but found %v", w, actual)
		}
	}
}

func TestNearestNeighbor(t *testing.T) {
	c := hamming74(t)
	for _, cw := range c.Codewords() {
		for b := 0; b < 7; b++ {
			actual := c.NearestNeighbor(cw ^ gf2.Word(1)<<b)
			if actual != cw {
				t.Fatalf("codeword %v bit %v: expected %v but found %v", cw, b, cw, actual)
			}
		}
	}
}

func TestNearestNeighborTieBreak(t *testing.T) {
	c := fire159(t)

	// word 3 sits at distance 2 from two codewords; the earliest in
	// codeword order wins
	actual := c.NearestNeighbor(3)
	if actual != 0 {
		t.Fatalf("expected %v but found %v", 0, actual)
	}
}
