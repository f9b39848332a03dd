package cyclic

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/jaredallen/cycliccode/gf2"
)

// the (7,4) cyclic Hamming code generated by g(x) = x^3+x+1
var (
	hammingGenerator   = []gf2.Word{0x58, 0x2c, 0x16, 0x0b}
	hammingParityCheck = []gf2.Word{0x4e, 0x27, 0x1d}
	hammingCodewords   = []gf2.Word{0, 11, 22, 29, 39, 44, 49, 58, 69, 78, 83, 88, 98, 105, 116, 127}
)

// the (15,9) burst correcting code generated by g(x) = x^6+x^5+x^4+x^3+1
var (
	fireGenerator = []gf2.Word{0x7900, 0x3c80, 0x1e40, 0xf20, 0x790, 0x3c8, 0x1e4, 0xf2, 0x79}
	fireParity    = []gf2.Word{0x4139, 0x21a5, 0x11eb, 0x9cc, 0x4e6, 0x273}
)

func hamming74(t *testing.T) *Code {
	t.Helper()
	c, err := New(context.Background(), hammingGenerator, hammingParityCheck, 7, 0)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	return c
}

func fire159(t *testing.T) *Code {
	t.Helper()
	c, err := New(context.Background(), fireGenerator, fireParity, 15, 0)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	return c
}

func TestNew(t *testing.T) {
	c := hamming74(t)

	if !reflect.DeepEqual(c.Codewords(), hammingCodewords) {
		t.Fatalf("expected %v but found %v", hammingCodewords, c.Codewords())
	}
	if c.MinDistance() != 3 {
		t.Fatalf("expected 3 but found %v", c.MinDistance())
	}
	if c.CodeLength() != 7 || c.MessageLength() != 4 || c.ParitySymbols() != 3 {
		t.Fatalf("unexpected dimensions (%v,%v,%v)", c.CodeLength(), c.MessageLength(), c.ParitySymbols())
	}
	if !c.Validate() {
		t.Fatalf("expected valid code")
	}
}

func TestNewFire(t *testing.T) {
	c := fire159(t)

	if len(c.Codewords()) != 512 {
		t.Fatalf("expected 512 but found %v", len(c.Codewords()))
	}
	if c.MinDistance() != 3 {
		t.Fatalf("expected 3 but found %v", c.MinDistance())
	}
	if !c.Validate() {
		t.Fatalf("expected valid code")
	}
	expected := []gf2.Word{0, 121, 139, 242, 278, 367, 413, 484}
	if !reflect.DeepEqual(c.Codewords()[:8], expected) {
		t.Fatalf("expected %v but found %v", expected, c.Codewords()[:8])
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	tests := []struct {
		generator   []gf2.Word
		parityCheck []gf2.Word
		codeLength  int
	}{
		{hammingGenerator, hammingParityCheck, 0},
		{hammingGenerator, hammingParityCheck, 25},
		{nil, hammingParityCheck, 7},
		{hammingGenerator, nil, 7},
		{hammingGenerator, hammingParityCheck, 8},
		{[]gf2.Word{0x80, 0x2c, 0x16, 0x0b}, hammingParityCheck, 7},
		{hammingGenerator, []gf2.Word{0x4e, 0x27, 0x9d}, 7},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := New(context.Background(), test.generator, test.parityCheck, test.codeLength, 0)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Fatalf("expected ErrInvalidDimensions but found %v", err)
			}
		})
	}
}

func TestCodewordClosure(t *testing.T) {
	c := hamming74(t)
	for _, w1 := range c.Codewords() {
		for _, w2 := range c.Codewords() {
			if !c.IsCodeword(w1 ^ w2) {
				t.Fatalf("expected %v to be a codeword", w1^w2)
			}
		}
	}
}

func TestZeroMembership(t *testing.T) {
	if !hamming74(t).IsCodeword(0) {
		t.Fatalf("expected the zero word to be a codeword")
	}
	if !fire159(t).IsCodeword(0) {
		t.Fatalf("expected the zero word to be a codeword")
	}
}

func TestEncode(t *testing.T) {
	c := hamming74(t)

	if c.Encode(0) != 0 {
		t.Fatalf("expected 0 but found %v", c.Encode(0))
	}
	if c.Encode(1) != 0x0b {
		t.Fatalf("expected %v but found %v", 0x0b, c.Encode(1))
	}
	for m := gf2.Word(0); m < 16; m++ {
		if !c.IsCodeword(c.Encode(m)) {
			t.Fatalf("expected message %v to encode to a codeword, found %v", m, c.Encode(m))
		}
	}
	// bits at or above the message length are ignored
	if c.Encode(0b10011) != c.Encode(0b0011) {
		t.Fatalf("expected high message bits to be ignored")
	}
}

func TestEncodeFire(t *testing.T) {
	c := fire159(t)
	tests := []struct {
		message  gf2.Word
		expected gf2.Word
	}{
		{0, 0},
		{1, 121},
		{0b101, 413},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := c.Encode(test.message)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
	for m := gf2.Word(0); m < 512; m++ {
		if !c.IsCodeword(c.Encode(m)) {
			t.Fatalf("expected message %v to encode to a codeword", m)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	c := hamming74(t)

	bs, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}

	var actual Code
	err = json.Unmarshal(bs, &actual)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}

	if !reflect.DeepEqual(actual.Codewords(), c.Codewords()) {
		t.Fatalf("expected %v but found %v", c.Codewords(), actual.Codewords())
	}
	if actual.MinDistance() != c.MinDistance() {
		t.Fatalf("expected %v but found %v", c.MinDistance(), actual.MinDistance())
	}
}

func TestNewCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(ctx, fireGenerator, fireParity, 15, 1)
	if err == nil {
		t.Fatalf("expected an error from a cancelled context")
	}
}
