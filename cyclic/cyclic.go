package cyclic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"strings"

	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"

	"github.com/jaredallen/cycliccode/gf2"
)

// MaxCodeLength bounds the code length so the 2^n word enumeration at
// construction stays tractable.
const MaxCodeLength = 24

var (
	ErrInvalidDimensions = errors.New("invalid code dimensions")
	ErrDecodeFailed      = errors.New("decode failed")
)

// Code holds a binary cyclic code: the generator matrix (k rows), the
// parity check matrix (n-k rows), and the codeword set enumerated at
// construction. A Code never changes after New returns, so it is safe for
// concurrent readers.
type Code struct {
	generator       []gf2.Word
	parityCheck     []gf2.Word
	codeLength      int
	codeWords       []gf2.Word
	minDistance     int
	parityTranspose []gf2.Word
}

// New builds a Code from the generator and parity check matrices for a
// length codeLength cyclic code. The codeword set is found by testing all
// 2^codeLength words against the parity check, split across threads
// (0 means the number of CPUs). The matrices are taken as mutually
// consistent; use Validate to check G*H.T == 0.
func New(ctx context.Context, generator, parityCheck []gf2.Word, codeLength, threads int) (*Code, error) {
	if codeLength < 1 || codeLength > MaxCodeLength {
		return nil, fmt.Errorf("%w: code length %v must be in [1,%v]", ErrInvalidDimensions, codeLength, MaxCodeLength)
	}
	if len(generator) == 0 || len(parityCheck) == 0 {
		return nil, fmt.Errorf("%w: generator and parity check must be nonempty", ErrInvalidDimensions)
	}
	if len(generator)+len(parityCheck) != codeLength {
		return nil, fmt.Errorf("%w: generator rows (%v) + parity rows (%v) must equal code length (%v)",
			ErrInvalidDimensions, len(generator), len(parityCheck), codeLength)
	}
	for _, row := range generator {
		if row&^gf2.Mask(codeLength) != 0 {
			return nil, fmt.Errorf("%w: generator row %b exceeds %v bits", ErrInvalidDimensions, row, codeLength)
		}
	}
	for _, row := range parityCheck {
		if row&^gf2.Mask(codeLength) != 0 {
			return nil, fmt.Errorf("%w: parity check row %b exceeds %v bits", ErrInvalidDimensions, row, codeLength)
		}
	}

	c := &Code{
		generator:       append([]gf2.Word{}, generator...),
		parityCheck:     append([]gf2.Word{}, parityCheck...),
		codeLength:      codeLength,
		parityTranspose: gf2.Transpose(parityCheck, codeLength),
	}

	if err := c.enumerate(ctx, threads); err != nil {
		return nil, err
	}

	//minimum weight over the nonzero codewords, -1 when there are none
	c.minDistance = -1
	for _, w := range c.codeWords {
		if w == 0 {
			continue
		}
		weight := gf2.HammingDistance(0, w, codeLength)
		if c.minDistance == -1 || weight < c.minDistance {
			c.minDistance = weight
		}
	}

	logrus.Debugf("constructed (%v,%v) code with %v codewords, min distance %v",
		c.codeLength, c.MessageLength(), len(c.codeWords), c.minDistance)
	return c, nil
}

func (c *Code) enumerate(ctx context.Context, threads int) error {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	total := gf2.Pow(2, uint(c.codeLength))

	chunks := threads
	if uint64(chunks) > total {
		chunks = int(total)
	}
	found := make([][]gf2.Word, chunks)
	per := total / uint64(chunks)

	pool := threadpool.New(ctx, threads)
	for i := 0; i < chunks; i++ {
		chunk := i
		start := uint64(chunk) * per
		end := start + per
		if chunk == chunks-1 {
			end = total
		}
		pool.Add(func() {
			words := make([]gf2.Word, 0)
			for w := start; w < end; w++ {
				if w%4096 == 0 {
					select {
					case <-ctx.Done():
						return
					default:
					}
				}
				if c.IsCodeword(gf2.Word(w)) {
					words = append(words, gf2.Word(w))
				}
			}
			found[chunk] = words
		})
	}
	pool.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	//chunks are contiguous ranges so concatenation keeps ascending order
	c.codeWords = make([]gf2.Word, 0)
	for _, words := range found {
		c.codeWords = append(c.codeWords, words...)
	}
	return nil
}

// IsCodeword reports whether every parity check row dots to zero against
// word. Construction and decode verification both rely on this test.
func (c *Code) IsCodeword(word gf2.Word) bool {
	for _, row := range c.parityCheck {
		if gf2.Dot(word, row, c.codeLength) != 0 {
			return false
		}
	}
	return true
}

// Encode multiplies the message by the generator matrix: the rows selected
// by the message's set bits are XORed together, message bit i choosing row
// ReverseIndex(i, k). Message bits at or above the message length are
// ignored.
func (c *Code) Encode(message gf2.Word) gf2.Word {
	k := len(c.generator)
	var encoded gf2.Word
	for place := 0; place < k; place++ {
		if message>>place&1 == 1 {
			encoded ^= c.generator[gf2.ReverseIndex(place, k)]
		}
	}
	return encoded
}

func (c *Code) CodeLength() int {
	return c.codeLength
}
func (c *Code) MessageLength() int {
	return len(c.generator)
}
func (c *Code) ParitySymbols() int {
	return len(c.parityCheck)
}
func (c *Code) CodeRate() float64 {
	return float64(c.MessageLength()) / float64(c.codeLength)
}

// Generator returns a copy of the generator matrix rows.
func (c *Code) Generator() []gf2.Word {
	return append([]gf2.Word{}, c.generator...)
}

// ParityCheck returns a copy of the parity check matrix rows.
func (c *Code) ParityCheck() []gf2.Word {
	return append([]gf2.Word{}, c.parityCheck...)
}

// Codewords returns a copy of the codeword set in ascending numeric order.
func (c *Code) Codewords() []gf2.Word {
	return append([]gf2.Word{}, c.codeWords...)
}

// MinDistance returns the minimum Hamming weight among the nonzero
// codewords, or -1 when the zero word is the only codeword.
func (c *Code) MinDistance() int {
	return c.minDistance
}

// Validate tests G*H.T == 0, where H.T is the transpose of the parity
// check matrix.
func (c *Code) Validate() bool {
	hRows := make([]mat.SparseVector, len(c.parityCheck))
	for i, row := range c.parityCheck {
		hRows[i] = toSparseVec(row, c.codeLength)
	}
	for _, g := range c.generator {
		gRow := toSparseVec(g, c.codeLength)
		for _, hRow := range hRows {
			if gRow.Dot(hRow) > 0 {
				return false
			}
		}
	}
	return true
}

func toSparseVec(w gf2.Word, length int) mat.SparseVector {
	vec := mat.CSRVec(length)
	for i := 0; i < length; i++ {
		if w>>i&1 == 1 {
			vec.Set(i, 1)
		}
	}
	return vec
}

func formatWord(w gf2.Word, length int) string {
	return fmt.Sprintf("%0*b", length, w)
}

func (c *Code) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\nG:\n")
	for _, row := range c.generator {
		buf.WriteString(formatWord(row, c.codeLength))
		buf.WriteString("\n")
	}
	buf.WriteString("H:\n")
	for _, row := range c.parityCheck {
		buf.WriteString(formatWord(row, c.codeLength))
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.String()
}

// For JSON marshalling: the codeword set and transpose are derived, so
// only the defining matrices travel.
type codeJSON struct {
	Generator   []gf2.Word
	ParityCheck []gf2.Word
	CodeLength  int
}

func (c *Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(codeJSON{
		Generator:   c.generator,
		ParityCheck: c.parityCheck,
		CodeLength:  c.codeLength,
	})
}

// UnmarshalJSON rebuilds the codeword set, so it costs the same 2^n
// enumeration as New.
func (c *Code) UnmarshalJSON(bytes []byte) error {
	var cj codeJSON
	if err := json.Unmarshal(bytes, &cj); err != nil {
		return err
	}

	rebuilt, err := New(context.Background(), cj.Generator, cj.ParityCheck, cj.CodeLength, 0)
	if err != nil {
		return err
	}
	*c = *rebuilt
	return nil
}
