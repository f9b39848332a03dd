package cyclic

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jaredallen/cycliccode/gf2"
)

// DefaultMaxBurst is the longest burst the trapping decoder attempts to
// correct when no other policy value is chosen.
const DefaultMaxBurst = 3

// Policy selects a decoding strategy for Decode.
type Policy interface {
	policy()
}

// BurstTrapping hunts for a syndrome confined to a burst of at most
// MaxBurst bits (DefaultMaxBurst when MaxBurst is unset). It fails closed:
// when no syndrome qualifies the received word comes back unchanged with
// ErrDecodeFailed.
type BurstTrapping struct {
	MaxBurst int
}

func (BurstTrapping) policy() {}

// BoundedDistance accepts the first syndrome of weight at most
// (minDistance-1)/2 and otherwise falls back to nearest neighbor search.
// It fails open: some codeword-consistent correction always comes back.
type BoundedDistance struct{}

func (BoundedDistance) policy() {}

// Decode recovers the most likely transmitted codeword for received under
// the chosen policy. Only BurstTrapping can return an error, and it does
// so carrying the received word unchanged.
func (c *Code) Decode(received gf2.Word, policy Policy) (gf2.Word, error) {
	var decoded gf2.Word
	var err error

	switch p := policy.(type) {
	case BurstTrapping:
		maxBurst := p.MaxBurst
		if maxBurst <= 0 {
			maxBurst = DefaultMaxBurst
		}
		decoded, err = c.decodeBurst(received, maxBurst)
	case BoundedDistance:
		decoded = c.decodeBounded(received)
	default:
		panic(fmt.Sprintf("unknown decode policy %T", policy))
	}

	if err != nil {
		logrus.Debugf("word %s failed to decode", formatWord(received, c.codeLength))
		return decoded, err
	}
	if !c.IsCodeword(decoded) {
		// beyond the correction radius, or the matrices disagree with the
		// alignment the decoder assumes
		logrus.Warnf("word %s decoded to %s which is not a codeword",
			formatWord(received, c.codeLength), formatWord(decoded, c.codeLength))
	} else {
		logrus.Debugf("word %s decoded to %s", formatWord(received, c.codeLength), formatWord(decoded, c.codeLength))
	}
	return decoded, nil
}

// decodeBurst scans burst thresholds from maxBurst down to 0 and within
// each threshold scans syndromes in shift order, accepting the first whose
// burst measure equals the threshold. The highest threshold with any match
// wins, then the lowest shift index.
func (c *Code) decodeBurst(received gf2.Word, maxBurst int) (gf2.Word, error) {
	syndromes := c.Syndromes(received)
	m := len(c.parityCheck)

	for t := maxBurst; t >= 0; t-- {
		for i, s := range syndromes {
			if gf2.Span(s, m) != t {
				continue
			}
			return received ^ c.alignError(s, i), nil
		}
	}
	return received, ErrDecodeFailed
}

// decodeBounded accepts the first syndrome whose weight is within the
// code's guaranteed correction radius. When the radius is undefined (only
// the zero codeword) or no syndrome qualifies, nearest neighbor decoding
// answers instead.
func (c *Code) decodeBounded(received gf2.Word) gf2.Word {
	if c.minDistance < 0 {
		return c.NearestNeighbor(received)
	}
	bound := (c.minDistance - 1) / 2

	syndromes := c.Syndromes(received)
	m := len(c.parityCheck)
	for i, s := range syndromes {
		if gf2.Weight(s, m) <= bound {
			return received ^ c.alignError(s, i)
		}
	}

	logrus.Debugf("no light syndrome for %s, using nearest neighbor", formatWord(received, c.codeLength))
	return c.NearestNeighbor(received)
}

// alignError turns the syndrome accepted at shift index i into the error
// pattern it represents on the unshifted word: left align the syndrome
// into the parity window, then rotate every bit position forward by n-i to
// undo the ith cyclic shift.
func (c *Code) alignError(syndrome gf2.Word, i int) gf2.Word {
	n := c.codeLength
	aligned := syndrome << (n - len(c.parityCheck))
	return gf2.Rotate(aligned, n-i, n)
}

// NearestNeighbor returns the codeword closest to received in Hamming
// distance: the received word's coset is searched for its minimum weight
// member (ties to the earliest codeword), and that error is subtracted.
// It always answers, at O(|codewords|) per call.
func (c *Code) NearestNeighbor(received gf2.Word) gf2.Word {
	received &= gf2.Mask(c.codeLength)

	errorWord := received ^ c.codeWords[0]
	least := c.codeLength + 1
	for _, cw := range c.codeWords {
		e := received ^ cw
		if w := gf2.HammingDistance(0, e, c.codeLength); w < least {
			least = w
			errorWord = e
		}
	}
	return received ^ errorWord
}
