package benchmarking

import (
	"math"
	"math/rand"

	mat2 "gonum.org/v1/gonum/mat"

	"github.com/jaredallen/cycliccode/gf2"
)

// RandomMessage creates a random message of length bits.
func RandomMessage(length int) gf2.Word {
	return gf2.Word(rand.Uint64()) & gf2.Mask(length)
}

// RandomMessageOnesCount creates a random message of length bits with a hamming weight equal to onesCount.
func RandomMessageOnesCount(length int, onesCount int) gf2.Word {
	var message gf2.Word
	for gf2.Weight(message, length) < onesCount {
		message |= gf2.Word(1) << rand.Intn(length)
	}
	return message
}

// RandomFlipBitCount randomly flips min(numberOfBitsToFlip,length) number of bits.
func RandomFlipBitCount(input gf2.Word, length int, numberOfBitsToFlip int) gf2.Word {
	flip := make(map[int]bool)
	for len(flip) < numberOfBitsToFlip && len(flip) < length {
		flip[rand.Intn(length)] = true
	}

	output := input
	for i := range flip {
		output ^= gf2.Word(1) << i
	}
	return output
}

// RandomBurst flips a run of burstLength cyclically consecutive bits starting
// at a random position. The first and last bits of the run are always flipped;
// interior bits flip with probability 1/2, matching the usual burst model.
func RandomBurst(input gf2.Word, length int, burstLength int) gf2.Word {
	if burstLength <= 0 {
		return input
	}
	if burstLength > length {
		burstLength = length
	}

	pattern := gf2.Word(1)
	if burstLength > 1 {
		pattern |= gf2.Word(1) << (burstLength - 1)
		pattern |= gf2.Word(rand.Uint64()) & gf2.Mask(burstLength-1) &^ 1
	}

	start := rand.Intn(length)
	return input ^ gf2.Rotate(pattern, start, length)
}

// RandomNoiseBPSK creates a randomized version of the bpsk vector using the E_b/N_0 passed in
func RandomNoiseBPSK(bpsk mat2.Vector, E_bPerN_0 float64) mat2.Vector {
	//using  σ^2 = N_0/2 and E_b=1
	// we get  σ = sqrt(1/(2*E_bPerN_0))
	σ := math.Sqrt(1 / (2 * E_bPerN_0))
	result := mat2.NewVecDense(bpsk.Len(), nil)
	for i := 0; i < bpsk.Len(); i++ {
		result.SetVec(i, rand.NormFloat64()*σ)
	}
	result.AddVec(result, bpsk)
	return result
}
