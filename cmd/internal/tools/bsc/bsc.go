package bsc

import (
	"context"
	"math/rand"

	"github.com/jaredallen/cycliccode/benchmarking"
	"github.com/jaredallen/cycliccode/cyclic"
	"github.com/jaredallen/cycliccode/gf2"
)

// RunBSC runs trials of a binary symmetric channel against the code. The
// channel flips crossoverProbability*codeLength bits per trial and the
// correctionAlg is expected to repair them.
func RunBSC(ctx context.Context,
	code *cyclic.Code,
	crossoverProbability float64, trials, threads int,
	correctionAlg benchmarking.BinarySymmetricChannelCorrection,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {

	createMessage := func(trial int) gf2.Word {
		return gf2.Word(rand.Uint64()) & gf2.Mask(code.MessageLength())
	}

	encode := func(message gf2.Word) (codeword gf2.Word) {
		return code.Encode(message)
	}

	channel := func(originalCodeword gf2.Word) (erroredCodeword gf2.Word) {
		count := int(crossoverProbability * float64(code.CodeLength()))
		return benchmarking.RandomFlipBitCount(originalCodeword, code.CodeLength(), count)
	}

	metrics := func(originalMessage, originalCodeword, fixedChannelInducedCodeword gf2.Word) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64) {
		m := code.ParitySymbols()
		codewordErrors := gf2.HammingDistance(originalCodeword, fixedChannelInducedCodeword, code.CodeLength())
		messageErrors := gf2.HammingDistance(originalCodeword>>uint(m), fixedChannelInducedCodeword>>uint(m), code.MessageLength())
		parityErrors := codewordErrors - messageErrors

		percentFixedCodewordErrors = float64(codewordErrors) / float64(code.CodeLength())
		percentFixedMessageErrors = float64(messageErrors) / float64(code.MessageLength())
		percentFixedParityErrors = float64(parityErrors) / float64(m)
		return
	}

	return benchmarking.BenchmarkBSCContinueStats(ctx, trials, threads, createMessage, encode, channel, correctionAlg, metrics, checkpoints, previousStats, showProgress)
}

// RunBurst is like RunBSC except the channel injects a single error burst of
// the given length per trial instead of independent bit flips.
func RunBurst(ctx context.Context,
	code *cyclic.Code,
	burstLength int, trials, threads int,
	correctionAlg benchmarking.BinarySymmetricChannelCorrection,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {

	createMessage := func(trial int) gf2.Word {
		return gf2.Word(rand.Uint64()) & gf2.Mask(code.MessageLength())
	}

	encode := func(message gf2.Word) (codeword gf2.Word) {
		return code.Encode(message)
	}

	channel := func(originalCodeword gf2.Word) (erroredCodeword gf2.Word) {
		return benchmarking.RandomBurst(originalCodeword, code.CodeLength(), burstLength)
	}

	metrics := func(originalMessage, originalCodeword, fixedChannelInducedCodeword gf2.Word) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64) {
		m := code.ParitySymbols()
		codewordErrors := gf2.HammingDistance(originalCodeword, fixedChannelInducedCodeword, code.CodeLength())
		messageErrors := gf2.HammingDistance(originalCodeword>>uint(m), fixedChannelInducedCodeword>>uint(m), code.MessageLength())
		parityErrors := codewordErrors - messageErrors

		percentFixedCodewordErrors = float64(codewordErrors) / float64(code.CodeLength())
		percentFixedMessageErrors = float64(messageErrors) / float64(code.MessageLength())
		percentFixedParityErrors = float64(parityErrors) / float64(m)
		return
	}

	return benchmarking.BenchmarkBSCContinueStats(ctx, trials, threads, createMessage, encode, channel, correctionAlg, metrics, checkpoints, previousStats, showProgress)
}
