package benchmarking

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/threadpool"
	mat2 "gonum.org/v1/gonum/mat"

	"github.com/jaredallen/cycliccode/gf2"
)

type Stats struct {
	ChannelCodewordError avgstd.AvgStd // probability of a bit error after channel errors are fixed
	ChannelMessageError  avgstd.AvgStd // probability of a bit error after channel errors are fixed
	ChannelParityError   avgstd.AvgStd // probability of a bit error after channel errors are fixed
}

func (s Stats) String() string {
	return fmt.Sprintf("{Codeword:%0.02f(+/-%0.02f), Message:%0.02f(+/-%0.02f), Parity:%0.02f(+/-%0.02f)}",
		s.ChannelCodewordError.Mean, math.Sqrt(s.ChannelCodewordError.SampledVariance()),
		s.ChannelMessageError.Mean, math.Sqrt(s.ChannelMessageError.SampledVariance()),
		s.ChannelParityError.Mean, math.Sqrt(s.ChannelParityError.SampledVariance()),
	)
}

type Checkpoints func(updatedStats Stats)

type MessageConstructor func(trial int) (message gf2.Word)

//specific to BSC
type BinarySymmetricChannelEncoder func(message gf2.Word) (codeword gf2.Word)
type BinarySymmetricChannel func(codeword gf2.Word) (channelInducedCodeword gf2.Word)
type BinarySymmetricChannelCorrection func(originalCodeword, channelInducedCodeword gf2.Word) (fixedChannelInducedCodeword gf2.Word)
type BinarySymmetricChannelMetrics func(originalMessage, originalCodeword, fixedChannelInducedCodeword gf2.Word) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64)

//specific to BPSK
type BPSKChannelEncoder func(message gf2.Word) (codeword mat2.Vector)
type BPSKChannel func(codeword mat2.Vector) (channelInducedCodeword mat2.Vector)
type BPSKChannelCorrection func(originalCodeword, channelInducedCodeword mat2.Vector) (fixedChannelInducedCodeword mat2.Vector)
type BPSKChannelMetrics func(originalMessage gf2.Word, originalCodeword, fixedChannelInducedCodeword mat2.Vector) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64)

func BenchmarkBSC(ctx context.Context,
	trials int, threads int,
	createMessage MessageConstructor,
	encode BinarySymmetricChannelEncoder,
	channel BinarySymmetricChannel,
	codewordRepair BinarySymmetricChannelCorrection,
	metrics BinarySymmetricChannelMetrics,
	checkpoints Checkpoints,
	showProgress bool) Stats {
	return BenchmarkBSCContinueStats(ctx, trials, threads, createMessage, encode, channel, codewordRepair, metrics, checkpoints, Stats{}, showProgress)
}

func BenchmarkBSCContinueStats(ctx context.Context,
	trials int, threads int,
	createMessage MessageConstructor,
	encode BinarySymmetricChannelEncoder,
	channel BinarySymmetricChannel,
	codewordRepair BinarySymmetricChannelCorrection,
	metrics BinarySymmetricChannelMetrics,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trialsToRun := trials - previousStats.ChannelCodewordError.Count
	if trialsToRun <= 0 {
		return previousStats
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	pool := threadpool.New(ctx, threads)
	statsMux := sync.Mutex{}

	trial := func(i int) {
		if showProgress {
			bar.Increment()
		}
		//we create a random message
		message := createMessage(i)

		// encode to get our codeword
		codeword := encode(message)

		// send through the channel to get channel induced errors
		channelInducedCodeword := channel(codeword)

		// repair the codeword (if possible)
		repaired := codewordRepair(codeword, channelInducedCodeword)

		// get metrics
		percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors := metrics(message, codeword, repaired)

		statsMux.Lock()
		previousStats.ChannelCodewordError.Update(percentFixedCodewordErrors)
		previousStats.ChannelMessageError.Update(percentFixedMessageErrors)
		previousStats.ChannelParityError.Update(percentFixedParityErrors)
		if checkpoints != nil {
			checkpoints(previousStats) //give them the updated checkpoint
		}
		statsMux.Unlock()
	}

	for i := previousStats.ChannelCodewordError.Count; i < trials; i++ {
		tmp := i
		pool.Add(func() { trial(tmp) })
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats
}

func BenchmarkBPSK(ctx context.Context,
	trials int, threads int,
	createMessage MessageConstructor,
	encode BPSKChannelEncoder,
	channel BPSKChannel,
	codewordRepair BPSKChannelCorrection,
	metrics BPSKChannelMetrics,
	checkpoints Checkpoints, showProgress bool) Stats {
	return BenchmarkBPSKContinueStats(ctx, trials, threads, createMessage, encode, channel, codewordRepair, metrics, checkpoints, Stats{}, showProgress)
}

func BenchmarkBPSKContinueStats(ctx context.Context,
	trials int, threads int,
	createMessage MessageConstructor,
	encode BPSKChannelEncoder,
	channel BPSKChannel,
	codewordRepair BPSKChannelCorrection,
	metrics BPSKChannelMetrics,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trialsToRun := trials - previousStats.ChannelCodewordError.Count
	if trialsToRun <= 0 {
		return previousStats
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}
	pool := threadpool.New(ctx, threads)
	statsMux := sync.Mutex{}

	trial := func(i int) {
		if showProgress {
			bar.Increment()
		}
		//we create a random message
		message := createMessage(i)

		// encode to get our codeword
		codeword := encode(message)

		// send through the channel to get channel induced errors
		channelInducedCodeword := channel(codeword)

		// repair the codeword (if possible)
		repaired := codewordRepair(codeword, channelInducedCodeword)

		// get metrics
		percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors := metrics(message, codeword, repaired)

		statsMux.Lock()
		previousStats.ChannelCodewordError.Update(percentFixedCodewordErrors)
		previousStats.ChannelMessageError.Update(percentFixedMessageErrors)
		previousStats.ChannelParityError.Update(percentFixedParityErrors)

		if checkpoints != nil {
			checkpoints(previousStats) //give them the updated checkpoint
		}
		statsMux.Unlock()
	}

	for i := previousStats.ChannelCodewordError.Count; i < trials; i++ {
		tmp := i
		pool.Add(func() { trial(tmp) })
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats
}

//BitsToBPSK converts the low length bits of a word to a [-1,1] vector
func BitsToBPSK(a gf2.Word, length int) mat2.Vector {
	output := mat2.NewVecDense(length, nil)

	for i := 0; i < length; i++ {
		if a>>i&1 == 1 {
			output.SetVec(i, 1)
		} else {
			output.SetVec(i, -1)
		}
	}

	return output
}

//BPSKToBits converts a BPSK vector [-1,1] to a bit-packed word.
// Values >= boundary will be considered a 1, otherwise a 0.
func BPSKToBits(a mat2.Vector, boundary float64) gf2.Word {
	var result gf2.Word

	for i := 0; i < a.Len(); i++ {
		if a.AtVec(i) >= boundary {
			result |= gf2.Word(1) << i
		}
	}
	return result
}

//HammingDistanceBPSK calculates number of bits different.
// Assumes >=0 is 1 and <0 is 0
// If a and b are different sizes it assumes they are
// both aligned with the zero index (the difference is at the end)
func HammingDistanceBPSK(a, b mat2.Vector) int {
	min := a.Len()
	max := b.Len()
	if min > max {
		min = b.Len()
		max = a.Len()
	}

	count := 0
	for i := 0; i < min; i++ {
		aOne := a.AtVec(i) >= 0
		bOne := b.AtVec(i) >= 0
		if aOne != bOne {
			count++
		}
	}
	return max - min + count
}
