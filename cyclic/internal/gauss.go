package internal

import (
	"context"
	"os"
	"sync"

	"github.com/cheggaaa/pb/v3"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

// TrapForm row reduces H in place until row i's only set bit inside the
// parity window [cols-rows, cols) sits at column cols-1-i. Only row swaps
// and row additions are used: column swaps would permute code positions
// and change the code. Returns false when the window columns are not
// linearly independent (or the context is cancelled).
func TrapForm(ctx context.Context, H mat.SparseMat, threads int) bool {
	rows, cols := H.Dims()
	if rows >= cols {
		logrus.Debugf("trap form requires more columns than rows")
		return false
	}

	bar := pb.Full.New(rows)
	bar.Set("prefix", "Processing Row ")
	bar.SetWriter(os.Stdout)
	if logrus.GetLevel() == logrus.DebugLevel {
		bar.Start()
	}

	for r := 0; r < rows; r++ {
		select {
		case <-ctx.Done():
			return false
		default:
		}
		bar.Increment()

		pivotCol := cols - 1 - r

		//find a row at or below r carrying the pivot column
		pivots := H.Column(pivotCol).NonzeroArray()
		swap := -1
		for _, p := range pivots {
			if p >= r {
				swap = p
				break
			}
		}
		if swap == -1 {
			logrus.Debugf("no pivot available for column %v", pivotCol)
			return false
		}
		H.SwapRows(r, swap)

		eliminateOtherRows(ctx, r, pivotCol, H, threads)
	}

	bar.SetTemplateString(`{{string . "prefix"}}{{counters . }}{{string . "suffix"}}`)
	bar.Set("suffix", " Done")
	bar.Finish()

	logrus.Debugf("trap form reduction complete")
	return true
}

func eliminateOtherRows(ctx context.Context, rowIndex, pivotCol int, result mat.SparseMat, threads int) {
	pivots := result.Column(pivotCol).NonzeroArray()
	pool := threadpool.New(ctx, threads)
	rrow := result.Row(rowIndex)
	mut := sync.RWMutex{}

	//for all rows with a 1 in the pivot column subtract the pivot row
	// (in GF2 subtract is add)
	for _, index := range pivots {
		pIndex := index
		if index != rowIndex {
			pool.Add(func() {
				mut.RLock()
				prow := result.Row(pIndex)
				mut.RUnlock()
				prow.Add(prow, rrow)
				mut.Lock()
				result.SetRow(pIndex, prow)
				mut.Unlock()
			})
		}
	}
	pool.Wait()
}

// CalculateRank returns the GF(2) rank of H. H is not modified.
func CalculateRank(ctx context.Context, H mat.SparseMat, threads int) int {
	if H == nil {
		return -1
	}
	tmp := mat.CSRMatCopy(H)
	rows, cols := tmp.Dims()

	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		select {
		case <-ctx.Done():
			return -1
		default:
		}

		pivots := tmp.Column(col).NonzeroArray()
		swap := -1
		for _, p := range pivots {
			if p >= rank {
				swap = p
				break
			}
		}
		if swap == -1 {
			continue
		}
		tmp.SwapRows(rank, swap)
		eliminateOtherRows(ctx, rank, col, tmp, threads)
		rank++
	}
	return rank
}
