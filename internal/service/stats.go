package service

import (
	"fmt"
	"math"

	"github.com/cculianu/BlockChainGrok/internal/model"
	"github.com/cculianu/BlockChainGrok/internal/store"
)

// CutoffSeconds is the fixed inter-block gap threshold: deltas at or above
// it contribute their excess to the cutoff statistic.
const CutoffSeconds int64 = 7*60 + 30

// Summary holds the reduced inter-block time statistics. Durations are in
// seconds; span is in days.
type Summary struct {
	TotalBlocks     int
	SpanDays        float64
	AvgDelta        float64
	MinDelta        int64
	MaxDelta        int64
	CutoffExcessAvg float64
	CutoffSamples   int
}

// Reduce walks the unique by-time index in ascending order and computes
// count, span and inter-block delta statistics. It is read-only over the
// store; running it twice yields identical results.
func Reduce(st *store.Store) (Summary, error) {
	return reduceBlocks(st.BlocksByTime(), st.TotalBlocks(), st.DupeTimes())
}

// reduceBlocks expects blocks in ascending time order; a negative delta
// means the sequence was not sorted and indicates a logic or data
// integrity fault.
func reduceBlocks(blocks []model.Block, totalBlocks, dupeTimes int) (Summary, error) {
	sum := Summary{
		TotalBlocks: totalBlocks,
		MaxDelta:    -1,
	}

	// Duplicate timestamps imply zero-delta neighbors are possible, so the
	// minimum must be allowed to reach zero.
	if dupeTimes > 0 {
		sum.MinDelta = 0
	} else {
		sum.MinDelta = math.MaxInt64
	}

	if len(blocks) >= 2 {
		sum.SpanDays = float64(blocks[len(blocks)-1].Time-blocks[0].Time) / 60 / 60 / 24
	}

	divisor := totalBlocks
	if divisor <= 0 {
		divisor = 1
	}

	var cutoffExcessSum, cutoffSamples int64
	for idx := 1; idx < len(blocks); idx++ {
		delta := blocks[idx].Time - blocks[idx-1].Time
		if delta < 0 {
			return Summary{}, fmt.Errorf("negative inter-block delta %d at height %d", delta, blocks[idx].Height)
		}
		// Weighted by the total accepted count, not the sample count.
		sum.AvgDelta += float64(delta) / float64(divisor)
		if delta < sum.MinDelta {
			sum.MinDelta = delta
		}
		if delta > sum.MaxDelta {
			sum.MaxDelta = delta
		}
		if delta >= CutoffSeconds {
			cutoffExcessSum += delta - CutoffSeconds
			cutoffSamples++
		}
	}

	if cutoffSamples > 0 {
		sum.CutoffExcessAvg = float64(cutoffExcessSum) / float64(cutoffSamples)
	}
	sum.CutoffSamples = int(cutoffSamples)

	return sum, nil
}
