// Package metrics exposes prometheus instrumentation for the pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pagesFetchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blocktimes",
		Subsystem: "sync",
		Name:      "pages_fetched_total",
		Help:      "Count of page fetch attempts against the blocks API.",
	}, []string{"status"})

	pageFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blocktimes",
		Subsystem: "sync",
		Name:      "page_fetch_duration_seconds",
		Help:      "Duration of fetching and parsing one page.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	pageBlocks = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "blocktimes",
		Subsystem: "sync",
		Name:      "page_blocks",
		Help:      "Number of raw block entries per fetched page.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})

	blocksIngestedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blocktimes",
		Subsystem: "sync",
		Name:      "blocks_ingested_total",
		Help:      "Count of accepted main-chain blocks.",
	})

	duplicateHeightsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blocktimes",
		Subsystem: "sync",
		Name:      "duplicate_heights_total",
		Help:      "Count of ingested blocks that collided on height.",
	})

	duplicateTimestampsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blocktimes",
		Subsystem: "sync",
		Name:      "duplicate_timestamps_total",
		Help:      "Count of ingested blocks that collided on timestamp.",
	})
)

// BlockSync records page fetch and ingestion metrics.
type BlockSync struct{}

func NewBlockSync() *BlockSync {
	return &BlockSync{}
}

func (m BlockSync) ObserveFetchPage(err error, blocks int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	pagesFetchedTotal.WithLabelValues(status).Inc()
	pageFetchDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil {
		pageBlocks.Observe(float64(blocks))
	}
}

func (m BlockSync) ObserveIngestedBlock() {
	blocksIngestedTotal.Inc()
}

func (m BlockSync) ObserveDuplicateHeight() {
	duplicateHeightsTotal.Inc()
}

func (m BlockSync) ObserveDuplicateTimestamp() {
	duplicateTimestampsTotal.Inc()
}
