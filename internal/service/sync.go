package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cculianu/BlockChainGrok/internal/blockchain"
	"github.com/cculianu/BlockChainGrok/internal/store"
)

const dayMillis int64 = 24 * 60 * 60 * 1000

// SyncService walks backward through time one day per page: each cursor is
// anchored one day earlier than the oldest block seen so far. Once the
// requested number of days has been fetched it reduces the collected
// timestamps to a summary and exports the indexes. Any transport, protocol or integrity error aborts
// the run; only duplicate records are tolerated.
type SyncService struct {
	fetcher  PageFetcher
	ingester BlockIngester
	store    *store.Store
	exporter Exporter
	logger   *zap.Logger
	days     int
	now      func() time.Time
}

// NewSyncService builds the pagination service for the requested number of
// days. days must be positive.
func NewSyncService(
	fetcher PageFetcher,
	ingester BlockIngester,
	st *store.Store,
	exporter Exporter,
	days int,
	logger *zap.Logger,
) (*SyncService, error) {
	if fetcher == nil {
		return nil, errors.New("page fetcher is required")
	}
	if ingester == nil {
		return nil, errors.New("block ingester is required")
	}
	if st == nil {
		return nil, errors.New("store is required")
	}
	if exporter == nil {
		return nil, errors.New("exporter is required")
	}
	if days <= 0 {
		return nil, fmt.Errorf("day count must be positive, got %d", days)
	}
	return &SyncService{
		fetcher:  fetcher,
		ingester: ingester,
		store:    st,
		exporter: exporter,
		logger:   logger,
		days:     days,
		now:      time.Now,
	}, nil
}

// Run drives the fetch-ingest loop to completion, then reduces stats and
// exports the CSV artifacts.
func (s *SyncService) Run(ctx context.Context) error {
	s.logger.Info("downloading block times", zap.Int("days", s.days))

	for daysLeft := s.days; daysLeft > 0; daysLeft-- {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.logger.Info("downloading blocks for day",
			zap.Int("day", s.days-daysLeft),
			zap.Int("blocks_so_far", s.store.CountByTime()))

		cursor := s.nextCursor()
		page, err := s.fetcher.FetchPage(ctx, cursor)
		if err != nil {
			return fmt.Errorf("fetch page at cursor %d: %w", cursor, err)
		}
		if len(page) == 0 {
			return blockchain.ErrNoBlocks
		}
		if err := s.ingester.Ingest(page); err != nil {
			return err
		}
	}

	summary, err := Reduce(s.store)
	if err != nil {
		return err
	}
	s.logSummary(summary)

	if err := s.exporter.Export(s.store); err != nil {
		return err
	}

	s.logger.Info("done")
	return nil
}

// nextCursor picks the anchor for the next page request in milliseconds:
// one day earlier than the earliest block seen so far, or the current
// wall-clock time when nothing has been collected yet. The duplicate
// counter only starts counting once the store is non-empty.
func (s *SyncService) nextCursor() int64 {
	if earliest, ok := s.store.EarliestTime(); ok {
		return earliest*1000 - dayMillis
	}
	s.store.ResetDupeTimes()
	return s.now().UnixMilli()
}

func (s *SyncService) logSummary(sum Summary) {
	s.logger.Info("block time stats",
		zap.Int("blocks", sum.TotalBlocks),
		zap.Float64("span_days", sum.SpanDays),
		zap.Float64("avg_mins", sum.AvgDelta/60),
		zap.Float64("min_mins", float64(sum.MinDelta)/60),
		zap.Float64("max_mins", float64(sum.MaxDelta)/60))
	s.logger.Info("cutoff excess stats",
		zap.Float64("cutoff_mins", float64(CutoffSeconds)/60),
		zap.Float64("avg_excess_mins", sum.CutoffExcessAvg/60),
		zap.Int("samples", sum.CutoffSamples))
}
