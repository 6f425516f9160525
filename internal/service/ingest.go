package service

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/cculianu/BlockChainGrok/internal/model"
	"github.com/cculianu/BlockChainGrok/internal/store"
	"github.com/cculianu/BlockChainGrok/pkg/safe"
)

// Ingester filters raw page entries down to main-chain blocks and records
// them in the store, logging duplicate heights and timestamps as warnings.
// Malformed entries are unrecoverable for the run and surface as errors.
type Ingester struct {
	store   *store.Store
	metrics IngestMetrics
	logger  *zap.Logger
}

// NewIngester builds an Ingester writing into st.
func NewIngester(st *store.Store, metrics IngestMetrics, logger *zap.Logger) (*Ingester, error) {
	if st == nil {
		return nil, errors.New("store is required")
	}
	if metrics == nil {
		return nil, errors.New("ingest metrics is required")
	}
	return &Ingester{
		store:   st,
		metrics: metrics,
		logger:  logger.Named("ingester"),
	}, nil
}

// Ingest processes one raw page. Non-main-chain entries are skipped
// silently; entries missing height or time fail the whole page.
func (i *Ingester) Ingest(page []model.RawBlock) error {
	for _, raw := range page {
		if !raw.MainChain {
			continue
		}
		if raw.Height == nil || raw.Time == nil {
			return fmt.Errorf("parse error: block entry missing height or time (hash=%q)", raw.Hash)
		}
		height, err := safe.Uint32(*raw.Height)
		if err != nil {
			return fmt.Errorf("block height overflow: %w", err)
		}

		b := model.Block{
			Height: height,
			Hash:   raw.Hash,
			Time:   *raw.Time,
		}

		if _, err := chainhash.NewHashFromStr(b.Hash); err != nil {
			i.logger.Warn("block hash does not parse as a chain hash",
				zap.Uint32("height", b.Height),
				zap.String("hash", b.Hash),
				zap.Error(err))
		}

		prevHeight, prevTime := i.store.Insert(b)
		if prevHeight != nil {
			i.logger.Warn("dupe block height",
				zap.Uint32("height", b.Height),
				zap.Int64("new_time", b.Time),
				zap.String("new_hash", b.Hash),
				zap.Int64("old_time", prevHeight.Time),
				zap.String("old_hash", prevHeight.Hash))
			i.metrics.ObserveDuplicateHeight()
		}
		if prevTime != nil {
			i.logger.Warn("dupe block timestamp",
				zap.Int64("time", b.Time),
				zap.Uint32("new_height", b.Height),
				zap.String("new_hash", b.Hash),
				zap.Uint32("old_height", prevTime.Height),
				zap.String("old_hash", prevTime.Hash))
			i.metrics.ObserveDuplicateTimestamp()
		}
		i.metrics.ObserveIngestedBlock()
	}
	return nil
}
