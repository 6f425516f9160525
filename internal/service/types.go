// Package service contains the pagination, ingestion and reduction logic
// for the block-time pipeline.
package service

import (
	"context"

	"github.com/cculianu/BlockChainGrok/internal/model"
	"github.com/cculianu/BlockChainGrok/internal/store"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// PageFetcher returns the raw, pre-filter page of candidate blocks
	// anchored at a cursor timestamp in milliseconds.
	PageFetcher interface {
		FetchPage(ctx context.Context, cursorMillis int64) ([]model.RawBlock, error)
	}

	// BlockIngester filters a raw page and records accepted blocks.
	BlockIngester interface {
		Ingest(page []model.RawBlock) error
	}

	// Exporter persists the collected indexes once pagination is done.
	Exporter interface {
		Export(st *store.Store) error
	}

	// IngestMetrics records metrics for the ingestion step.
	IngestMetrics interface {
		ObserveIngestedBlock()
		ObserveDuplicateHeight()
		ObserveDuplicateTimestamp()
	}
)
