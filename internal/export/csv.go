// Package export writes the collected block indexes to CSV files.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cculianu/BlockChainGrok/internal/model"
	"github.com/cculianu/BlockChainGrok/internal/store"
)

const (
	// HeightFileName is the export ordered by ascending block height.
	HeightFileName = "blocks_sorted_by_height.csv"
	// TimestampFileName is the export ordered by ascending block timestamp.
	TimestampFileName = "blocks_sorted_by_timestamp.csv"
)

// CSVExporter serializes a store into two sorted CSV artifacts, one keyed
// by height and one keyed by timestamp. Pre-existing files are overwritten.
type CSVExporter struct {
	dir    string
	logger *zap.Logger
}

// NewCSVExporter writes exports into dir.
func NewCSVExporter(dir string, logger *zap.Logger) (*CSVExporter, error) {
	if dir == "" {
		return nil, errors.New("output directory is required")
	}
	return &CSVExporter{
		dir:    dir,
		logger: logger.Named("csv"),
	}, nil
}

// Export writes both CSV files. Any file open or write failure is an
// error; callers treat it as fatal.
func (e *CSVExporter) Export(st *store.Store) error {
	heightPath := filepath.Join(e.dir, HeightFileName)
	err := writeBlocksFile(heightPath, "#BlockHeight,BlockTimeUTC,BlockHash", st.BlocksByHeight(), func(b model.Block) string {
		return fmt.Sprintf("%d,%d,%s", b.Height, b.Time, b.Hash)
	})
	if err != nil {
		return err
	}

	timePath := filepath.Join(e.dir, TimestampFileName)
	err = writeBlocksFile(timePath, "#BlockTimeUTC,BlockHeight,BlockHash", st.BlocksByTime(), func(b model.Block) string {
		return fmt.Sprintf("%d,%d,%s", b.Time, b.Height, b.Hash)
	})
	if err != nil {
		return err
	}

	e.logger.Info("saved block exports",
		zap.String("by_height", heightPath),
		zap.String("by_timestamp", timePath))
	return nil
}

func writeBlocksFile(path, header string, blocks []model.Block, row func(model.Block) string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err = fmt.Fprintln(w, header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, b := range blocks {
		if _, err = fmt.Fprintln(w, row(b)); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
