// Package store holds the in-memory block indexes built during pagination.
package store

import (
	"sort"

	"github.com/cculianu/BlockChainGrok/internal/model"
)

// Store maintains three indexes over the same logical set of accepted
// blocks: by height (unique), by timestamp (unique, last write wins) and a
// multi-valued by-timestamp index that keeps every inserted record. A
// counter tracks how many timestamp collisions were observed so the true
// accepted count can be recovered from the unique by-time index.
//
// Ownership contract: exactly one writer during pagination, read-only
// afterward. The store is not safe for concurrent use.
type Store struct {
	byHeight    map[uint32]model.Block
	byTime      map[int64]model.Block
	byTimeMulti map[int64][]model.Block
	dupeTimes   int
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		byHeight:    make(map[uint32]model.Block),
		byTime:      make(map[int64]model.Block),
		byTimeMulti: make(map[int64][]model.Block),
	}
}

// Insert records b in all three indexes and reports the records it
// displaced: prevHeight is the record previously stored at b.Height,
// prevTime the record previously stored at b.Time, nil when there was
// none. A timestamp collision also increments the duplicate counter.
func (s *Store) Insert(b model.Block) (prevHeight, prevTime *model.Block) {
	if old, ok := s.byHeight[b.Height]; ok {
		prevHeight = &old
	}
	if old, ok := s.byTime[b.Time]; ok {
		prevTime = &old
		s.dupeTimes++
	}
	s.byHeight[b.Height] = b
	s.byTime[b.Time] = b
	s.byTimeMulti[b.Time] = append(s.byTimeMulti[b.Time], b)
	return prevHeight, prevTime
}

// CountByHeight returns the number of distinct heights stored.
func (s *Store) CountByHeight() int {
	return len(s.byHeight)
}

// CountByTime returns the number of distinct timestamps stored.
func (s *Store) CountByTime() int {
	return len(s.byTime)
}

// TotalBlocks is the number of accepted blocks, counting records that were
// collapsed by a timestamp collision in the unique by-time index.
func (s *Store) TotalBlocks() int {
	return len(s.byTime) + s.dupeTimes
}

// DupeTimes returns the number of timestamp collisions seen so far.
func (s *Store) DupeTimes() int {
	return s.dupeTimes
}

// ResetDupeTimes zeroes the timestamp collision counter.
func (s *Store) ResetDupeTimes() {
	s.dupeTimes = 0
}

// EarliestTime returns the smallest stored timestamp, false when empty.
func (s *Store) EarliestTime() (int64, bool) {
	if len(s.byTime) == 0 {
		return 0, false
	}
	first := true
	var earliest int64
	for t := range s.byTime {
		if first || t < earliest {
			earliest = t
			first = false
		}
	}
	return earliest, true
}

// LatestTime returns the largest stored timestamp, false when empty.
func (s *Store) LatestTime() (int64, bool) {
	if len(s.byTime) == 0 {
		return 0, false
	}
	first := true
	var latest int64
	for t := range s.byTime {
		if first || t > latest {
			latest = t
			first = false
		}
	}
	return latest, true
}

// BlocksByHeight returns the by-height index in ascending height order.
func (s *Store) BlocksByHeight() []model.Block {
	blocks := make([]model.Block, 0, len(s.byHeight))
	for _, b := range s.byHeight {
		blocks = append(blocks, b)
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Height < blocks[j].Height })
	return blocks
}

// BlocksByTime returns the unique by-time index in ascending time order.
func (s *Store) BlocksByTime() []model.Block {
	blocks := make([]model.Block, 0, len(s.byTime))
	for _, b := range s.byTime {
		blocks = append(blocks, b)
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Time < blocks[j].Time })
	return blocks
}

// AllAtTime returns every record inserted with timestamp t, in insertion
// order, including records the unique index has since overwritten.
func (s *Store) AllAtTime(t int64) []model.Block {
	return s.byTimeMulti[t]
}
