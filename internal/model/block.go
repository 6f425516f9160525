// Package model defines domain models for block-time ingestion.
package model

// Block is the accepted, normalized form of a main-chain block.
// Time is in seconds since epoch, UTC. Records are never mutated after
// insertion; duplicate heights or timestamps replace the stored record.
type Block struct {
	Height uint32
	Hash   string
	Time   int64
}

// RawBlock mirrors one entry of the blocks array on the wire, before
// main-chain filtering. Height and Time are pointers so an absent key can
// be told apart from a zero value.
type RawBlock struct {
	Height    *uint64 `json:"height"`
	Hash      string  `json:"hash"`
	Time      *int64  `json:"time"`
	MainChain bool    `json:"main_chain"`
}

// BlocksPage is the top-level JSON document returned for one page request.
type BlocksPage struct {
	Blocks []RawBlock `json:"blocks"`
}
