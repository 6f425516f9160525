// Package blockchain implements the HTTP client for the blocks JSON API.
package blockchain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/ratelimit"

	"github.com/cculianu/BlockChainGrok/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// ErrNoBlocks is returned when a page parses but carries no blocks array,
// or an empty one. The API contract promises at least one raw entry per
// page, so callers treat this as fatal.
var ErrNoBlocks = errors.New("blocks array not found")

type (
	// PageMetrics records metrics for page fetches.
	PageMetrics interface {
		ObserveFetchPage(err error, blocks int, started time.Time)
	}
)

// Client fetches pages of raw block metadata anchored at a cursor
// timestamp. Requests are paced through a rate limiter; the full response
// body is read before any parsing happens.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rl          ratelimit.Limiter
	pageMetrics PageMetrics
}

// NewClient validates the base URL and constructs a Client. rps bounds the
// request rate against the public API.
func NewClient(baseURL string, timeout time.Duration, rps int, pageMetrics PageMetrics) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("api url scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("api url missing host")
	}
	if rps <= 0 {
		rps = 1
	}
	if pageMetrics == nil {
		return nil, errors.New("page metrics is required")
	}

	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     strings.TrimRight(baseURL, "/"),
		rl:          ratelimit.New(rps),
		pageMetrics: pageMetrics,
	}, nil
}

// FetchPage retrieves the page of raw blocks anchored at cursorMillis
// (milliseconds since epoch). Entries are returned pre-filter; stale
// non-main-chain blocks are still present.
func (c *Client) FetchPage(ctx context.Context, cursorMillis int64) (blocks []model.RawBlock, err error) {
	started := time.Now()
	defer func() {
		c.pageMetrics.ObserveFetchPage(err, len(blocks), started)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	c.rl.Take()

	reqURL := fmt.Sprintf("%s/blocks/%d?format=json", c.baseURL, cursorMillis)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build blocks page request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch blocks page at cursor %d: %w", cursorMillis, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("blocks page at cursor %d returned status %d", cursorMillis, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read blocks page body: %w", err)
	}

	var page model.BlocksPage
	if err = json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("parse blocks page JSON: %w", err)
	}
	if len(page.Blocks) == 0 {
		return nil, ErrNoBlocks
	}
	return page.Blocks, nil
}
