package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/walletlens/walletlens/internal/config"
	"github.com/walletlens/walletlens/internal/transfer"
)

// ---------------------------------------------------------------------------
// Etherscan-compatible explorer client — account txlist + tokentx endpoints
// ---------------------------------------------------------------------------

// Client fetches transfers from etherscan-compatible explorer APIs.
type Client struct {
	httpClient *http.Client
	endpoints  map[uint64]string
	apiKey     string
	pageSize   int

	fetchCount atomic.Int64
	errorCount atomic.Int64
}

// NewClient creates an explorer client from configuration.
func NewClient(cfg config.ExplorerConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		endpoints:  cfg.Endpoints,
		apiKey:     cfg.APIKey,
		pageSize:   cfg.PageSize,
	}
}

// apiResponse is the etherscan envelope. status "0" with an empty result is
// "no transactions found", not an error.
type apiResponse struct {
	Status  string               `json:"status"`
	Message string               `json:"message"`
	Result  []transfer.RawRecord `json:"result"`
}

// FetchTransfers returns the address's recent native and token transfers in
// one direction. The native and token endpoints are queried concurrently.
func (c *Client) FetchTransfers(ctx context.Context, address string, chainID uint64, direction Direction) ([]transfer.RawRecord, error) {
	address = strings.ToLower(address)

	type fetchResult struct {
		records []transfer.RawRecord
		err     error
	}

	nativeCh := make(chan fetchResult, 1)
	tokenCh := make(chan fetchResult, 1)

	go func() {
		records, err := c.fetchAction(ctx, address, chainID, "txlist")
		nativeCh <- fetchResult{records, err}
	}()
	go func() {
		records, err := c.fetchAction(ctx, address, chainID, "tokentx")
		tokenCh <- fetchResult{records, err}
	}()

	native := <-nativeCh
	token := <-tokenCh

	// Both endpoints failing is a real failure; one failing degrades to the
	// other's records.
	if native.err != nil && token.err != nil {
		c.errorCount.Add(1)
		return nil, fmt.Errorf("explorer: fetch transfers: %w", native.err)
	}
	if native.err != nil {
		log.Warn().Err(native.err).Str("address", address).Msg("explorer: native fetch failed, token transfers only")
	}
	if token.err != nil {
		log.Warn().Err(token.err).Str("address", address).Msg("explorer: token fetch failed, native transfers only")
	}

	merged := append(native.records, token.records...)

	// Keep only records matching the requested direction.
	out := merged[:0]
	for _, r := range merged {
		to := strings.ToLower(r.To)
		inbound := to == address
		if (direction == DirectionInbound) == inbound {
			out = append(out, r)
		}
	}

	c.fetchCount.Add(1)
	log.Debug().
		Str("address", address).
		Uint64("chain_id", chainID).
		Str("direction", string(direction)).
		Int("records", len(out)).
		Msg("explorer: transfers fetched")

	return out, nil
}

func (c *Client) fetchAction(ctx context.Context, address string, chainID uint64, action string) ([]transfer.RawRecord, error) {
	base, ok := c.endpoints[chainID]
	if !ok {
		base = c.endpoints[1]
	}

	queryURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("explorer: parse endpoint: %w", err)
	}
	q := queryURL.Query()
	q.Set("module", "account")
	q.Set("action", action)
	q.Set("address", address)
	q.Set("startblock", "0")
	q.Set("endblock", "99999999")
	q.Set("page", "1")
	q.Set("offset", strconv.Itoa(c.pageSize))
	q.Set("sort", "desc")
	if c.apiKey != "" {
		q.Set("apikey", c.apiKey)
	}
	queryURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", queryURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("explorer: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("explorer: %s HTTP error: %w", action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("explorer: read %s response: %w", action, err)
	}
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("explorer: %s HTTP %d: %s", action, resp.StatusCode, string(body))
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("explorer: parse %s response: %w", action, err)
	}

	if parsed.Status != "1" {
		// "No transactions found" comes back as status 0.
		log.Debug().Str("action", action).Str("message", parsed.Message).Msg("explorer: empty result")
		return nil, nil
	}

	return parsed.Result, nil
}

// Stats returns fetch counters.
type Stats struct {
	FetchCount int64 `json:"fetch_count"`
	ErrorCount int64 `json:"error_count"`
}

func (c *Client) Stats() Stats {
	return Stats{
		FetchCount: c.fetchCount.Load(),
		ErrorCount: c.errorCount.Load(),
	}
}

var _ Source = (*Client)(nil)
