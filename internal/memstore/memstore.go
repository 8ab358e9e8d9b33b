// Package memstore loads transaction records persisted in an external
// memory service and converts them into canonical transfers.
package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/walletlens/walletlens/internal/config"
	"github.com/walletlens/walletlens/internal/graph"
	"github.com/walletlens/walletlens/internal/transfer"
)

// Record is one stored memory. The transaction facts live in the metadata
// envelope; the free-text memory body is ignored here.
type Record struct {
	ID       string `json:"id"`
	Memory   string `json:"memory"`
	Metadata struct {
		FromID    string  `json:"fromId"`
		ToID      string  `json:"toId"`
		AmountUSD float64 `json:"amountUsd"`
		Category  string  `json:"category"`
		Date      string  `json:"date"`
	} `json:"metadata"`
}

// Client fetches memories for a configured user from a mem0-compatible API.
type Client struct {
	cfg    config.MemstoreConfig
	client *http.Client
}

func NewClient(cfg config.MemstoreConfig) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout()},
	}
}

// Enabled reports whether the client is usable at all. Without an API key
// the memory path degrades to a main-node-only graph.
func (c *Client) Enabled() bool { return c.cfg.APIKey != "" }

// Fetch pages through all memories for the configured user.
func (c *Client) Fetch(ctx context.Context) ([]Record, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("memstore: no api key configured")
	}

	var all []Record
	for page := 1; ; page++ {
		records, more, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
		if !more {
			break
		}
	}
	log.Debug().Int("records", len(all)).Msg("fetched memory records")
	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]Record, bool, error) {
	body := fmt.Sprintf(`{"filters":{"user_id":%q},"page":%d,"page_size":%d}`,
		c.cfg.UserID, page, c.cfg.PageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v2/memories/", strings.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("memstore: build request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("memstore: fetch page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, false, fmt.Errorf("memstore: fetch page %d: status %d: %s",
			page, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var payload struct {
		Results []Record `json:"results"`
		Next    string   `json:"next"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("memstore: decode page %d: %w", page, err)
	}
	return payload.Results, payload.Next != "", nil
}

// ---------------------------------------------------------------------- //
// Conversion

// Transfers converts memory records into canonical transfers. Records
// missing an endpoint or carrying a non-positive amount are skipped.
// Amounts are USD-denominated.
func Transfers(records []Record) []transfer.Transfer {
	out := make([]transfer.Transfer, 0, len(records))
	for _, r := range records {
		m := r.Metadata
		if m.FromID == "" || m.ToID == "" {
			log.Debug().Str("memory", r.ID).Msg("skipping memory without endpoints")
			continue
		}
		if m.AmountUSD <= 0 {
			continue
		}
		out = append(out, transfer.Transfer{
			From:      m.FromID,
			To:        m.ToID,
			Asset:     "USD",
			Amount:    m.AmountUSD,
			TxHash:    r.ID,
			Timestamp: m.Date,
		})
	}
	return out
}

// Labels builds a label lookup from the records' category metadata, keyed by
// the non-center endpoint of each record.
func Labels(records []Record, userID string) func(string) (graph.LabelInfo, bool) {
	idx := make(map[string]graph.LabelInfo)
	for _, r := range records {
		m := r.Metadata
		other := m.FromID
		if other == userID {
			other = m.ToID
		}
		if other == "" || other == userID {
			continue
		}
		if _, seen := idx[other]; seen {
			continue
		}
		if cat, ok := parseCategory(m.Category); ok {
			idx[other] = graph.LabelInfo{Category: cat}
		}
	}
	return func(id string) (graph.LabelInfo, bool) {
		info, ok := idx[id]
		return info, ok
	}
}

func parseCategory(s string) (graph.Category, bool) {
	switch strings.ToLower(s) {
	case "defi":
		return graph.CategoryDeFi, true
	case "tradfi":
		return graph.CategoryTradFi, true
	case "cex":
		return graph.CategoryCEX, true
	case "p2p":
		return graph.CategoryP2P, true
	default:
		return "", false
	}
}
