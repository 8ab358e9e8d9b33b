package price

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/walletlens/walletlens/internal/config"
)

// Source is an external quote provider. TokenPrices omits addresses with no
// resolvable price; absence is the "unknown price" signal, distinct from a
// price of exactly 0.
type Source interface {
	NativePrice(ctx context.Context) (float64, error)
	TokenPrices(ctx context.Context, addresses []string) (map[string]float64, error)
}

// ---------------------------------------------------------------------------
// HTTP quote source — coingecko-style native quote, llama-style token batch
// ---------------------------------------------------------------------------

// HTTPSource fetches quotes from public price APIs.
type HTTPSource struct {
	httpClient    *http.Client
	nativeURL     string
	tokenBatchURL string
	chainSlug     string
}

// NewHTTPSource creates a quote source from configuration.
func NewHTTPSource(cfg config.PriceConfig) *HTTPSource {
	return &HTTPSource{
		httpClient:    &http.Client{Timeout: cfg.Timeout()},
		nativeURL:     cfg.NativeURL,
		tokenBatchURL: cfg.TokenBatchURL,
		chainSlug:     cfg.ChainSlug,
	}
}

// NativePrice fetches the native coin's USD price.
func (s *HTTPSource) NativePrice(ctx context.Context) (float64, error) {
	body, err := s.get(ctx, s.nativeURL)
	if err != nil {
		return 0, err
	}

	// {"ethereum":{"usd":2612.34}}
	var parsed map[string]map[string]float64
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("price: parse native quote: %w", err)
	}
	for _, quotes := range parsed {
		if usd, ok := quotes["usd"]; ok {
			return usd, nil
		}
	}
	return 0, fmt.Errorf("price: native quote missing usd field")
}

// TokenPrices batch-fetches USD prices for token contract addresses. The
// returned map is keyed by lowercase address.
func (s *HTTPSource) TokenPrices(ctx context.Context, addresses []string) (map[string]float64, error) {
	out := make(map[string]float64, len(addresses))
	if len(addresses) == 0 {
		return out, nil
	}

	// Batch query format: <base>/ethereum:0x...,ethereum:0x...
	ids := make([]string, 0, len(addresses))
	for _, a := range addresses {
		ids = append(ids, s.chainSlug+":"+strings.ToLower(a))
	}
	body, err := s.get(ctx, s.tokenBatchURL+strings.Join(ids, ","))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Coins map[string]struct {
			Price  float64 `json:"price"`
			Symbol string  `json:"symbol"`
		} `json:"coins"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("price: parse token batch: %w", err)
	}

	for coinID, info := range parsed.Coins {
		// coin id is "<slug>:<address>".
		parts := strings.SplitN(coinID, ":", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.ToLower(parts[1])] = info.Price
	}

	log.Debug().Int("requested", len(addresses)).Int("resolved", len(out)).Msg("price: token batch fetched")
	return out, nil
}

func (s *HTTPSource) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("price: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("price: HTTP error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("price: read response: %w", err)
	}
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("price: HTTP %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

var _ Source = (*HTTPSource)(nil)
