// Package naming resolves human-readable names for addresses via a
// reverse-lookup service. Resolution is strictly best effort: a failed or
// empty lookup never fails the caller, the address simply keeps its
// shortened hex label.
package naming

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Resolver reverse-resolves a single address to a display name. An empty
// name with a nil error means the address has no name.
type Resolver interface {
	Reverse(ctx context.Context, address string) (string, error)
}

// ---------------------------------------------------------------------- //
// HTTP resolver

// HTTPResolver queries an ENS ideas style endpoint:
// GET <base>/<address> -> {"name": "...", ...}.
type HTTPResolver struct {
	base   string
	client *http.Client
}

func NewHTTPResolver(base string, timeout time.Duration) *HTTPResolver {
	return &HTTPResolver{
		base:   base,
		client: &http.Client{Timeout: timeout},
	}
}

var _ Resolver = (*HTTPResolver)(nil)

func (r *HTTPResolver) Reverse(ctx context.Context, address string) (string, error) {
	u := fmt.Sprintf("%s/%s", r.base, url.PathEscape(address))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("naming: build request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("naming: reverse lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("naming: reverse lookup: status %d", resp.StatusCode)
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("naming: decode response: %w", err)
	}
	return body.Name, nil
}

// ---------------------------------------------------------------------- //
// Batch resolution

// ResolveAll looks up the given addresses concurrently and returns a map of
// address -> name for the ones that resolved. Individual failures are logged
// at debug and skipped.
func ResolveAll(ctx context.Context, r Resolver, addresses []string) map[string]string {
	if r == nil || len(addresses) == 0 {
		return nil
	}

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		names = make(map[string]string)
	)
	for _, a := range addresses {
		wg.Add(1)
		go func(a string) {
			defer wg.Done()
			name, err := r.Reverse(ctx, a)
			if err != nil {
				log.Debug().Err(err).Str("address", a).Msg("name resolution failed")
				return
			}
			if name == "" {
				return
			}
			mu.Lock()
			names[a] = name
			mu.Unlock()
		}(a)
	}
	wg.Wait()
	return names
}
