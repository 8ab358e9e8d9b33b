package price

import (
	"context"
	"fmt"
	"sync"
)

// StubSource is a deterministic quote source for testing.
type StubSource struct {
	mu      sync.Mutex
	native  float64
	tokens  map[string]float64
	healthy bool

	nativeCalls int
	tokenCalls  int
}

// NewStubSource creates a StubSource with fixed quotes.
func NewStubSource(native float64, tokens map[string]float64) *StubSource {
	if tokens == nil {
		tokens = make(map[string]float64)
	}
	return &StubSource{native: native, tokens: tokens, healthy: true}
}

func (s *StubSource) NativePrice(_ context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nativeCalls++
	if !s.healthy {
		return 0, fmt.Errorf("stub price source is unhealthy")
	}
	return s.native, nil
}

func (s *StubSource) TokenPrices(_ context.Context, addresses []string) (map[string]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokenCalls++
	if !s.healthy {
		return nil, fmt.Errorf("stub price source is unhealthy")
	}

	out := make(map[string]float64)
	for _, a := range addresses {
		if p, ok := s.tokens[a]; ok {
			out[a] = p
		}
	}
	return out, nil
}

// SetHealthy toggles whether the stub errors.
func (s *StubSource) SetHealthy(healthy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healthy = healthy
}

// Calls returns (nativeCalls, tokenCalls).
func (s *StubSource) Calls() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nativeCalls, s.tokenCalls
}

var _ Source = (*StubSource)(nil)
