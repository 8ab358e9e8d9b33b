package explorer

import (
	"context"
	"fmt"
	"sync"

	"github.com/walletlens/walletlens/internal/transfer"
)

// StubSource is a deterministic transfer source for testing. Records are
// keyed by direction; an unhealthy stub errors on every call.
type StubSource struct {
	mu      sync.Mutex
	records map[Direction][]transfer.RawRecord
	healthy bool
	calls   int
}

// NewStubSource creates a StubSource with pre-loaded per-direction records.
func NewStubSource(records map[Direction][]transfer.RawRecord) *StubSource {
	return &StubSource{records: records, healthy: true}
}

// FetchTransfers returns the pre-loaded records for the direction.
func (s *StubSource) FetchTransfers(_ context.Context, _ string, _ uint64, direction Direction) ([]transfer.RawRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if !s.healthy {
		return nil, fmt.Errorf("stub explorer is unhealthy")
	}
	return s.records[direction], nil
}

// SetHealthy toggles whether the stub errors.
func (s *StubSource) SetHealthy(healthy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healthy = healthy
}

// Calls returns the number of FetchTransfers invocations.
func (s *StubSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

var _ Source = (*StubSource)(nil)
