package naming

import (
	"context"
	"errors"
	"sync/atomic"
)

// StubResolver serves reverse lookups from a fixed table. Used in tests and
// for offline runs.
type StubResolver struct {
	Names   map[string]string
	Healthy atomic.Bool
	Calls   atomic.Int64
}

func NewStubResolver(names map[string]string) *StubResolver {
	s := &StubResolver{Names: names}
	s.Healthy.Store(true)
	return s
}

var _ Resolver = (*StubResolver)(nil)

func (s *StubResolver) Reverse(_ context.Context, address string) (string, error) {
	s.Calls.Add(1)
	if !s.Healthy.Load() {
		return "", errors.New("naming stub: unhealthy")
	}
	return s.Names[address], nil
}
