package price

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletlens/walletlens/internal/transfer"
)

func TestCache_TTL(t *testing.T) {
	now := time.Now()
	c := NewCache(5 * time.Minute)
	c.now = func() time.Time { return now }

	c.Put(NativeKey, 2600)

	p, ok := c.Get(NativeKey)
	require.True(t, ok)
	assert.Equal(t, 2600.0, p)

	// Advance past the TTL: fresh read misses, stale read still serves.
	now = now.Add(5*time.Minute + time.Second)
	_, ok = c.Get(NativeKey)
	assert.False(t, ok)

	stale, ok := c.GetStale(NativeKey)
	require.True(t, ok)
	assert.Equal(t, 2600.0, stale)
}

func TestResolver_NativePrice_CachesAndServes(t *testing.T) {
	stub := NewStubSource(3000, nil)
	r := NewResolver(stub, NewCache(5*time.Minute), 2600)

	assert.Equal(t, 3000.0, r.NativePrice(context.Background()))
	assert.Equal(t, 3000.0, r.NativePrice(context.Background()))

	nativeCalls, _ := stub.Calls()
	assert.Equal(t, 1, nativeCalls, "second read should hit the cache")
}

func TestResolver_NativePrice_FallsBackOnFailure(t *testing.T) {
	stub := NewStubSource(3000, nil)
	stub.SetHealthy(false)
	r := NewResolver(stub, NewCache(5*time.Minute), 2600)

	// No cache, source down: hardcoded fallback.
	assert.Equal(t, 2600.0, r.NativePrice(context.Background()))
}

func TestResolver_NativePrice_ServesStaleOnFailure(t *testing.T) {
	now := time.Now()
	cache := NewCache(5 * time.Minute)
	cache.now = func() time.Time { return now }

	stub := NewStubSource(3000, nil)
	r := NewResolver(stub, cache, 2600)

	require.Equal(t, 3000.0, r.NativePrice(context.Background()))

	// Quote expires and the source goes down: serve the stale value, not
	// the fallback constant.
	now = now.Add(10 * time.Minute)
	stub.SetHealthy(false)
	assert.Equal(t, 3000.0, r.NativePrice(context.Background()))
}

func TestResolver_TokenPrices_PartitionsCachedVsFetch(t *testing.T) {
	stub := NewStubSource(3000, map[string]float64{
		"0xaaa": 1.0,
		"0xbbb": 2.5,
	})
	r := NewResolver(stub, NewCache(5*time.Minute), 2600)

	got := r.TokenPrices(context.Background(), []string{"0xaaa", "0xbbb", "0xunknown"})
	assert.Equal(t, map[string]float64{"0xaaa": 1.0, "0xbbb": 2.5}, got)
	_, hasUnknown := got["0xunknown"]
	assert.False(t, hasUnknown, "unresolvable address must be absent, not zero-filled")

	// Second call: both known quotes are cache-fresh, only the unknown one
	// goes back out.
	got = r.TokenPrices(context.Background(), []string{"0xaaa", "0xbbb"})
	assert.Len(t, got, 2)
	_, tokenCalls := stub.Calls()
	assert.Equal(t, 1, tokenCalls)
}

func TestResolver_TokenPrices_FailureYieldsCachedOnly(t *testing.T) {
	stub := NewStubSource(3000, map[string]float64{"0xaaa": 1.0, "0xbbb": 2.5})
	r := NewResolver(stub, NewCache(5*time.Minute), 2600)

	// Warm the cache with one address.
	r.TokenPrices(context.Background(), []string{"0xaaa"})

	stub.SetHealthy(false)
	got := r.TokenPrices(context.Background(), []string{"0xaaa", "0xbbb"})
	assert.Equal(t, map[string]float64{"0xaaa": 1.0}, got)
}

func TestValueUSD(t *testing.T) {
	tokens := map[string]float64{"0xusdc": 1.0}

	native := transfer.Transfer{From: "0xa", To: "0xb", Asset: "ETH", Amount: 2}
	assert.Equal(t, 5200.0, ValueUSD(native, 2600, tokens))

	known := transfer.Transfer{From: "0xa", To: "0xb", Asset: "USDC", TokenAddress: "0xusdc", Amount: 150}
	assert.Equal(t, 150.0, ValueUSD(known, 2600, tokens))

	// Unknown token price values at exactly 0 regardless of amount.
	unknown := transfer.Transfer{From: "0xa", To: "0xb", Asset: "XYZ", TokenAddress: "0xxyz", Amount: 1e9}
	assert.Zero(t, ValueUSD(unknown, 2600, tokens))

	zero := transfer.Transfer{From: "0xa", To: "0xb", Asset: "ETH", Amount: 0}
	assert.Zero(t, ValueUSD(zero, 2600, tokens))
}
