package price

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

// Resolver resolves USD unit prices with an explicit, injectable cache.
// Neither method returns an error: price failure degrades to stale or
// fallback values (native) or to absence (tokens), and the caller values
// unresolvable transfers at 0.
type Resolver struct {
	source         Source
	cache          *Cache
	fallbackNative float64
}

// NewResolver creates a price resolver. The cache is owned by the caller so
// TTL behavior is testable without process-global state.
func NewResolver(source Source, cache *Cache, fallbackNative float64) *Resolver {
	return &Resolver{source: source, cache: cache, fallbackNative: fallbackNative}
}

// NativePrice returns the native coin's USD price: fresh cache, then the
// external source, then stale cache, then the configured fallback constant.
func (r *Resolver) NativePrice(ctx context.Context) float64 {
	if p, ok := r.cache.Get(NativeKey); ok {
		return p
	}

	p, err := r.source.NativePrice(ctx)
	if err != nil {
		if stale, ok := r.cache.GetStale(NativeKey); ok {
			log.Warn().Err(err).Float64("stale_usd", stale).Msg("price: native quote failed, serving stale")
			return stale
		}
		log.Warn().Err(err).Float64("fallback_usd", r.fallbackNative).Msg("price: native quote failed, serving fallback")
		return r.fallbackNative
	}

	r.cache.Put(NativeKey, p)
	return p
}

// TokenPrices resolves USD prices for token contract addresses. Cache-fresh
// addresses are served locally; the rest go out in one batch call. Addresses
// with no resolvable price are absent from the result. An external failure
// yields only whatever was cache-fresh.
func (r *Resolver) TokenPrices(ctx context.Context, addresses []string) map[string]float64 {
	out := make(map[string]float64, len(addresses))
	var needsFetch []string

	for _, a := range addresses {
		key := strings.ToLower(a)
		if p, ok := r.cache.Get(key); ok {
			out[key] = p
		} else {
			needsFetch = append(needsFetch, key)
		}
	}

	if len(needsFetch) == 0 {
		return out
	}

	fetched, err := r.source.TokenPrices(ctx, needsFetch)
	if err != nil {
		log.Warn().Err(err).Int("unresolved", len(needsFetch)).Msg("price: token batch failed, cached quotes only")
		return out
	}

	for addr, p := range fetched {
		out[addr] = p
		r.cache.Put(addr, p)
	}
	return out
}
