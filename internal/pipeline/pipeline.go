// Package pipeline composes fetching, normalization, valuation, aggregation,
// ranking and materialization into the graph build entry points.
package pipeline

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/walletlens/walletlens/internal/addr"
	"github.com/walletlens/walletlens/internal/config"
	"github.com/walletlens/walletlens/internal/explorer"
	"github.com/walletlens/walletlens/internal/graph"
	"github.com/walletlens/walletlens/internal/memstore"
	"github.com/walletlens/walletlens/internal/naming"
	"github.com/walletlens/walletlens/internal/price"
	"github.com/walletlens/walletlens/internal/stats"
	"github.com/walletlens/walletlens/internal/synthetic"
	"github.com/walletlens/walletlens/internal/transfer"
)

// Builder owns the shared components and exposes the three graph builds:
// chain expansion, synthetic, and memory-backed.
type Builder struct {
	Explorer explorer.Source
	Prices   *price.Resolver
	Names    naming.Resolver
	Memstore *memstore.Client
	Stats    *stats.Collector

	Ranking config.RankingConfig

	// MemoryUserID is the center identity for memory-backed graphs.
	MemoryUserID string

	// Now is injectable for deterministic synthetic output in tests.
	Now func() time.Time
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b *Builder) params() graph.Params {
	p := graph.Params{
		TopK:           b.Ranking.TopK,
		TxCountWeight:  b.Ranking.TxCountWeight,
		HighValueCount: b.Ranking.HighValueCount,
	}
	if p.TopK == 0 {
		p = graph.DefaultParams()
	}
	return p
}

// ---------------------------------------------------------------------- //
// Chain expansion

// BuildExpansionGraph fetches on-chain activity around address on chainID
// and returns the ranked counterparty graph. An unreachable explorer
// degrades to a simulated graph for the same center rather than an error;
// only an invalid address fails.
func (b *Builder) BuildExpansionGraph(ctx context.Context, address string, chainID uint64) (graph.Payload, error) {
	center, err := addr.ValidateAndNormalize(address)
	if err != nil {
		return graph.Payload{}, fmt.Errorf("expand %q: %w", address, err)
	}

	transfers, err := b.fetchTransfers(ctx, center, chainID)
	if err != nil {
		log.Warn().Err(err).Str("address", center).Uint64("chain_id", chainID).
			Msg("explorer unavailable, serving simulated graph")
		payload := b.simulatedFor(center)
		if b.Stats != nil {
			b.Stats.RecordExpansion(center, counterpartyIDs(payload), 0, len(payload.Nodes), true)
		}
		return payload, nil
	}

	nativeUSD, tokenPrices := b.resolvePrices(ctx, transfers)

	valued := make([]graph.ValuedTransfer, len(transfers))
	for i, t := range transfers {
		valued[i] = graph.ValuedTransfer{Transfer: t, USD: price.ValueUSD(t, nativeUSD, tokenPrices)}
	}

	ranked := graph.Rank(graph.Aggregate(center, valued), b.params())

	names := naming.ResolveAll(ctx, b.Names, topAddresses(ranked, b.Ranking.ResolveTopN))

	payload := graph.Materialize(center, ranked, graph.Options{
		Names:  names,
		Source: graph.SourceChain,
	})

	if b.Stats != nil {
		b.Stats.RecordExpansion(center, counterpartyIDs(payload), len(transfers), len(payload.Nodes), false)
	}
	log.Info().Str("address", center).Uint64("chain_id", chainID).
		Int("transfers", len(transfers)).Int("counterparties", len(ranked)).
		Msg("expansion graph built")
	return payload, nil
}

// fetchTransfers pulls both directions concurrently and normalizes the
// union. Either direction failing fails the fetch as a whole; partial
// tolerance lives inside the explorer client.
func (b *Builder) fetchTransfers(ctx context.Context, center string, chainID uint64) ([]transfer.Transfer, error) {
	type result struct {
		records []transfer.RawRecord
		err     error
	}

	directions := []explorer.Direction{explorer.DirectionInbound, explorer.DirectionOutbound}
	results := make(chan result, len(directions))
	for _, d := range directions {
		go func(d explorer.Direction) {
			records, err := b.Explorer.FetchTransfers(ctx, center, chainID, d)
			results <- result{records, err}
		}(d)
	}

	var raw []transfer.RawRecord
	for range directions {
		r := <-results
		if r.err != nil {
			return nil, r.err
		}
		raw = append(raw, r.records...)
	}

	return transfer.Normalize(raw, explorer.NativeSymbol(chainID)), nil
}

// resolvePrices fetches the native quote and the token batch concurrently.
func (b *Builder) resolvePrices(ctx context.Context, transfers []transfer.Transfer) (float64, map[string]float64) {
	nativeCh := make(chan float64, 1)
	go func() { nativeCh <- b.Prices.NativePrice(ctx) }()
	tokenPrices := b.Prices.TokenPrices(ctx, transfer.TokenAddresses(transfers))
	return <-nativeCh, tokenPrices
}

// ---------------------------------------------------------------------- //
// Synthetic and memory-backed builds

// BuildSyntheticGraph generates the simulated transaction set filtered to r
// and graphs it around the default synthetic wallet.
func (b *Builder) BuildSyntheticGraph(r synthetic.Range) graph.Payload {
	gen := synthetic.NewGenerator(syntheticSeed(synthetic.DefaultWallet), b.now())
	transfers := gen.Generate(r)
	payload := b.BuildStaticGraph(synthetic.DefaultWallet, transfers, synthetic.DisplayInfo, graph.SourceSimulated)
	if b.Stats != nil {
		b.Stats.RecordSynthetic(len(transfers), len(payload.Nodes))
	}
	return payload
}

// BuildMemoryGraph graphs the transactions stored in the memory service.
// A missing API key or a fetch failure degrades to a main-node-only graph.
func (b *Builder) BuildMemoryGraph(ctx context.Context) graph.Payload {
	center := b.MemoryUserID
	if center == "" {
		center = synthetic.DefaultWallet
	}

	if b.Memstore == nil || !b.Memstore.Enabled() {
		log.Debug().Msg("memory store not configured, serving empty graph")
		return b.BuildStaticGraph(center, nil, synthetic.DisplayInfo, graph.SourceMemory)
	}

	records, err := b.Memstore.Fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("memory fetch failed, serving empty graph")
		return b.BuildStaticGraph(center, nil, synthetic.DisplayInfo, graph.SourceMemory)
	}

	transfers := memstore.Transfers(records)
	payload := b.BuildStaticGraph(center, transfers, memstore.Labels(records, center), graph.SourceMemory)
	if b.Stats != nil {
		b.Stats.RecordMemory(len(transfers), len(payload.Nodes))
	}
	return payload
}

// BuildStaticGraph runs the pure half of the pipeline on transfers that are
// already USD-denominated, so valuation is the identity price.
func (b *Builder) BuildStaticGraph(center string, transfers []transfer.Transfer, labels func(string) (graph.LabelInfo, bool), source graph.SourceTag) graph.Payload {
	valued := make([]graph.ValuedTransfer, len(transfers))
	for i, t := range transfers {
		valued[i] = graph.ValuedTransfer{Transfer: t, USD: price.ValueUSD(t, 1, nil)}
	}
	ranked := graph.Rank(graph.Aggregate(center, valued), b.params())
	return graph.Materialize(center, ranked, graph.Options{Labels: labels, Source: source})
}

// simulatedFor produces a simulated graph recentered on the requested
// address, used when the explorer is unreachable.
func (b *Builder) simulatedFor(center string) graph.Payload {
	gen := synthetic.NewGenerator(syntheticSeed(center), b.now())
	transfers := gen.Generate(synthetic.Range{})
	for i := range transfers {
		if transfers[i].From == synthetic.DefaultWallet {
			transfers[i].From = center
		}
		if transfers[i].To == synthetic.DefaultWallet {
			transfers[i].To = center
		}
	}
	return b.BuildStaticGraph(center, transfers, synthetic.DisplayInfo, graph.SourceSimulated)
}

// syntheticSeed keeps simulated output stable per center address.
func syntheticSeed(center string) int64 {
	h := fnv.New64a()
	h.Write([]byte(center))
	return int64(h.Sum64())
}

func topAddresses(ranked []graph.Ranked, n int) []string {
	if n <= 0 || n > len(ranked) {
		n = len(ranked)
	}
	out := make([]string, 0, n)
	for _, r := range ranked[:n] {
		out = append(out, r.Address)
	}
	return out
}

func counterpartyIDs(p graph.Payload) []string {
	ids := make([]string, 0, len(p.Nodes))
	for _, n := range p.Nodes {
		if n.Type == graph.NodeMain {
			continue
		}
		ids = append(ids, n.ID)
	}
	return ids
}
