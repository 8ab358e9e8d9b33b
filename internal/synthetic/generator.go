package synthetic

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/walletlens/walletlens/internal/transfer"
)

// Range bounds a generated transaction set by date. Zero values leave the
// corresponding side unbounded.
type Range struct {
	From time.Time
	To   time.Time
}

// RangeFromPreset maps the short range presets to a concrete Range relative
// to now. Unknown presets (including "all" and "") leave the range open.
func RangeFromPreset(preset string, now time.Time) Range {
	switch preset {
	case "7d":
		return Range{From: now.AddDate(0, 0, -7)}
	case "30d":
		return Range{From: now.AddDate(0, 0, -30)}
	case "90d":
		return Range{From: now.AddDate(0, 0, -90)}
	default:
		return Range{}
	}
}

func (r Range) contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}

// Generator produces a deterministic, seed-driven set of synthetic
// transfers around DefaultWallet. Amounts are already denominated in USD.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator seeds a generator. The same seed and reference time yield
// the same transaction set.
func NewGenerator(seed int64, now time.Time) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), now: now}
}

const (
	defiCount   = 80
	tradfiCount = 100
	cexCount    = 60
	p2pCount    = 70
)

// Generate emits the full synthetic set filtered to r.
func (g *Generator) Generate(r Range) []transfer.Transfer {
	out := make([]transfer.Transfer, 0, defiCount+tradfiCount+cexCount+p2pCount)

	for i := 0; i < defiCount; i++ {
		cp := defiProtocols[g.rng.Intn(len(defiProtocols))]
		out = g.emit(out, r, "defi", i, cp.id, g.amount(50, 25000), g.rng.Intn(2) == 0)
	}
	for i := 0; i < tradfiCount; i++ {
		cp := tradfiCounterparties[g.rng.Intn(len(tradfiCounterparties))]
		inbound := cp.id == "tradfi:employer:acme"
		lo, hi := 5.0, 800.0
		if inbound {
			lo, hi = 3000, 15000
		}
		out = g.emit(out, r, "tradfi", i, cp.id, g.amount(lo, hi), inbound)
	}
	for i := 0; i < cexCount; i++ {
		cp := cexAddresses[g.rng.Intn(len(cexAddresses))]
		out = g.emit(out, r, "cex", i, cp.id, g.amount(100, 50000), g.rng.Intn(2) == 0)
	}
	for i := 0; i < p2pCount; i++ {
		cp := p2pWallets[g.rng.Intn(len(p2pWallets))]
		out = g.emit(out, r, "p2p", i, cp, g.amount(10, 5000), g.rng.Intn(2) == 0)
	}

	return out
}

func (g *Generator) emit(out []transfer.Transfer, r Range, kind string, n int, counterparty string, amount float64, inbound bool) []transfer.Transfer {
	when := g.now.AddDate(0, 0, -g.rng.Intn(180))
	if !r.contains(when) {
		return out
	}
	from, to := DefaultWallet, counterparty
	if inbound {
		from, to = counterparty, DefaultWallet
	}
	return append(out, transfer.Transfer{
		From:      from,
		To:        to,
		Asset:     "USD",
		Amount:    amount,
		TxHash:    fmt.Sprintf("sim-%s-%d", kind, n),
		Timestamp: when.UTC().Format("2006-01-02"),
	})
}

func (g *Generator) amount(lo, hi float64) float64 {
	v := lo + g.rng.Float64()*(hi-lo)
	return math.Round(v*100) / 100
}
