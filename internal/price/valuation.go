package price

import "github.com/walletlens/walletlens/internal/transfer"

// ValueUSD maps a canonical transfer to a USD amount. Native transfers use
// the native unit price; token transfers look up the token price map. A
// token with no entry values at exactly 0 — unknown prices are never
// fabricated.
func ValueUSD(t transfer.Transfer, nativeUSD float64, tokenPrices map[string]float64) float64 {
	if t.Amount == 0 {
		return 0
	}
	if t.Native() {
		return t.Amount * nativeUSD
	}
	p, ok := tokenPrices[t.TokenAddress]
	if !ok {
		return 0
	}
	return t.Amount * p
}
