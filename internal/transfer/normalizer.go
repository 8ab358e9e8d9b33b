package transfer

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	nativeDecimals  = 18
	defaultDecimals = 18
)

// Normalize converts a heterogeneous batch of provider records into
// canonical transfers. nativeSymbol is the chain's native coin ticker.
//
// Policy is isolate-and-skip: a malformed record (missing endpoint,
// non-numeric amount) is dropped with a diagnostic and never aborts the
// batch. Zero-amount records are dropped silently.
func Normalize(records []RawRecord, nativeSymbol string) []Transfer {
	out := make([]Transfer, 0, len(records))

	for _, r := range records {
		if r.From == "" || r.To == "" {
			log.Debug().
				Str("hash", r.Hash).
				Msg("normalize: record missing endpoint, skipped")
			continue
		}

		raw, err := decimal.NewFromString(r.Value)
		if err != nil {
			log.Debug().
				Str("hash", r.Hash).
				Str("value", r.Value).
				Msg("normalize: non-numeric amount, skipped")
			continue
		}

		dec := nativeDecimals
		asset := nativeSymbol
		tokenAddr := ""
		if r.ContractAddress != "" {
			tokenAddr = strings.ToLower(r.ContractAddress)
			asset = r.TokenSymbol
			if asset == "" {
				asset = "TOKEN"
			}
			dec = defaultDecimals
			if r.TokenDecimal != "" {
				if d, err := strconv.Atoi(r.TokenDecimal); err == nil && d >= 0 {
					dec = d
				}
			}
		}

		amount := raw.Shift(int32(-dec))
		if amount.IsZero() {
			continue
		}

		out = append(out, Transfer{
			From:         strings.ToLower(r.From),
			To:           strings.ToLower(r.To),
			Asset:        asset,
			TokenAddress: tokenAddr,
			Amount:       amount.InexactFloat64(),
			TxHash:       r.Hash,
			Timestamp:    isoFromUnixString(r.TimeStamp),
		})
	}

	return out
}

// TokenAddresses returns the distinct token contract addresses appearing in
// transfers, lowercased. Native-coin transfers contribute nothing.
func TokenAddresses(transfers []Transfer) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range transfers {
		if t.TokenAddress == "" {
			continue
		}
		if _, ok := seen[t.TokenAddress]; ok {
			continue
		}
		seen[t.TokenAddress] = struct{}{}
		out = append(out, t.TokenAddress)
	}
	return out
}
