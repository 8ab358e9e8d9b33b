package explorer

import (
	"context"

	"github.com/walletlens/walletlens/internal/transfer"
)

// Direction scopes a transfer fetch relative to the queried address.
type Direction string

const (
	DirectionInbound  Direction = "inbound"  // address is the receiver
	DirectionOutbound Direction = "outbound" // address is the sender
)

// Source fetches a wallet's historical transfers from a block explorer.
// Result counts are bounded by the provider page size. Implementations
// must respect ctx deadlines; a failed fetch is recoverable upstream
// (the pipeline degrades to synthetic data).
type Source interface {
	FetchTransfers(ctx context.Context, address string, chainID uint64, direction Direction) ([]transfer.RawRecord, error)
}

// NativeSymbol returns the native coin ticker for a chain id. Unsupported
// chains use mainnet semantics.
func NativeSymbol(chainID uint64) string {
	if chainID == 137 {
		return "MATIC"
	}
	return "ETH"
}
