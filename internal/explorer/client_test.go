package explorer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletlens/walletlens/internal/config"
	"github.com/walletlens/walletlens/internal/transfer"
)

const testWallet = "0x1111111111111111111111111111111111111111"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Default().Explorer
	cfg.Endpoints = map[uint64]string{1: srv.URL}
	return NewClient(cfg)
}

func TestClient_FetchTransfers_DirectionSplit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		action := r.URL.Query().Get("action")
		var result []transfer.RawRecord
		switch action {
		case "txlist":
			result = []transfer.RawRecord{
				{Hash: "0x1", From: "0xaaa", To: testWallet, Value: "1000000000000000000", TimeStamp: "1700000000"},
				{Hash: "0x2", From: testWallet, To: "0xbbb", Value: "2000000000000000000", TimeStamp: "1700000100"},
			}
		case "tokentx":
			result = []transfer.RawRecord{
				{Hash: "0x3", From: "0xccc", To: testWallet, Value: "5000000", TokenSymbol: "USDC", TokenDecimal: "6", ContractAddress: "0xusdc", TimeStamp: "1700000200"},
			}
		}
		json.NewEncoder(w).Encode(map[string]any{"status": "1", "message": "OK", "result": result})
	}

	c := newTestClient(t, handler)

	inbound, err := c.FetchTransfers(context.Background(), testWallet, 1, DirectionInbound)
	require.NoError(t, err)
	require.Len(t, inbound, 2)
	assert.Equal(t, "0x1", inbound[0].Hash)
	assert.Equal(t, "0x3", inbound[1].Hash)

	outbound, err := c.FetchTransfers(context.Background(), testWallet, 1, DirectionOutbound)
	require.NoError(t, err)
	require.Len(t, outbound, 1)
	assert.Equal(t, "0x2", outbound[0].Hash)
}

func TestClient_FetchTransfers_EmptyResult(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "0", "message": "No transactions found", "result": []any{}})
	}

	c := newTestClient(t, handler)

	records, err := c.FetchTransfers(context.Background(), testWallet, 1, DirectionInbound)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClient_FetchTransfers_BothEndpointsFail(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}

	c := newTestClient(t, handler)

	_, err := c.FetchTransfers(context.Background(), testWallet, 1, DirectionInbound)
	require.Error(t, err)
	assert.Equal(t, int64(1), c.Stats().ErrorCount)
}

func TestClient_FetchTransfers_UnknownChainFallsBack(t *testing.T) {
	var gotRequests int
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotRequests++
		json.NewEncoder(w).Encode(map[string]any{"status": "1", "message": "OK", "result": []transfer.RawRecord{}})
	}

	c := newTestClient(t, handler)

	// Chain 999 is not configured; the chain-1 endpoint serves it.
	_, err := c.FetchTransfers(context.Background(), testWallet, 999, DirectionInbound)
	require.NoError(t, err)
	assert.Equal(t, 2, gotRequests) // txlist + tokentx
}

func TestNativeSymbol(t *testing.T) {
	assert.Equal(t, "ETH", NativeSymbol(1))
	assert.Equal(t, "MATIC", NativeSymbol(137))
	assert.Equal(t, "ETH", NativeSymbol(999))
}
