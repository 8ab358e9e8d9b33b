package price

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletlens/walletlens/internal/config"
)

func TestHTTPSource_NativePrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ethereum":{"usd":2612.34}}`))
	}))
	defer srv.Close()

	cfg := config.Default().Price
	cfg.NativeURL = srv.URL
	s := NewHTTPSource(cfg)

	p, err := s.NativePrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2612.34, p)
}

func TestHTTPSource_TokenPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "ethereum:0xaaa")
		w.Write([]byte(`{"coins":{"ethereum:0xaaa":{"price":1.0,"symbol":"USDC"},"ethereum:0xbbb":{"price":2.5,"symbol":"XYZ"}}}`))
	}))
	defer srv.Close()

	cfg := config.Default().Price
	cfg.TokenBatchURL = srv.URL + "/"
	s := NewHTTPSource(cfg)

	got, err := s.TokenPrices(context.Background(), []string{"0xAAA", "0xbbb"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"0xaaa": 1.0, "0xbbb": 2.5}, got)
}

func TestHTTPSource_TokenPrices_EmptyInput(t *testing.T) {
	s := NewHTTPSource(config.Default().Price)
	got, err := s.TokenPrices(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHTTPSource_NativePrice_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	cfg := config.Default().Price
	cfg.NativeURL = srv.URL
	s := NewHTTPSource(cfg)

	_, err := s.NativePrice(context.Background())
	assert.Error(t, err)
}
