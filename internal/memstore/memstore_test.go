package memstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletlens/walletlens/internal/config"
	"github.com/walletlens/walletlens/internal/graph"
)

func record(id, from, to string, usd float64, category, date string) Record {
	var r Record
	r.ID = id
	r.Metadata.FromID = from
	r.Metadata.ToID = to
	r.Metadata.AmountUSD = usd
	r.Metadata.Category = category
	r.Metadata.Date = date
	return r
}

func TestFetchPaginates(t *testing.T) {
	var pages []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "/v2/memories/", r.URL.Path)

		var body struct {
			Page     int `json:"page"`
			PageSize int `json:"page_size"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		pages = append(pages, body.Page)

		if body.Page == 1 {
			w.Write([]byte(`{"results":[{"id":"m1","metadata":{"fromId":"me","toId":"them","amountUsd":10,"date":"2026-01-01"}}],"next":"page2"}`))
			return
		}
		w.Write([]byte(`{"results":[{"id":"m2","metadata":{"fromId":"them","toId":"me","amountUsd":20,"date":"2026-01-02"}}],"next":""}`))
	}))
	defer srv.Close()

	c := NewClient(config.MemstoreConfig{
		BaseURL: srv.URL, APIKey: "test-key", UserID: "me", PageSize: 1, TimeoutS: 5,
	})
	records, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []int{1, 2}, pages)
	assert.Equal(t, "m1", records[0].ID)
}

func TestFetchWithoutAPIKey(t *testing.T) {
	c := NewClient(config.MemstoreConfig{BaseURL: "http://unused", TimeoutS: 1})
	assert.False(t, c.Enabled())
	_, err := c.Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(config.MemstoreConfig{BaseURL: srv.URL, APIKey: "bad", TimeoutS: 5, PageSize: 10})
	_, err := c.Fetch(context.Background())
	assert.ErrorContains(t, err, "status 401")
}

func TestTransfersSkipsInvalidRecords(t *testing.T) {
	records := []Record{
		record("m1", "me", "them", 150, "p2p", "2026-01-01"),
		record("m2", "", "me", 50, "p2p", "2026-01-02"),   // missing endpoint
		record("m3", "me", "them", 0, "p2p", "2026-01-03"), // no amount
	}

	out := Transfers(records)
	require.Len(t, out, 1)
	assert.Equal(t, "me", out[0].From)
	assert.Equal(t, "them", out[0].To)
	assert.Equal(t, "USD", out[0].Asset)
	assert.Equal(t, 150.0, out[0].Amount)
	assert.Equal(t, "2026-01-01", out[0].Timestamp)
}

func TestLabelsKeyedByCounterparty(t *testing.T) {
	records := []Record{
		record("m1", "me", "uniswap", 10, "defi", "2026-01-01"),
		record("m2", "acme", "me", 10, "tradfi", "2026-01-02"),
		record("m3", "me", "mystery", 10, "unknown", "2026-01-03"),
	}

	labels := Labels(records, "me")

	info, ok := labels("uniswap")
	require.True(t, ok)
	assert.Equal(t, graph.CategoryDeFi, info.Category)

	info, ok = labels("acme")
	require.True(t, ok)
	assert.Equal(t, graph.CategoryTradFi, info.Category)

	_, ok = labels("mystery")
	assert.False(t, ok)

	_, ok = labels("me")
	assert.False(t, ok)
}
