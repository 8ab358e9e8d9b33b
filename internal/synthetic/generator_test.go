package synthetic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletlens/walletlens/internal/graph"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestGenerateDeterministic(t *testing.T) {
	a := NewGenerator(42, testNow).Generate(Range{})
	b := NewGenerator(42, testNow).Generate(Range{})
	require.Equal(t, a, b)
	assert.NotEmpty(t, a)
}

func TestGenerateEveryTransferTouchesCenter(t *testing.T) {
	for _, tr := range NewGenerator(1, testNow).Generate(Range{}) {
		touches := tr.From == DefaultWallet || tr.To == DefaultWallet
		require.True(t, touches, "transfer %s does not touch the center", tr.TxHash)
		assert.Greater(t, tr.Amount, 0.0)
	}
}

func TestGenerateRangeFilter(t *testing.T) {
	full := NewGenerator(7, testNow).Generate(Range{})
	week := NewGenerator(7, testNow).Generate(RangeFromPreset("7d", testNow))
	require.Less(t, len(week), len(full))

	cutoff := testNow.AddDate(0, 0, -7).Format("2006-01-02")
	for _, tr := range week {
		assert.GreaterOrEqual(t, tr.Timestamp, cutoff)
	}
}

func TestRangeFromPresetAll(t *testing.T) {
	r := RangeFromPreset("all", testNow)
	assert.True(t, r.From.IsZero())
	assert.True(t, r.To.IsZero())
}

func TestDisplayInfo(t *testing.T) {
	info, ok := DisplayInfo("0x28C6C06298d514Db089934071355E5743bf21d60")
	require.True(t, ok)
	assert.Equal(t, "Binance", info.DisplayName)
	assert.Equal(t, graph.CategoryCEX, info.Category)

	info, ok = DisplayInfo("tradfi:merchant:coffee")
	require.True(t, ok)
	assert.Equal(t, graph.CategoryTradFi, info.Category)
	assert.Equal(t, "merchant coffee", info.DisplayName)

	info, ok = DisplayInfo("0x00000000000000000000000000000000000000aa")
	require.True(t, ok)
	assert.Equal(t, graph.CategoryP2P, info.Category)
	assert.Equal(t, "0x0000...00aa", info.DisplayName)

	_, ok = DisplayInfo("not-an-entity")
	assert.False(t, ok)
}
