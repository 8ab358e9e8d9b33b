package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectorCounts(t *testing.T) {
	c := NewCollector()
	c.RecordExpansion("0xaa", []string{"0x01", "0x02"}, 10, 3, false)
	c.RecordExpansion("0xaa", []string{"0x02", "0x03"}, 5, 3, true)
	c.RecordSynthetic(310, 21)
	c.RecordMemory(4, 3)

	s := c.Snapshot()
	assert.EqualValues(t, 2, s.Expansions)
	assert.EqualValues(t, 1, s.FallbackRuns)
	assert.EqualValues(t, 1, s.SyntheticRuns)
	assert.EqualValues(t, 1, s.MemoryRuns)
	assert.EqualValues(t, 329, s.TransfersSeen)
	assert.EqualValues(t, 27, s.NodesEmitted)
	assert.EqualValues(t, 1, s.UniqueCenters)
	assert.EqualValues(t, 3, s.UniqueCounterparties)
}

func TestCollectorUniqueEstimateScales(t *testing.T) {
	c := NewCollector()
	for i := 0; i < 1000; i++ {
		c.RecordExpansion(fmt.Sprintf("0x%040d", i), nil, 0, 1, false)
	}
	s := c.Snapshot()
	assert.InDelta(t, 1000, float64(s.UniqueCenters), 50)
}
