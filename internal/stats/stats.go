// Package stats tracks service-level counters and approximate unique
// cardinalities across graph builds.
package stats

import (
	"sync"
	"sync/atomic"

	"github.com/axiomhq/hyperloglog"
)

// Collector accumulates per-process statistics. Unique wallet counts use
// HLL sketches so memory stays flat no matter how many expansions run.
type Collector struct {
	expansions    atomic.Int64
	syntheticRuns atomic.Int64
	memoryRuns    atomic.Int64
	fallbackRuns  atomic.Int64
	transfersSeen atomic.Int64
	nodesEmitted  atomic.Int64

	mu              sync.Mutex
	centersHLL      *hyperloglog.Sketch
	counterpartyHLL *hyperloglog.Sketch
}

func NewCollector() *Collector {
	return &Collector{
		centersHLL:      hyperloglog.New14(),
		counterpartyHLL: hyperloglog.New14(),
	}
}

// RecordExpansion accounts one chain expansion build.
func (c *Collector) RecordExpansion(center string, counterparties []string, transfers, nodes int, fellBack bool) {
	c.expansions.Add(1)
	if fellBack {
		c.fallbackRuns.Add(1)
	}
	c.transfersSeen.Add(int64(transfers))
	c.nodesEmitted.Add(int64(nodes))

	c.mu.Lock()
	defer c.mu.Unlock()
	c.centersHLL.Insert([]byte(center))
	for _, cp := range counterparties {
		c.counterpartyHLL.Insert([]byte(cp))
	}
}

// RecordSynthetic accounts one synthetic graph build.
func (c *Collector) RecordSynthetic(transfers, nodes int) {
	c.syntheticRuns.Add(1)
	c.transfersSeen.Add(int64(transfers))
	c.nodesEmitted.Add(int64(nodes))
}

// RecordMemory accounts one memory-backed graph build.
func (c *Collector) RecordMemory(transfers, nodes int) {
	c.memoryRuns.Add(1)
	c.transfersSeen.Add(int64(transfers))
	c.nodesEmitted.Add(int64(nodes))
}

// Snapshot is a point-in-time view of the collector, shaped for JSON.
type Snapshot struct {
	Expansions           int64  `json:"expansions"`
	SyntheticRuns        int64  `json:"syntheticRuns"`
	MemoryRuns           int64  `json:"memoryRuns"`
	FallbackRuns         int64  `json:"fallbackRuns"`
	TransfersSeen        int64  `json:"transfersSeen"`
	NodesEmitted         int64  `json:"nodesEmitted"`
	UniqueCenters        uint64 `json:"uniqueCenters"`
	UniqueCounterparties uint64 `json:"uniqueCounterparties"`
}

func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	centers := c.centersHLL.Estimate()
	counterparties := c.counterpartyHLL.Estimate()
	c.mu.Unlock()

	return Snapshot{
		Expansions:           c.expansions.Load(),
		SyntheticRuns:        c.syntheticRuns.Load(),
		MemoryRuns:           c.memoryRuns.Load(),
		FallbackRuns:         c.fallbackRuns.Load(),
		TransfersSeen:        c.transfersSeen.Load(),
		NodesEmitted:         c.nodesEmitted.Load(),
		UniqueCenters:        centers,
		UniqueCounterparties: counterparties,
	}
}
