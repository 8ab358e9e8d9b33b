package graph

// Accumulator is one row per distinct counterparty of the center address,
// built up during the fold and discarded once the ranked output exists.
type Accumulator struct {
	Address      string
	InboundUSD   float64 // center is the receiver
	OutboundUSD  float64 // center is the sender
	TxCount      int
	LastActivity string // ISO-8601; lexicographic max of constituent timestamps
}

// TotalUSD is the combined volume in both directions.
func (a *Accumulator) TotalUSD() float64 { return a.InboundUSD + a.OutboundUSD }

// AccumulatorSet is an insertion-ordered accumulator map. The order gives
// the ranker a deterministic tie-break.
type AccumulatorSet struct {
	m     map[string]*Accumulator
	order []string
}

// Get returns the accumulator for an address.
func (s *AccumulatorSet) Get(address string) (*Accumulator, bool) {
	a, ok := s.m[address]
	return a, ok
}

// Len returns the number of distinct counterparties.
func (s *AccumulatorSet) Len() int { return len(s.order) }

// All returns accumulators in first-seen order.
func (s *AccumulatorSet) All() []*Accumulator {
	out := make([]*Accumulator, 0, len(s.order))
	for _, addr := range s.order {
		out = append(out, s.m[addr])
	}
	return out
}

func (s *AccumulatorSet) ensure(address string) *Accumulator {
	a, ok := s.m[address]
	if !ok {
		a = &Accumulator{Address: address}
		s.m[address] = a
		s.order = append(s.order, address)
	}
	return a
}

// Aggregate folds valued transfers into per-counterparty accumulators
// relative to the center address. The fold is a pure function of its input
// list: calling it twice over the same transfers yields equal sets.
//
// Self-transfers (both sides == center) carry no counterparty information
// and are skipped, as are transfers touching neither side of the center
// (impossible by construction of the fetch, ignored defensively).
func Aggregate(center string, transfers []ValuedTransfer) *AccumulatorSet {
	set := &AccumulatorSet{m: make(map[string]*Accumulator)}

	for _, vt := range transfers {
		from, to := vt.Transfer.From, vt.Transfer.To

		var counterparty string
		inbound := false
		switch {
		case to == center && from != center:
			counterparty = from
			inbound = true
		case from == center && to != center:
			counterparty = to
		default:
			continue
		}
		if counterparty == "" {
			continue
		}

		a := set.ensure(counterparty)
		if inbound {
			a.InboundUSD += vt.USD
		} else {
			a.OutboundUSD += vt.USD
		}
		a.TxCount++
		if ts := vt.Transfer.Timestamp; ts > a.LastActivity {
			a.LastActivity = ts
		}
	}

	return set
}
