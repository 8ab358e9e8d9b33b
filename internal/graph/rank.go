package graph

import "sort"

// Params holds the ranking heuristics. The defaults reproduce the
// product's established behavior; the tx-count weight exists to surface
// relationship depth, keeping frequent small counterparties competitive
// with infrequent large ones.
type Params struct {
	TopK           int
	TxCountWeight  float64
	HighValueCount int
}

// DefaultParams returns the established constants.
func DefaultParams() Params {
	return Params{
		TopK:           20,
		TxCountWeight:  100,
		HighValueCount: 3,
	}
}

// Ranked is a scored counterparty selected for rendering.
type Ranked struct {
	Accumulator
	TotalUSD  float64
	Score     float64
	HighValue bool // among the top counterparties by raw USD volume
}

// Rank scores every accumulator, sorts descending by score with a stable
// tie-break on first-seen order, truncates to the top K, and flags the
// highest-volume entries. High-value flagging is volume-based, not
// score-based, and only ever chosen from inside the selected top K.
//
// An empty set yields an empty slice; that is a valid result, not an error.
func Rank(set *AccumulatorSet, p Params) []Ranked {
	ranked := make([]Ranked, 0, set.Len())
	for _, a := range set.All() {
		total := a.TotalUSD()
		ranked = append(ranked, Ranked{
			Accumulator: *a,
			TotalUSD:    total,
			Score:       total + float64(a.TxCount)*p.TxCountWeight,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if p.TopK > 0 && len(ranked) > p.TopK {
		ranked = ranked[:p.TopK]
	}

	if p.HighValueCount > 0 {
		byVolume := make([]*Ranked, len(ranked))
		for i := range ranked {
			byVolume[i] = &ranked[i]
		}
		sort.SliceStable(byVolume, func(i, j int) bool { return byVolume[i].TotalUSD > byVolume[j].TotalUSD })
		for i := 0; i < len(byVolume) && i < p.HighValueCount; i++ {
			byVolume[i].HighValue = true
		}
	}

	return ranked
}
