package graph

import "sync"

// Merger accumulates graphs across repeated expansion calls, the stateful
// client-side merge modeled explicitly. Nodes are idempotent on id
// (first-write-wins); links colliding on id sum value and tx count. The
// core pipeline stays stateless per call; a Merger belongs to the
// presentation layer (one per viewing session).
type Merger struct {
	mu        sync.Mutex
	nodes     map[string]Node
	links     map[string]Link
	nodeOrder []string
	linkOrder []string
}

// NewMerger creates an empty session accumulator.
func NewMerger() *Merger {
	return &Merger{
		nodes: make(map[string]Node),
		links: make(map[string]Link),
	}
}

// Add folds one expansion payload into the session graph.
func (m *Merger) Add(p Payload) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, n := range p.Nodes {
		if _, ok := m.nodes[n.ID]; !ok {
			m.nodes[n.ID] = n
			m.nodeOrder = append(m.nodeOrder, n.ID)
		}
	}

	for _, l := range p.Links {
		id := LinkID(l.Source, l.Target)
		if existing, ok := m.links[id]; ok {
			existing.Value += l.Value
			existing.TxCount += l.TxCount
			if l.LastActive > existing.LastActive {
				existing.LastActive = l.LastActive
			}
			m.links[id] = existing
			continue
		}
		l.ID = id
		m.links[id] = l
		m.linkOrder = append(m.linkOrder, id)
	}
}

// Graph returns the merged session graph in first-seen order.
func (m *Merger) Graph() Payload {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := Payload{
		Nodes: make([]Node, 0, len(m.nodeOrder)),
		Links: make([]Link, 0, len(m.linkOrder)),
	}
	for _, id := range m.nodeOrder {
		out.Nodes = append(out.Nodes, m.nodes[id])
	}
	for _, id := range m.linkOrder {
		out.Links = append(out.Links, m.links[id])
	}
	return out
}
