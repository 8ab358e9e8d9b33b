package graph

import (
	"github.com/walletlens/walletlens/internal/addr"
)

// LabelInfo is a static display name and category for a known entity.
type LabelInfo struct {
	DisplayName string
	Category    Category
}

// Options configures graph materialization.
type Options struct {
	// Names maps address -> resolved human-readable name (reverse lookup).
	Names map[string]string
	// Labels resolves static display names and categories for known
	// synthetic or well-known entities. May be nil.
	Labels func(id string) (LabelInfo, bool)
	// Source tags every emitted node and link.
	Source SourceTag
}

// LinkID derives a stable link id from the unordered endpoint pair: the two
// ids sorted lexicographically and joined. The same pair discovered from
// either direction collapses to the same id, which is what lets clients
// merge repeated expansions.
func LinkID(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "-" + b
}

// Materialize converts the ranked counterparty list into the final node and
// link payload. The center itself is emitted first as the main node; an
// empty ranked list therefore yields a main-node-only graph.
func Materialize(center string, ranked []Ranked, opts Options) Payload {
	nodes := make([]Node, 0, len(ranked)+1)
	links := make([]Link, 0, len(ranked))

	main := Node{
		ID:     center,
		Label:  addr.Short(center),
		Type:   NodeMain,
		Source: opts.Source,
	}
	if opts.Labels != nil {
		if info, ok := opts.Labels(center); ok {
			main.DisplayName = info.DisplayName
			main.Category = info.Category
		}
	}
	nodes = append(nodes, main)

	for _, cp := range ranked {
		var info LabelInfo
		if opts.Labels != nil {
			if li, ok := opts.Labels(cp.Address); ok {
				info = li
			}
		}

		displayName := opts.Names[cp.Address]
		if displayName == "" {
			displayName = info.DisplayName
		}

		label := displayName
		if label == "" {
			label = addr.Short(cp.Address)
		}

		nodes = append(nodes, Node{
			ID:          cp.Address,
			Label:       label,
			Type:        nodeType(cp, info.Category),
			Value:       cp.TotalUSD,
			TxCount:     cp.TxCount,
			Category:    info.Category,
			DisplayName: displayName,
			Source:      opts.Source,
		})

		links = append(links, Link{
			ID:               LinkID(center, cp.Address),
			Source:           center,
			Target:           cp.Address,
			Value:            cp.TotalUSD,
			TxCount:          cp.TxCount,
			Direction:        linkDirection(cp),
			RelationshipType: relationshipType(info.Category),
			LastActive:       cp.LastActivity,
		})
	}

	return Payload{Nodes: nodes, Links: links}
}

// nodeType assigns the render type, first match wins: high-value beats the
// static exchange set, which beats the flow-imbalance classification.
func nodeType(cp Ranked, category Category) NodeType {
	switch {
	case cp.HighValue:
		return NodeHighValue
	case category == CategoryCEX:
		return NodeExchange
	case category == CategoryDeFi:
		return NodeContract
	default:
		if _, ok := IsExchange(cp.Address); ok {
			return NodeExchange
		}
		if cp.OutboundUSD > cp.InboundUSD {
			// Center sent more to them than it received.
			return NodeReceiver
		}
		return NodeSender
	}
}

// linkDirection classifies flow relative to the center: strictly one-way
// flows get a direction, everything else (both nonzero, or both zero) is
// bidirectional.
func linkDirection(cp Ranked) LinkDirection {
	switch {
	case cp.InboundUSD > 0 && cp.OutboundUSD == 0:
		return DirectionInbound
	case cp.OutboundUSD > 0 && cp.InboundUSD == 0:
		return DirectionOutbound
	default:
		return DirectionBidirectional
	}
}

func relationshipType(c Category) string {
	switch c {
	case CategoryDeFi:
		return "DeFi"
	case CategoryTradFi:
		return "TradFi"
	case CategoryCEX:
		return "CEX"
	case CategoryP2P:
		return "P2P"
	default:
		return ""
	}
}
