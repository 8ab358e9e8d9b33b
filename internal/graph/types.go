package graph

import "github.com/walletlens/walletlens/internal/transfer"

// ---------------------------------------------------------------------------
// Counterparty graph — output contract for the force-graph renderer
// ---------------------------------------------------------------------------

// NodeType drives visual styling of a node.
type NodeType string

const (
	NodeMain      NodeType = "main"
	NodeSender    NodeType = "sender"    // they sent more to the center
	NodeReceiver  NodeType = "receiver"  // center sent more to them
	NodeHighValue NodeType = "highValue" // top counterparties by raw USD volume
	NodeExchange  NodeType = "exchange"
	NodeContract  NodeType = "contract"
)

// LinkDirection colors a link relative to the center address.
type LinkDirection string

const (
	DirectionInbound       LinkDirection = "inbound"
	DirectionOutbound      LinkDirection = "outbound"
	DirectionBidirectional LinkDirection = "bidirectional"
)

// Category classifies a counterparty entity when derivable.
type Category string

const (
	CategoryDeFi   Category = "defi"
	CategoryTradFi Category = "tradfi"
	CategoryCEX    Category = "cex"
	CategoryP2P    Category = "p2p"
)

// SourceTag records which data source produced a node or link.
type SourceTag string

const (
	SourceChain     SourceTag = "chain"
	SourceSimulated SourceTag = "simulated"
	SourceMemory    SourceTag = "memory"
)

// Node is one rendered entity. Identity is the address (or synthetic id
// for non-chain entities), which makes re-insertion across expansions
// idempotent.
type Node struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        NodeType  `json:"type"`
	Value       float64   `json:"value"`
	TxCount     int       `json:"txCount"`
	Category    Category  `json:"category,omitempty"`
	DisplayName string    `json:"displayName,omitempty"`
	Source      SourceTag `json:"source,omitempty"`
}

// Link is one rendered relationship. The id is derived from the sorted
// endpoint pair so the same unordered pair always collapses to one link.
type Link struct {
	ID               string        `json:"id"`
	Source           string        `json:"source"`
	Target           string        `json:"target"`
	Value            float64       `json:"value"`
	TxCount          int           `json:"txCount"`
	Direction        LinkDirection `json:"direction"`
	RelationshipType string        `json:"relationshipType,omitempty"`
	LastActive       string        `json:"lastActive,omitempty"`
}

// Payload is the graph handed to the renderer.
type Payload struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// ValuedTransfer pairs a canonical transfer with its best-effort USD value.
type ValuedTransfer struct {
	Transfer transfer.Transfer
	USD      float64
}
