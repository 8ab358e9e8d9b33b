package synthetic

import (
	"regexp"
	"strings"

	"github.com/walletlens/walletlens/internal/addr"
	"github.com/walletlens/walletlens/internal/graph"
)

// DefaultWallet is the center identity of the synthetic transaction set.
const DefaultWallet = "0xb29b9fd58cdb2e3bb068bc8560d8c13b2454684d"

type entity struct {
	id   string
	name string
}

// Synthetic counterparties: DeFi protocols, TradFi entities, CEX hot
// wallets, and plain P2P wallets.
var defiProtocols = []entity{
	{"0x7a250d5630b4cf539739df2c5dacb4c659f2488d", "Uniswap V2 Router"},
	{"0x68b3465833fb72a70ecdf485e0e4c7bd8665fc45", "Uniswap V3 Router"},
	{"0x87870bca3f3fd6335c3f4ce83959d6d6e24b7ae0", "Aave V3 Pool"},
	{"0xc3d688b66703497daa19211eedff47f25384cdc3", "Compound cUSDCv3"},
	{"0xdef1c0ded9bec7f1a1670819833240f027b25eff", "0x Exchange"},
	{"0xd9e1ce17f2641f24ae83637ab66a2cca9c378b9f", "SushiSwap Router"},
	{"0x1111111254eeb25477b68fb85ed929f73a960582", "1inch Aggregator"},
	{"0xba12222222228d8ba445958a75a0704d566bf2c8", "Balancer Vault"},
	{"0xe592427a0aece92de3edee1f18e0157c05861564", "Uniswap V3"},
	{"0x3fc91a3afd70395cd496c647d5a6cc9d4b2b7fad", "Uniswap Universal Router"},
}

var tradfiCounterparties = []entity{
	{"tradfi:employer:acme", "ACME Corp (Salary)"},
	{"tradfi:landlord:rent", "Rent Payment"},
	{"tradfi:utility:electric", "Electric Co"},
	{"tradfi:utility:internet", "Internet Provider"},
	{"tradfi:merchant:amazon", "Amazon"},
	{"tradfi:merchant:groceries", "Supermarket"},
	{"tradfi:merchant:gas", "Gas Station"},
	{"tradfi:bank:checking", "Checking Account"},
	{"tradfi:bank:savings", "Savings Account"},
	{"tradfi:insurance:health", "Health Insurance"},
	{"tradfi:subscription:netflix", "Netflix"},
	{"tradfi:subscription:spotify", "Spotify"},
	{"tradfi:payment:venmo", "Venmo"},
	{"tradfi:payment:paypal", "PayPal"},
	{"tradfi:investment:broker", "Brokerage Account"},
}

var cexAddresses = []entity{
	{"0x28c6c06298d514db089934071355e5743bf21d60", "Binance"},
	{"0x21a31ee1afc51d94c2efccaa2092ad1028285549", "Binance 2"},
	{"0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be", "Binance Hot"},
	{"0x56eddb7aa87536c09ccc2793473599fd21a8b17f", "Coinbase"},
	{"0x71660c4005ba85c37ccec55d0c4493e66fe775d3", "Coinbase 2"},
	{"0x503828976d22510aad0201ac7ec88293211d23da", "Kraken"},
	{"0xd551234ae421e3bcba99a0da6d736074f22192ff", "Kraken 2"},
	{"0x267be1c1d684f78cb4f6a176c4911b741b4fc846", "Kraken 3"},
	{"0x1522900b6dafac587d499a862861c0869be6e428", "OKX"},
	{"0x6cc5f688a315f3dc28a7781717a9a798a59fda47", "OKX 2"},
}

var p2pWallets = []string{
	"0x742d35cc6634c0532925a3b844bc454e4438f44e",
	"0x5a0b54d5dc17e0aadc383d2db43b0a0d3e029c4c",
	"0x8ba1f109551bd432803012645ac136ddd64dba72",
	"0xab7c74abc0c4d48d1bdad5dcb26153fc8780f83e",
	"0xdc76cd25977e0a5ae17155770273ad58648900d3",
	"0xfb3bd022d5dacf95e28e6df9c21395317d7da8cb",
	"0x1f9840a85d5af5bf1d1762f925bdaddc4201f984",
	"0x2260fac5e5542a773aa44fbcfedf7c193bc2c599",
	"0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48",
	"0xdac17f958d2ee523a2206206994597c13d831ec7",
	"0x6b175474e89094c44da98b954eedeac495271d0f",
	"0x95ad61b0a150d79219dc64f5e6a8e8b0e93a0e6a",
	"0x7fc66500c84a76ad7e9c93437bfc5ac33e2ddae9",
	"0x514910771af9ca656af840dff83e8264ecf986ca",
	"0x9f8f72aa9304c8b593d555f12ef6589cc3a579a2",
}

var displayIndex = buildDisplayIndex()

func buildDisplayIndex() map[string]graph.LabelInfo {
	idx := make(map[string]graph.LabelInfo)
	for _, e := range defiProtocols {
		idx[strings.ToLower(e.id)] = graph.LabelInfo{DisplayName: e.name, Category: graph.CategoryDeFi}
	}
	for _, e := range tradfiCounterparties {
		idx[strings.ToLower(e.id)] = graph.LabelInfo{DisplayName: e.name, Category: graph.CategoryTradFi}
	}
	for _, e := range cexAddresses {
		idx[strings.ToLower(e.id)] = graph.LabelInfo{DisplayName: e.name, Category: graph.CategoryCEX}
	}
	for _, w := range p2pWallets {
		idx[strings.ToLower(w)] = graph.LabelInfo{DisplayName: addr.Short(w), Category: graph.CategoryP2P}
	}
	return idx
}

var hexIDRe = regexp.MustCompile(`^0x[a-f0-9]{40}$`)

// DisplayInfo resolves a static display name and category for a known
// synthetic or well-known entity id.
func DisplayInfo(id string) (graph.LabelInfo, bool) {
	id = strings.ToLower(id)
	if info, ok := displayIndex[id]; ok {
		return info, true
	}
	if rest, ok := strings.CutPrefix(id, "tradfi:"); ok {
		return graph.LabelInfo{
			DisplayName: strings.ReplaceAll(rest, ":", " "),
			Category:    graph.CategoryTradFi,
		}, true
	}
	if hexIDRe.MatchString(id) {
		return graph.LabelInfo{DisplayName: addr.Short(id), Category: graph.CategoryP2P}, true
	}
	return graph.LabelInfo{}, false
}
