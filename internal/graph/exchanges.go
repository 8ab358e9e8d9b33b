package graph

// ---------------------------------------------------------------------------
// Known exchange hot wallets — static label set for node typing
// ---------------------------------------------------------------------------

// ExchangeWallets maps known centralized exchange hot wallet addresses
// (lowercase) to exchange names.
var ExchangeWallets = map[string]string{
	// Binance
	"0x28c6c06298d514db089934071355e5743bf21d60": "binance",
	"0x21a31ee1afc51d94c2efccaa2092ad1028285549": "binance",
	"0xdfd5293d8e347dfe59e90efd55b2956a1343963d": "binance",
	"0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be": "binance",

	// Coinbase
	"0x56eddb7aa87536c09ccc2793473599fd21a8b17f": "coinbase",
	"0x71660c4005ba85c37ccec55d0c4493e66fe775d3": "coinbase",
	"0x503828976d22510aad0201ac7ec88293211d23da": "coinbase",

	// Kraken
	"0xd551234ae421e3bcba99a0da6d736074f22192ff": "kraken",
	"0x267be1c1d684f78cb4f6a176c4911b741b4fc846": "kraken",

	// OKX
	"0x1522900b6dafac587d499a862861c0869be6e428": "okx",
}

// IsExchange checks if an address is a known exchange hot wallet.
func IsExchange(address string) (string, bool) {
	name, ok := ExchangeWallets[address]
	return name, ok
}

// AddExchange adds an exchange wallet address at runtime.
func AddExchange(address, name string) {
	ExchangeWallets[address] = name
}
