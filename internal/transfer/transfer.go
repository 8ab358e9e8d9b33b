package transfer

import "time"

// Transfer is one economically meaningful movement of value between two
// addresses, decimal-corrected and lowercase-normalized. Created once per
// raw provider record at ingestion and never mutated.
type Transfer struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	Asset        string  `json:"asset"`                   // e.g. "ETH", "USDC"
	TokenAddress string  `json:"token_address,omitempty"` // empty = native coin
	Amount       float64 `json:"amount"`                  // already divided by 10^decimals
	TxHash       string  `json:"tx_hash"`
	Timestamp    string  `json:"timestamp,omitempty"` // ISO-8601, may be empty
}

// Native reports whether the transfer moved the chain's native coin.
func (t Transfer) Native() bool { return t.TokenAddress == "" }

// RawRecord is a provider-native transfer record as returned by
// etherscan-compatible explorer APIs. ContractAddress is empty for
// native-coin movements.
type RawRecord struct {
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"` // raw integer amount, base units
	TokenSymbol     string `json:"tokenSymbol,omitempty"`
	TokenDecimal    string `json:"tokenDecimal,omitempty"`
	ContractAddress string `json:"contractAddress,omitempty"`
	TimeStamp       string `json:"timeStamp"` // unix seconds, decimal string
}

// isoFromUnixString converts an explorer unix-seconds string to ISO-8601 UTC.
// Returns "" for unparseable input; timestamps are best-effort metadata.
func isoFromUnixString(s string) string {
	if s == "" {
		return ""
	}
	var secs int64
	for _, c := range s {
		if c < '0' || c > '9' {
			return ""
		}
		secs = secs*10 + int64(c-'0')
	}
	return time.Unix(secs, 0).UTC().Format(time.RFC3339)
}
