package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for walletlens.
type Config struct {
	General  GeneralConfig  `yaml:"general"`
	Server   ServerConfig   `yaml:"server"`
	Explorer ExplorerConfig `yaml:"explorer"`
	Price    PriceConfig    `yaml:"price"`
	Ranking  RankingConfig  `yaml:"ranking"`
	Naming   NamingConfig   `yaml:"naming"`
	Memstore MemstoreConfig `yaml:"memstore"`
}

type GeneralConfig struct {
	InstanceID  string `yaml:"instance_id"`
	Environment string `yaml:"environment"` // production|staging|development
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"` // json|text
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type ExplorerConfig struct {
	// Endpoints maps chain id to an etherscan-compatible API base URL.
	// Unknown chain ids fall back to chain 1.
	Endpoints map[uint64]string `yaml:"endpoints"`
	APIKey    string            `yaml:"api_key"`
	PageSize  int               `yaml:"page_size"` // max transfers per direction
	TimeoutS  int               `yaml:"timeout_s"`
}

type PriceConfig struct {
	NativeURL      string  `yaml:"native_url"`
	TokenBatchURL  string  `yaml:"token_batch_url"`
	ChainSlug      string  `yaml:"chain_slug"` // price-namespace slug, e.g. "ethereum"
	CacheTTLS      int     `yaml:"cache_ttl_s"`
	TimeoutS       int     `yaml:"timeout_s"`
	FallbackNative float64 `yaml:"fallback_native_usd"` // last resort when no quote and no stale cache
}

// RankingConfig holds the counterparty scoring heuristics. The constants
// match the product's original behavior but are tunable here.
type RankingConfig struct {
	TopK           int     `yaml:"top_k"`
	TxCountWeight  float64 `yaml:"tx_count_weight"`
	HighValueCount int     `yaml:"high_value_count"`
	ResolveTopN    int     `yaml:"resolve_top_n"` // counterparties to reverse-resolve names for
}

type NamingConfig struct {
	Enabled  bool   `yaml:"enabled"`
	BaseURL  string `yaml:"base_url"`
	TimeoutS int    `yaml:"timeout_s"`
}

type MemstoreConfig struct {
	BaseURL  string `yaml:"base_url"`
	APIKey   string `yaml:"api_key"`
	UserID   string `yaml:"user_id"` // center identity whose memories are graphed
	PageSize int    `yaml:"page_size"`
	TimeoutS int    `yaml:"timeout_s"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(cfg)

	return cfg, nil
}

// Default returns a configuration with all defaults applied, for running
// without a config file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func (c ExplorerConfig) Timeout() time.Duration { return time.Duration(c.TimeoutS) * time.Second }
func (c PriceConfig) Timeout() time.Duration    { return time.Duration(c.TimeoutS) * time.Second }
func (c PriceConfig) CacheTTL() time.Duration   { return time.Duration(c.CacheTTLS) * time.Second }
func (c NamingConfig) Timeout() time.Duration   { return time.Duration(c.TimeoutS) * time.Second }
func (c MemstoreConfig) Timeout() time.Duration { return time.Duration(c.TimeoutS) * time.Second }

func applyDefaults(cfg *Config) {
	if cfg.General.InstanceID == "" {
		cfg.General.InstanceID = "walletlens-1"
	}
	if cfg.General.Environment == "" {
		cfg.General.Environment = "development"
	}
	if cfg.General.LogLevel == "" {
		cfg.General.LogLevel = "info"
	}
	if cfg.General.LogFormat == "" {
		cfg.General.LogFormat = "json"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if len(cfg.Explorer.Endpoints) == 0 {
		cfg.Explorer.Endpoints = map[uint64]string{
			1:     "https://api.etherscan.io/api",
			10:    "https://api-optimistic.etherscan.io/api",
			137:   "https://api.polygonscan.com/api",
			8453:  "https://api.basescan.org/api",
			42161: "https://api.arbiscan.io/api",
		}
	}
	if cfg.Explorer.PageSize == 0 {
		cfg.Explorer.PageSize = 50
	}
	if cfg.Explorer.TimeoutS == 0 {
		cfg.Explorer.TimeoutS = 30
	}
	if cfg.Price.NativeURL == "" {
		cfg.Price.NativeURL = "https://api.coingecko.com/api/v3/simple/price?ids=ethereum&vs_currencies=usd"
	}
	if cfg.Price.TokenBatchURL == "" {
		cfg.Price.TokenBatchURL = "https://coins.llama.fi/prices/current/"
	}
	if cfg.Price.ChainSlug == "" {
		cfg.Price.ChainSlug = "ethereum"
	}
	if cfg.Price.CacheTTLS == 0 {
		cfg.Price.CacheTTLS = 300 // 5 minutes
	}
	if cfg.Price.TimeoutS == 0 {
		cfg.Price.TimeoutS = 10
	}
	if cfg.Price.FallbackNative == 0 {
		cfg.Price.FallbackNative = 2600
	}
	if cfg.Ranking.TopK == 0 {
		cfg.Ranking.TopK = 20
	}
	if cfg.Ranking.TxCountWeight == 0 {
		cfg.Ranking.TxCountWeight = 100
	}
	if cfg.Ranking.HighValueCount == 0 {
		cfg.Ranking.HighValueCount = 3
	}
	if cfg.Ranking.ResolveTopN == 0 {
		cfg.Ranking.ResolveTopN = 10
	}
	if cfg.Naming.BaseURL == "" {
		cfg.Naming.BaseURL = "https://api.ensideas.com/ens/resolve"
	}
	if cfg.Naming.TimeoutS == 0 {
		cfg.Naming.TimeoutS = 5
	}
	if cfg.Memstore.BaseURL == "" {
		cfg.Memstore.BaseURL = "https://api.mem0.ai"
	}
	if cfg.Memstore.PageSize == 0 {
		cfg.Memstore.PageSize = 500
	}
	if cfg.Memstore.TimeoutS == 0 {
		cfg.Memstore.TimeoutS = 15
	}
}
