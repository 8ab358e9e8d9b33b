package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	yaml := `
general:
  instance_id: "test-node"
  environment: "development"
  log_level: "debug"

server:
  port: 9090

explorer:
  endpoints:
    1: "https://api.etherscan.io/api"
  api_key: "test-key"
  page_size: 25

price:
  fallback_native_usd: 1800

ranking:
  top_k: 10
  tx_count_weight: 50
`
	tmpFile, err := os.CreateTemp("", "walletlens-config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	_, err = tmpFile.WriteString(yaml)
	require.NoError(t, err)
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	require.NoError(t, err)

	assert.Equal(t, "test-node", cfg.General.InstanceID)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.Explorer.APIKey)
	assert.Equal(t, 25, cfg.Explorer.PageSize)
	assert.Equal(t, 1800.0, cfg.Price.FallbackNative)
	assert.Equal(t, 10, cfg.Ranking.TopK)
	assert.Equal(t, 50.0, cfg.Ranking.TxCountWeight)
}

func TestLoadConfigDefaults(t *testing.T) {
	yaml := `
general:
  environment: "staging"
`
	tmpFile, err := os.CreateTemp("", "walletlens-config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	_, err = tmpFile.WriteString(yaml)
	require.NoError(t, err)
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	require.NoError(t, err)

	assert.Equal(t, "walletlens-1", cfg.General.InstanceID)
	assert.Equal(t, "info", cfg.General.LogLevel)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 50, cfg.Explorer.PageSize)
	assert.Equal(t, "https://api.etherscan.io/api", cfg.Explorer.Endpoints[1])
	assert.Equal(t, 300, cfg.Price.CacheTTLS)
	assert.Equal(t, 2600.0, cfg.Price.FallbackNative)
	assert.Equal(t, 20, cfg.Ranking.TopK)
	assert.Equal(t, 100.0, cfg.Ranking.TxCountWeight)
	assert.Equal(t, 3, cfg.Ranking.HighValueCount)
}

func TestLoadConfigEnvExpansion(t *testing.T) {
	os.Setenv("TEST_WALLETLENS_KEY", "env-key")
	defer os.Unsetenv("TEST_WALLETLENS_KEY")

	yaml := `
explorer:
  api_key: "${TEST_WALLETLENS_KEY}"
`
	tmpFile, err := os.CreateTemp("", "walletlens-config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	_, err = tmpFile.WriteString(yaml)
	require.NoError(t, err)
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Explorer.APIKey)
}
