package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/relaylab/convdiag/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, log.EnvironmentDevelopment, cfg.Log.Environment)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"stderr"}, cfg.Log.Outputs)
	assert.Equal(t, "http://localhost:8545", cfg.Etherman.URL)
	assert.Equal(t, uint(1), cfg.Etherman.RetryAttempts)
	assert.Equal(t, time.Second, cfg.Etherman.RetryDelay.Duration)
	assert.Equal(t, 1024, cfg.Etherman.CallCacheSize)
	assert.Equal(t, "", cfg.Contracts.Dir)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout.Duration)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout.Duration)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Endpoint)
	assert.Equal(t, common.HexToAddress("0x0e936b11c2e7b601055e58c7e32417187af4de4a"), cfg.NetworkAddr)
	assert.Equal(t, uint64(1), cfg.ChainID)
}

func TestLoadNetworkFlag(t *testing.T) {
	cfg, err := Load("", "local")
	require.NoError(t, err)
	assert.Equal(t, localConfig, cfg.NetworkConfig)

	_, err = Load("", "goerli")
	require.Error(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	content := `
[Etherman]
URL = "https://archive.example.org"
RetryAttempts = 3
RetryDelay = "250ms"

[Contracts]
Dir = "/etc/convdiag/abis"

[NetworkConfig]
NetworkAddr = "0x1111111111111111111111111111111111111111"
ChainID = 5
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0600))

	cfg, err := Load(file, "")
	require.NoError(t, err)
	assert.Equal(t, "https://archive.example.org", cfg.Etherman.URL)
	assert.Equal(t, uint(3), cfg.Etherman.RetryAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Etherman.RetryDelay.Duration)
	// values missing from the file keep their defaults
	assert.Equal(t, 1024, cfg.Etherman.CallCacheSize)
	assert.Equal(t, "/etc/convdiag/abis", cfg.Contracts.Dir)
	assert.Equal(t, common.HexToAddress("0x1111111111111111111111111111111111111111"), cfg.NetworkAddr)
	assert.Equal(t, uint64(5), cfg.ChainID)

	// the network is configured only once
	_, err = Load(file, "mainnet")
	require.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CONVDIAG_ETHERMAN_URL", "http://node:8545")
	t.Setenv("CONVDIAG_METRICS_ENABLED", "true")

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, "http://node:8545", cfg.Etherman.URL)
	assert.True(t, cfg.Metrics.Enabled)
}
