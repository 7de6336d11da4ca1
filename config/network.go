package config

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/relaylab/convdiag/log"
)

// NetworkConfig is the configuration struct for the different environments
type NetworkConfig struct {
	// NetworkAddr is the network router, the contract users approve to spend their source tokens
	NetworkAddr common.Address
	ChainID     uint64
}

const (
	mainnet = "mainnet"
	local   = "local"
)

//nolint:gomnd
var (
	mainnetConfig = NetworkConfig{
		NetworkAddr: common.HexToAddress("0x0e936b11c2e7b601055e58c7e32417187af4de4a"),
		ChainID:     1, //Mainnet
	}
	localConfig = NetworkConfig{
		NetworkAddr: common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		ChainID:     1337,
	}
)

func (cfg *Config) loadNetworkConfig(network string) error {
	switch network {
	case local:
		log.Debug("Local network selected")
		cfg.NetworkConfig = localConfig
	case mainnet, "":
		log.Debug("Mainnet network selected")
		cfg.NetworkConfig = mainnetConfig
	default:
		return errors.Errorf("unknown network %q, expected %s or %s", network, mainnet, local)
	}
	return nil
}
