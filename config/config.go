package config

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/relaylab/convdiag/etherman"
	"github.com/relaylab/convdiag/etherman/smartcontracts/abis"
	"github.com/relaylab/convdiag/log"
	"github.com/relaylab/convdiag/metrics"
	"github.com/relaylab/convdiag/server"
	"github.com/spf13/viper"
)

const envPrefix = "CONVDIAG"

// Config struct
type Config struct {
	Log       log.Config
	Etherman  etherman.Config
	Contracts abis.Config
	Server    server.Config
	Metrics   metrics.Config
	NetworkConfig
}

// Load loads the configuration
func Load(configFilePath string, network string) (*Config, error) {
	var cfg Config
	v := viper.New()
	v.SetConfigType("toml")

	err := v.ReadConfig(bytes.NewBuffer([]byte(DefaultValues)))
	if err != nil {
		return nil, err
	}
	err = v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc()))
	if err != nil {
		return nil, err
	}
	if configFilePath != "" {
		dirName, fileName := filepath.Split(configFilePath)

		fileExtension := strings.TrimPrefix(filepath.Ext(fileName), ".")
		fileNameWithoutExtension := strings.TrimSuffix(fileName, "."+fileExtension)

		v.AddConfigPath(dirName)
		v.SetConfigName(fileNameWithoutExtension)
		v.SetConfigType(fileExtension)
	}
	v.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.SetEnvPrefix(envPrefix)
	if configFilePath != "" {
		err = v.MergeInConfig()
		if err != nil {
			_, ok := err.(viper.ConfigFileNotFoundError)
			if ok {
				log.Infof("config file not found")
			} else {
				log.Infof("error reading config file: %v", err)
				return nil, err
			}
		}
	}

	err = v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc()))
	if err != nil {
		return nil, err
	}

	if v.IsSet("NetworkConfig") && network != "" {
		return nil, errors.New("Network details are provided in the config file (the [NetworkConfig] section) and as a flag (the --network or -n). Configure it only once and try again please.")
	}
	if !v.IsSet("NetworkConfig") {
		err = cfg.loadNetworkConfig(network)
		if err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}
