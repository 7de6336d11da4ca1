package server

import "github.com/relaylab/convdiag/config/types"

// Config struct
type Config struct {
	// Port is TCP port to listen by the HTTP API
	Port string `mapstructure:"Port"`
	// ReadTimeout is the maximum duration for reading the entire request
	ReadTimeout types.Duration `mapstructure:"ReadTimeout"`
	// RequestTimeout bounds the chain reads of a single diagnosis
	RequestTimeout types.Duration `mapstructure:"RequestTimeout"`
}
