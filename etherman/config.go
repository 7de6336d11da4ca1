package etherman

import "github.com/relaylab/convdiag/config/types"

// Config represents the configuration of the etherman
type Config struct {
	// URL is the endpoint of the node used for every historical read. The node must serve archive state.
	URL string `mapstructure:"URL"`

	// RetryAttempts is the number of attempts of each RPC. 1 disables retries.
	RetryAttempts uint `mapstructure:"RetryAttempts"`

	// RetryDelay is the delay between two attempts of the same RPC
	RetryDelay types.Duration `mapstructure:"RetryDelay"`

	// CallCacheSize is the number of historical call results kept in memory. 0 disables the cache.
	CallCacheSize int `mapstructure:"CallCacheSize"`
}
