package abis

// Config represents the configuration of the interface descriptors
type Config struct {
	// Dir is an optional directory with <Name>.abi files overriding the embedded descriptors
	Dir string `mapstructure:"Dir"`
}
