package config

// DefaultValues is the default configuration
const DefaultValues = `
[Log]
Environment = "development"
Level = "info"
Outputs = ["stderr"]

[Etherman]
URL = "http://localhost:8545"
RetryAttempts = 1
RetryDelay = "1s"
CallCacheSize = 1024

[Contracts]
Dir = ""

[Server]
Port = "8080"
ReadTimeout = "5s"
RequestTimeout = "60s"

[Metrics]
Enabled = false
Endpoint = "/metrics"
Env = "local"
`
