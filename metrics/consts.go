package metrics

const (
	defaultMetricsEndpoint = "/metrics"
)

// Metric types
const (
	typeCounter   = "counter"
	typeHistogram = "histogram"
)

// Metric names and labels
const (
	prefix   = "convdiag_"
	labelEnv = "env"

	prefixDiagnosis         = prefix + "diagnosis_"
	metricDiagnosisCount    = prefixDiagnosis + "count"
	metricDiagnosisDuration = prefixDiagnosis + "duration_ms"
	labelOutcome            = "outcome"

	prefixChainCall         = prefix + "chain_call_"
	metricChainCallCount    = prefixChainCall + "count"
	metricChainCallLatency  = prefixChainCall + "latency_ms"
	metricChainCallCacheHit = prefixChainCall + "cache_hit_count"
	labelMethod             = "method"
	labelIsSuccess          = "is_success"

	prefixRequest        = prefix + "request_"
	metricRequestCount   = prefixRequest + "count"
	metricRequestLatency = prefixRequest + "latency_ms"
	labelCode            = "code"
)

// Diagnosis outcomes
const (
	OutcomeInsufficientAllowance = "insufficient_allowance"
	OutcomeMinimumReturn         = "minimum_return"
	OutcomeUnknown               = "unknown"
	OutcomeDecodeError           = "decode_error"
	OutcomeLookupError           = "lookup_error"
)
