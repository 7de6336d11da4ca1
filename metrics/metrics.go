package metrics

import (
	"strconv"
	"time"
)

// RecordDiagnosis increments the diagnosis count for the outcome and records how long it took
func RecordDiagnosis(outcome string, duration time.Duration) {
	labels := map[string]string{labelOutcome: outcome}
	counterInc(metricDiagnosisCount, labels)
	histogramObserve(metricDiagnosisDuration, float64(duration.Milliseconds()), labels)
}

// RecordChainCall records one RPC round trip to the node
func RecordChainCall(method string, latency time.Duration, isSuccess bool) {
	labels := map[string]string{labelMethod: method, labelIsSuccess: strconv.FormatBool(isSuccess)}
	counterInc(metricChainCallCount, labels)
	histogramObserve(metricChainCallLatency, float64(latency.Milliseconds()), labels)
}

// RecordChainCallCacheHit records a historical call served from the local cache
func RecordChainCallCacheHit(method string) {
	counterInc(metricChainCallCacheHit, map[string]string{labelMethod: method})
}

// RecordRequest records one HTTP request served by the API
func RecordRequest(code int, latency time.Duration) {
	labels := map[string]string{labelCode: strconv.Itoa(code)}
	counterInc(metricRequestCount, labels)
	histogramObserve(metricRequestLatency, float64(latency.Milliseconds()), labels)
}
