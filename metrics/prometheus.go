package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/relaylab/convdiag/log"
)

var (
	mutex       sync.RWMutex
	registry    *prometheus.Registry
	initialized bool
	env         string

	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
)

func getLogger(metricName, metricType string) *log.Logger {
	return log.WithFields("metricName", metricName, "metricType", metricType)
}

// Init initializes the metrics registry. It does nothing if the metrics are disabled.
func Init(c Config) {
	if !c.Enabled {
		return
	}
	mutex.Lock()
	if !initialized {
		registry = prometheus.NewRegistry()
		counters = make(map[string]*prometheus.CounterVec)
		histograms = make(map[string]*prometheus.HistogramVec)
		env = c.Env
		initialized = true
	}
	mutex.Unlock()

	registerCounter(prometheus.CounterOpts{Name: metricDiagnosisCount}, labelOutcome)
	registerHistogram(prometheus.HistogramOpts{Name: metricDiagnosisDuration}, labelOutcome)
	registerCounter(prometheus.CounterOpts{Name: metricChainCallCount}, labelMethod, labelIsSuccess)
	registerHistogram(prometheus.HistogramOpts{Name: metricChainCallLatency}, labelMethod, labelIsSuccess)
	registerCounter(prometheus.CounterOpts{Name: metricChainCallCacheHit}, labelMethod)
	registerCounter(prometheus.CounterOpts{Name: metricRequestCount}, labelCode)
	registerHistogram(prometheus.HistogramOpts{Name: metricRequestLatency}, labelCode)
}

// Endpoint returns the configured endpoint or the default one
func Endpoint(c Config) string {
	if c.Endpoint == "" {
		return defaultMetricsEndpoint
	}
	return c.Endpoint
}

// Handler returns the HTTP handler exposing the registry. Init must be called before.
func Handler() http.Handler {
	mutex.RLock()
	defer mutex.RUnlock()
	if !initialized {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

/*
 * -------------------- Counter functions --------------------
 */

func registerCounter(opt prometheus.CounterOpts, labelNames ...string) {
	logger := getLogger(opt.Name, typeCounter)
	mutex.Lock()
	defer mutex.Unlock()
	if !initialized {
		return
	}

	if _, ok := counters[opt.Name]; ok {
		return
	}

	opt.ConstLabels = prometheus.Labels{labelEnv: env}
	collector := prometheus.NewCounterVec(opt, labelNames)
	if err := registry.Register(collector); err != nil {
		logger.Errorf("metrics register error: %v", err)
		return
	}
	counters[opt.Name] = collector

	logger.Debugf("metrics register successfully")
}

func counterInc(name string, labelValues map[string]string) {
	mutex.RLock()
	defer mutex.RUnlock()
	if !initialized {
		return
	}

	c, ok := counters[name]
	if !ok {
		getLogger(name, typeCounter).Errorf("collector not found")
		return
	}
	c.With(labelValues).Inc()
}

/*
 * -------------------- Histogram functions --------------------
 */

func registerHistogram(opt prometheus.HistogramOpts, labelNames ...string) {
	logger := getLogger(opt.Name, typeHistogram)
	mutex.Lock()
	defer mutex.Unlock()
	if !initialized {
		return
	}

	if _, ok := histograms[opt.Name]; ok {
		return
	}

	opt.ConstLabels = prometheus.Labels{labelEnv: env}
	collector := prometheus.NewHistogramVec(opt, labelNames)
	if err := registry.Register(collector); err != nil {
		logger.Errorf("metrics register error: %v", err)
		return
	}
	histograms[opt.Name] = collector

	logger.Debugf("metrics register successfully")
}

func histogramObserve(name string, value float64, labelValues map[string]string) {
	mutex.RLock()
	defer mutex.RUnlock()
	if !initialized {
		return
	}

	c, ok := histograms[name]
	if !ok {
		getLogger(name, typeHistogram).Errorf("collector not found")
		return
	}
	c.With(labelValues).Observe(value)
}
