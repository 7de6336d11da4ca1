package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/relaylab/convdiag/diagnosis"
	"github.com/relaylab/convdiag/etherman"
	"github.com/relaylab/convdiag/gerror"
	"github.com/relaylab/convdiag/log"
	"github.com/relaylab/convdiag/metrics"
)

const (
	diagnosePattern = "GET /v1/diagnose/{txHash}"
	healthPattern   = "GET /healthz"

	shutdownTimeout = 5 * time.Second
)

type diagnoseResponse struct {
	TxHash string `json:"txHash"`
	*diagnosis.Report
	Error string `json:"error,omitempty"`
}

// Server serves diagnoses over HTTP
type Server struct {
	cfg        Config
	metricsCfg metrics.Config
	diagnoser  diagnoser
	logger     *log.Logger
}

// NewServer creates the HTTP API on top of a diagnoser
func NewServer(cfg Config, metricsCfg metrics.Config, d diagnoser) *Server {
	return &Server{
		cfg:        cfg,
		metricsCfg: metricsCfg,
		diagnoser:  d,
		logger:     log.WithFields("module", "server"),
	}
}

// Handler returns the routes of the API
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(diagnosePattern, s.handleDiagnose)
	mux.HandleFunc(healthPattern, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if s.metricsCfg.Enabled {
		mux.Handle(metrics.Endpoint(s.metricsCfg), metrics.Handler())
	}
	return withRequestMetrics(mux)
}

// RunServer runs the HTTP API until ctx is done
func RunServer(ctx context.Context, cfg Config, metricsCfg metrics.Config, d diagnoser) error {
	if len(cfg.Port) == 0 {
		return fmt.Errorf("invalid TCP port for HTTP server: '%s'", cfg.Port)
	}

	s := NewServer(cfg, metricsCfg, d)
	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     s.Handler(),
		ReadTimeout: cfg.ReadTimeout.Duration,
	}

	errC := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server is serving at ", cfg.Port)
		errC <- srv.ListenAndServe()
	}()

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "failed to shutdown HTTP server")
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

func (s *Server) handleDiagnose(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("txHash")
	hash, err := etherman.ParseTxHash(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, diagnoseResponse{TxHash: raw, Error: err.Error()})
		return
	}

	ctx := r.Context()
	if s.cfg.RequestTimeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout.Duration)
		defer cancel()
	}

	report, err := s.diagnoser.Diagnose(ctx, hash)
	if err != nil {
		s.logger.Debugf("diagnosis of %s failed: %v", hash.Hex(), err)
		writeJSON(w, errorStatus(err), diagnoseResponse{TxHash: hash.Hex(), Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, diagnoseResponse{TxHash: hash.Hex(), Report: report})
}

func errorStatus(err error) int {
	// a timed out chain read is also a lookup error
	switch {
	case errors.Is(err, gerror.ErrDecode):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, gerror.ErrLookup):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warnf("failed to write response: %v", err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestMetrics records the status code and latency of every request
func withRequestMetrics(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		h.ServeHTTP(rec, r)
		metrics.RecordRequest(rec.code, time.Since(start))
	})
}
