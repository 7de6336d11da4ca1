package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/relaylab/convdiag/client"
	"github.com/relaylab/convdiag/config/types"
	"github.com/relaylab/convdiag/diagnosis"
	"github.com/relaylab/convdiag/gerror"
	"github.com/relaylab/convdiag/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const txHash = "0x4d9a8a3bc6e2ad1fbd9e4f2ccfc8a32bb86ce23bc8eb0b9ae21c79c1d8ab3b17"

type responseBody struct {
	TxHash        string `json:"txHash"`
	FailureReason string `json:"failureReason"`
	Info          string `json:"info"`
	Error         string `json:"error"`
}

func doRequest(t *testing.T, s *Server, path string) (*httptest.ResponseRecorder, responseBody) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var body responseBody
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestDiagnoseEndpoint(t *testing.T) {
	hash := common.HexToHash(txHash)

	testCases := []struct {
		name       string
		report     *diagnosis.Report
		err        error
		wantCode   int
		wantReason string
		wantInfo   string
		wantError  string
	}{
		{
			name:       "failure identified",
			report:     &diagnosis.Report{FailureReason: diagnosis.ReasonMinimumReturn, Info: "Transaction was sent with a minimum return of 100, but actual returned amount was 90"},
			wantCode:   http.StatusOK,
			wantReason: diagnosis.ReasonMinimumReturn,
			wantInfo:   "Transaction was sent with a minimum return of 100, but actual returned amount was 90",
		},
		{
			name:     "cause unknown",
			report:   &diagnosis.Report{Info: diagnosis.UnknownCauseInfo},
			wantCode: http.StatusOK,
			wantInfo: diagnosis.UnknownCauseInfo,
		},
		{
			name:      "not a conversion",
			err:       gerror.ErrDecode,
			wantCode:  http.StatusUnprocessableEntity,
			wantError: gerror.ErrDecode.Error(),
		},
		{
			name:      "node unavailable",
			err:       &gerror.LookupError{Op: "get transaction", Err: errors.New("connection refused")},
			wantCode:  http.StatusBadGateway,
			wantError: "get transaction: connection refused",
		},
		{
			name:      "unexpected failure",
			err:       errors.New("boom"),
			wantCode:  http.StatusInternalServerError,
			wantError: "boom",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDiagnoserMock(t)
			d.EXPECT().Diagnose(mock.Anything, hash).Return(tc.report, tc.err).Once()

			s := NewServer(Config{}, metrics.Config{}, d)
			rec, body := doRequest(t, s, "/v1/diagnose/"+txHash)

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Equal(t, hash.Hex(), body.TxHash)
			assert.Equal(t, tc.wantReason, body.FailureReason)
			assert.Equal(t, tc.wantInfo, body.Info)
			assert.Equal(t, tc.wantError, body.Error)
		})
	}
}

func TestDiagnoseEndpointRequestTimeout(t *testing.T) {
	hash := common.HexToHash(txHash)
	d := newDiagnoserMock(t)
	d.EXPECT().Diagnose(mock.Anything, hash).RunAndReturn(func(ctx context.Context, _ common.Hash) (*diagnosis.Report, error) {
		<-ctx.Done()
		return nil, &gerror.LookupError{Op: "eth_call", Err: ctx.Err()}
	}).Once()

	s := NewServer(Config{RequestTimeout: types.NewDuration(10 * time.Millisecond)}, metrics.Config{}, d)
	rec, body := doRequest(t, s, "/v1/diagnose/"+txHash)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "eth_call: "+context.DeadlineExceeded.Error(), body.Error)
}

func TestDiagnoseEndpointInvalidHash(t *testing.T) {
	d := newDiagnoserMock(t)
	s := NewServer(Config{}, metrics.Config{}, d)

	for _, raw := range []string{"0x1234", "4d9a8a3bc6e2ad1fbd9e4f2ccfc8a32bb86ce23bc8eb0b9ae21c79c1d8ab3b17", "0xzz"} {
		rec, body := doRequest(t, s, "/v1/diagnose/"+raw)
		assert.Equal(t, http.StatusBadRequest, rec.Code, raw)
		assert.Contains(t, body.Error, "invalid transaction hash", raw)
	}
}

func TestDiagnoseEndpointMethodNotAllowed(t *testing.T) {
	s := NewServer(Config{}, metrics.Config{}, newDiagnoserMock(t))

	req := httptest.NewRequest(http.MethodPost, "/v1/diagnose/"+txHash, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthz(t *testing.T) {
	s := NewServer(Config{}, metrics.Config{}, newDiagnoserMock(t))

	rec, _ := doRequest(t, s, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	cfg := metrics.Config{Enabled: true, Env: "test"}
	metrics.Init(cfg)

	s := NewServer(Config{}, cfg, newDiagnoserMock(t))
	rec, _ := doRequest(t, s, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doRequest(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "convdiag_request_count")

	disabled := NewServer(Config{}, metrics.Config{}, newDiagnoserMock(t))
	rec, _ = doRequest(t, disabled, "/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRestClientRoundTrip(t *testing.T) {
	hash := common.HexToHash(txHash)
	d := newDiagnoserMock(t)
	d.EXPECT().Diagnose(mock.Anything, hash).Return(&diagnosis.Report{Info: diagnosis.UnknownCauseInfo}, nil).Once()
	d.EXPECT().Diagnose(mock.Anything, common.Hash{}).Return(nil, gerror.ErrDecode).Once()

	srv := httptest.NewServer(NewServer(Config{}, metrics.Config{}, d).Handler())
	defer srv.Close()
	c := client.NewRestClient(srv.URL)

	healthy, err := c.Healthy(context.Background())
	require.NoError(t, err)
	assert.True(t, healthy)

	report, err := c.Diagnose(context.Background(), hash)
	require.NoError(t, err)
	assert.True(t, report.IsUnknown())

	_, err = c.Diagnose(context.Background(), common.Hash{})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, gerror.ErrDecode.Error(), apiErr.Message)
}
