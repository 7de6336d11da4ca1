package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/relaylab/convdiag/diagnosis"
)

// APIError is returned when the API answers with a non 200 status
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("diagnosis API returned %d: %s", e.StatusCode, e.Message)
}

type diagnoseResponse struct {
	TxHash        string `json:"txHash"`
	FailureReason string `json:"failureReason"`
	Info          string `json:"info"`
	Error         string `json:"error"`
}

// RestClient is a client for the rest api.
type RestClient struct {
	url        string
	httpClient *http.Client
}

// NewRestClient creates new rest api client.
func NewRestClient(url string) *RestClient {
	return &RestClient{
		url:        strings.TrimSuffix(url, "/"),
		httpClient: http.DefaultClient,
	}
}

// Diagnose asks the API for the diagnosis of a transaction.
func (c RestClient) Diagnose(ctx context.Context, txHash common.Hash) (*diagnosis.Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s/%s", c.url, "/v1/diagnose", txHash.Hex()), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var diagResp diagnoseResponse
	if err := json.Unmarshal(bodyBytes, &diagResp); err != nil {
		return nil, errors.Wrapf(err, "unexpected response with status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: diagResp.Error}
	}
	return &diagnosis.Report{FailureReason: diagResp.FailureReason, Info: diagResp.Info}, nil
}

// Healthy reports whether the API answers its health check.
func (c RestClient) Healthy(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"/healthz", nil)
	if err != nil {
		return false, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}
