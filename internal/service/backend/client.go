package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	applog "github.com/janisto/hello-backend/internal/platform/logging"
)

const (
	dataPath = "/api/data"
	// DefaultTimeout bounds a single backend call.
	DefaultTimeout = 10 * time.Second
	// maxBodyBytes caps how much of a backend response is read.
	maxBodyBytes = 1 << 20
)

// ErrUpstream is the sentinel all backend failures unwrap to.
var ErrUpstream = errors.New("backend upstream error")

// UpstreamError describes a failed backend call. Status is 0 when no HTTP
// response was received.
type UpstreamError struct {
	Status int
	cause  error
}

func (e *UpstreamError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("backend upstream error (status=%d)", e.Status)
	}
	return fmt.Sprintf("backend upstream error (status=%d): %v", e.Status, e.cause)
}

// Is reports ErrUpstream as a match.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

func (e *UpstreamError) Unwrap() error {
	return e.cause
}

// Data mirrors the backend's /api/data body.
type Data struct {
	Message     string `json:"message"`
	Environment string `json:"environment"`
}

// Client calls the backend service over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient returns a Client for baseURL. A nil httpClient gets one with DefaultTimeout.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{httpClient: httpClient, baseURL: baseURL}
}

// FetchData retrieves the backend's data payload.
func (c *Client) FetchData(ctx context.Context) (Data, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+dataPath, nil)
	if err != nil {
		return Data{}, &UpstreamError{cause: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Data{}, &UpstreamError{cause: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			applog.LogWarn(ctx, "failed to close backend response body", zap.Error(cerr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return Data{}, &UpstreamError{Status: resp.StatusCode}
	}

	var out Data
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		return Data{}, &UpstreamError{Status: resp.StatusCode, cause: fmt.Errorf("decoding response: %w", err)}
	}
	return out, nil
}
