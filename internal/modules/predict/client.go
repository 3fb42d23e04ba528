package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// The prediction model runs as a separate service; 30s covers its cold
// starts on the free hosting tier.
const upstreamTimeout = 30 * time.Second

var (
	ErrUpstreamTimeout = errors.New("prediction service timed out")
	ErrUpstream        = errors.New("prediction service unavailable")
)

// Client talks to the price prediction model service. The upstream is a
// bespoke HTTP service, so this is a plain JSON passthrough.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: upstreamTimeout},
	}
}

// Predict forwards the device attributes as-is and returns the upstream
// response body decoded into a generic map.
func (c *Client) Predict(ctx context.Context, payload map[string]any) (map[string]any, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrUpstreamTimeout
		}
		return nil, ErrUpstream
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrUpstream
	}
	if resp.StatusCode != http.StatusOK {
		return nil, ErrUpstream
	}

	var result map[string]any
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, ErrUpstream
	}
	return result, nil
}

// Healthy probes the upstream root endpoint.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode == http.StatusOK
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
