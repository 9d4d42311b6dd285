package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"coursectl/pkg/logging"
)

const apiSubsystem = "API"

// Client issues requests against a single backend base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for baseURL. A trailing slash is ignored.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No Timeout: requests are bounded by the caller's context only.
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// errorBody is the error envelope the backend may send on failure.
type errorBody struct {
	Message string `json:"message"`
}

// Do sends a request to path (relative to the base URL). A non-nil body is
// encoded as JSON. On a 2xx response with a body, the body is decoded into
// out when out is non-nil; an empty 2xx body leaves out untouched.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logging.Debug(apiSubsystem, "%s %s", method, req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		// A body that is not JSON, or has no message, gets the generic text.
		_ = json.Unmarshal(data, &eb)
		apiErr := newAPIError(resp.StatusCode, strings.TrimSpace(eb.Message))
		logging.Debug(apiSubsystem, "%s %s -> %d: %s", method, path, resp.StatusCode, apiErr.Message)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s %s: %w", method, path, err)
	}
	return nil
}
