// Package client implements the REST client for the retrolog backend API.
// Exported repository methods honor the boundary contract inherited from the
// original front end: failures are logged and degrade to empty or nil results
// rather than surfacing as errors, so callers can never crash on a backend
// hiccup. Typed errors exist internally and stop at this boundary.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	dialTimeout = 10 * time.Second
	reqTimeout  = 30 * time.Second
)

// Client talks to a single backend instance identified by its base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the backend at baseURL.
func New(baseURL string) *Client {
	dialer := &net.Dialer{Timeout: dialTimeout}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: dialer.DialContext,
			},
			Timeout: reqTimeout,
		},
	}
}

// APIError is a typed error decoded from a non-2xx backend response.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Msg)
}

// handleAPIError turns a non-2xx response into an APIError, decoding the
// server's JSON error envelope when present.
func handleAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{Status: resp.StatusCode, Msg: strings.TrimSpace(string(body))}

	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
			apiErr.Msg = envelope.Error
		}
	}
	return apiErr
}

// doJSON issues a request with an optional JSON body and bearer token,
// decoding a 2xx JSON response into out (which may be nil).
func (c *Client) doJSON(ctx context.Context, method, path string, body any, token string, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return handleAPIError(resp, respBody)
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
