package oramacore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPClient executes a single HTTP request. *http.Client satisfies it;
// callers needing custom transports, retry policy or tracing inject their
// own via WithHTTPClient. The client library itself never retries.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const defaultHTTPTimeout = 30 * time.Second

// api issues JSON requests against one OramaCore deployment.
type api struct {
	baseURL string
	http    HTTPClient
}

func newAPI(rawURL string, hc HTTPClient) (*api, error) {
	if rawURL == "" {
		return nil, &ValidationError{Reason: "url must not be empty"}
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("parse url %q: %v", rawURL, err)}
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &ValidationError{Reason: fmt.Sprintf("url %q must include scheme and host", rawURL)}
	}
	if hc == nil {
		hc = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &api{baseURL: strings.TrimSuffix(rawURL, "/"), http: hc}, nil
}

// do sends one request and, when out is non-nil, decodes the response body
// into it. auth is the literal Authorization header value; collection ids
// are interpolated into path by the caller untouched, mirroring the
// service's routing.
func (a *api) do(ctx context.Context, method, path, auth string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &SerializationError{Err: fmt.Errorf("encode request body: %w", err)}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return &TransportError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(raw),
		}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &SerializationError{Err: fmt.Errorf("decode response body: %w", err)}
		}
	}
	return nil
}

// bearerAuth formats the administrative Authorization header. Data-plane
// calls send the collection write key without the Bearer prefix; the
// service expects the asymmetry.
func bearerAuth(key string) string { return "Bearer " + key }
