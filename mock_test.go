package oramacore

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// --- HTTPClient fake ---

// fakeHTTPClient records every request and answers via fn.
type fakeHTTPClient struct {
	fn       func(req *http.Request) (*http.Response, error)
	requests []recordedRequest
}

type recordedRequest struct {
	method string
	path   string
	auth   string
	body   string
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	var body string
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		body = string(b)
	}
	f.requests = append(f.requests, recordedRequest{
		method: req.Method,
		path:   req.URL.Path,
		auth:   req.Header.Get("Authorization"),
		body:   body,
	})
	return f.fn(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// respondWith always answers with the given status and body.
func respondWith(status int, body string) *fakeHTTPClient {
	return &fakeHTTPClient{
		fn: func(*http.Request) (*http.Response, error) {
			return jsonResponse(status, body), nil
		},
	}
}

// failWith never produces a response.
func failWith(err error) *fakeHTTPClient {
	return &fakeHTTPClient{
		fn: func(*http.Request) (*http.Response, error) {
			return nil, err
		},
	}
}

// --- key generator fake ---

// fixedKeys yields the given keys in order, cycling at the end.
func fixedKeys(keys ...string) KeyGenerator {
	i := 0
	return func(int) (string, error) {
		k := keys[i%len(keys)]
		i++
		return k, nil
	}
}

// --- constructors ---

func newTestManager(hc HTTPClient, opts ...Option) *Manager {
	opts = append([]Option{
		WithHTTPClient(hc),
		WithKeyGenerator(fixedKeys("test-write-key", "test-read-key")),
	}, opts...)
	m, err := NewManager("http://orama.test", "master-key", opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func newTestClient(hc HTTPClient, opts ...Option) *Client {
	opts = append([]Option{WithHTTPClient(hc)}, opts...)
	c, err := NewClient("http://orama.test", opts...)
	if err != nil {
		panic(err)
	}
	return c
}
