package oramacore

import "fmt"

// Error kinds returned by Manager and Client. Check the kind with
// errors.As; the fixed ConfigError instances below also work with
// errors.Is. Every failed operation returns exactly one of these.

// ValidationError reports caller input rejected before any request is sent.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "oramacore: invalid input: " + e.Reason
}

// ConfigError reports an unsatisfied precondition on the instance itself,
// as opposed to bad input for a single call.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "oramacore: " + e.Reason
}

// Fixed ConfigError instances. Use errors.Is() to check.
var (
	// ErrCollectionNotSet is returned by document operations on a Client
	// with no collection bound.
	ErrCollectionNotSet = &ConfigError{
		Reason: "no collection bound: call SetCollection or use Documents",
	}
	// ErrWriteAPIKeyNotSet is returned by document operations on a Client
	// constructed without a write API key.
	ErrWriteAPIKeyNotSet = &ConfigError{
		Reason: "write operation requires a write API key",
	}
)

// HTTPError reports a response with a non-success status code.
// Body carries the raw response body for diagnosis.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("oramacore: server returned %s", e.Status)
	}
	return fmt.Sprintf("oramacore: server returned %s: %s", e.Status, e.Body)
}

// TransportError reports a request that produced no HTTP response at all:
// connection refused, DNS failure, context cancellation and the like.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "oramacore: send request: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// SerializationError reports a JSON encode or decode failure on a request
// or response body.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return "oramacore: " + e.Err.Error()
}

func (e *SerializationError) Unwrap() error { return e.Err }
