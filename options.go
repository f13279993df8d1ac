package oramacore

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Manager or a Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	httpClient HTTPClient
	keyGen     KeyGenerator

	readAPIKey  string
	writeAPIKey string
	collection  string

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

func newClientConfig(opts []Option) *clientConfig {
	cfg := &clientConfig{keyGen: randomKey}
	for _, o := range opts {
		o.apply(cfg)
	}
	return cfg
}

// WithHTTPClient replaces the default HTTP client (30s timeout). Timeouts,
// TLS and retry policy all live in the injected client.
func WithHTTPClient(hc HTTPClient) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}

// WithKeyGenerator replaces the generator used for API keys omitted from
// collection params. Manager only.
func WithKeyGenerator(g KeyGenerator) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyGen = g
	})
}

// WithReadAPIKey sets the collection read API key. Client only.
func WithReadAPIKey(key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.readAPIKey = key
	})
}

// WithWriteAPIKey sets the collection write API key, required for Insert
// and Delete. Client only.
func WithWriteAPIKey(key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.writeAPIKey = key
	})
}

// WithCollection binds the Client to a collection at construction,
// equivalent to calling SetCollection right after NewClient. Client only.
func WithCollection(id string) Option {
	return optionFunc(func(c *clientConfig) {
		c.collection = id
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers client metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
