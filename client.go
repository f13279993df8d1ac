package oramacore

import (
	"context"
	"net/http"
	"time"
)

// Client is the data-plane facade over document ingestion and deletion.
// It authenticates with a collection-scoped write key and operates on one
// collection at a time, selected either with SetCollection or per call via
// Documents.
//
// SetCollection mutates the instance, so a Client shared across goroutines
// must not be rebound while in use. The handles returned by Documents carry
// no shared state and are safe for concurrent use.
type Client struct {
	api         *api
	readAPIKey  string
	writeAPIKey string
	obs         *observer

	collection string
}

// NewClient creates a Client for the deployment at url. API keys and an
// initial collection binding are supplied via options; both keys are
// optional, but Insert and Delete require a write key.
func NewClient(url string, opts ...Option) (*Client, error) {
	cfg := newClientConfig(opts)

	a, err := newAPI(url, cfg.httpClient)
	if err != nil {
		return nil, err
	}
	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{
		api:         a,
		readAPIKey:  cfg.readAPIKey,
		writeAPIKey: cfg.writeAPIKey,
		obs:         obs,
		collection:  cfg.collection,
	}, nil
}

// SetCollection binds the Client to a collection. Rebinding overwrites the
// previous binding; no remote call is made.
func (c *Client) SetCollection(id string) {
	c.collection = id
}

// Collection returns the currently bound collection id, empty when unbound.
func (c *Client) Collection() string {
	return c.collection
}

// Insert indexes documents into the bound collection. It fails with
// ErrCollectionNotSet before any network call when no collection is bound,
// and with ErrWriteAPIKeyNotSet when the Client has no write key.
func (c *Client) Insert(ctx context.Context, docs []Document) error {
	return c.Documents(c.collection).Insert(ctx, docs)
}

// Delete removes documents from the bound collection by id. Preconditions
// match Insert.
func (c *Client) Delete(ctx context.Context, ids []string) error {
	return c.Documents(c.collection).Delete(ctx, ids)
}

// Documents returns a handle on one collection's documents. The handle
// shares the Client's transport and write key but not its mutable binding,
// so distinct handles can be used concurrently.
func (c *Client) Documents(collection string) *DocumentService {
	return &DocumentService{
		collection:  collection,
		api:         c.api,
		writeAPIKey: c.writeAPIKey,
		obs:         c.obs,
	}
}

// DocumentService performs document operations on a single collection.
type DocumentService struct {
	collection  string
	api         *api
	writeAPIKey string
	obs         *observer
}

// Insert indexes documents into the collection. The write key travels in
// the Authorization header as-is, without a Bearer prefix; the service
// expects the raw key on data-plane routes.
func (s *DocumentService) Insert(ctx context.Context, docs []Document) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("document.insert", start, err) }()

	if err = s.checkWritable(); err != nil {
		return err
	}
	return s.api.do(ctx, http.MethodPost, "/collections/"+s.collection+"/insert", s.writeAPIKey, docs, nil)
}

// Delete removes documents from the collection by id. Unknown ids are the
// service's business; the client sends the batch as given.
func (s *DocumentService) Delete(ctx context.Context, ids []string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("document.delete", start, err) }()

	if err = s.checkWritable(); err != nil {
		return err
	}
	return s.api.do(ctx, http.MethodPost, "/collections/"+s.collection+"/delete", s.writeAPIKey, ids, nil)
}

// checkWritable guards write operations: a collection must be selected and
// a write key configured, checked in that order.
func (s *DocumentService) checkWritable() error {
	if s.collection == "" {
		return ErrCollectionNotSet
	}
	if s.writeAPIKey == "" {
		return ErrWriteAPIKeyNotSet
	}
	return nil
}
