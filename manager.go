package oramacore

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Manager is the administrative facade of an OramaCore deployment. It
// authenticates every call with the master API key and manages the
// collection lifecycle. All fields are immutable after construction, so a
// Manager is safe for concurrent use.
type Manager struct {
	api       *api
	masterKey string
	keyGen    KeyGenerator
	obs       *observer
}

// NewManager creates a Manager for the deployment at url, authenticating
// with masterAPIKey.
func NewManager(url, masterAPIKey string, opts ...Option) (*Manager, error) {
	cfg := newClientConfig(opts)

	a, err := newAPI(url, cfg.httpClient)
	if err != nil {
		return nil, err
	}
	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Manager{
		api:       a,
		masterKey: masterAPIKey,
		keyGen:    cfg.keyGen,
		obs:       obs,
	}, nil
}

// CreateCollection registers a new collection. Omitted params are filled
// in before sending: API keys are generated independently, the language
// defaults to English. The returned response reflects the effective params;
// keep the generated keys, the service does not return them again.
func (m *Manager) CreateCollection(
	ctx context.Context, params NewCollectionParams,
) (_ NewCollectionResponse, err error) {
	start := time.Now()
	defer func() { m.obs.observe("collection.create", start, err) }()

	if params.ID == "" {
		return NewCollectionResponse{}, &ValidationError{Reason: "collection id must not be empty"}
	}
	if params.WriteAPIKey == "" {
		if params.WriteAPIKey, err = m.generateKey(); err != nil {
			return NewCollectionResponse{}, err
		}
	}
	if params.ReadAPIKey == "" {
		if params.ReadAPIKey, err = m.generateKey(); err != nil {
			return NewCollectionResponse{}, err
		}
	}
	if params.Language == "" {
		params.Language = DefaultLanguage
	}

	err = m.api.do(ctx, http.MethodPost, "/v1/collections/create", bearerAuth(m.masterKey), params, nil)
	if err != nil {
		return NewCollectionResponse{}, err
	}

	return NewCollectionResponse{
		ID:          params.ID,
		Description: params.Description,
		WriteAPIKey: params.WriteAPIKey,
		ReadAPIKey:  params.ReadAPIKey,
	}, nil
}

// ListCollections returns every collection in the deployment, in the order
// the service reports them.
func (m *Manager) ListCollections(ctx context.Context) (_ []ExistingCollection, err error) {
	start := time.Now()
	defer func() { m.obs.observe("collection.list", start, err) }()

	var out []ExistingCollection
	if err = m.api.do(ctx, http.MethodGet, "/v1/collections", bearerAuth(m.masterKey), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCollection retrieves metadata for one collection by id. An unknown id
// surfaces as an HTTPError from the service, commonly 404.
func (m *Manager) GetCollection(ctx context.Context, id string) (_ ExistingCollection, err error) {
	start := time.Now()
	defer func() { m.obs.observe("collection.get", start, err) }()

	var out ExistingCollection
	if err = m.api.do(ctx, http.MethodGet, "/v1/collections/"+id, bearerAuth(m.masterKey), nil, &out); err != nil {
		return ExistingCollection{}, err
	}
	return out, nil
}

// DeleteCollection removes a collection. No local existence check is made;
// deleting an unknown id is the service's call to accept or reject.
func (m *Manager) DeleteCollection(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { m.obs.observe("collection.delete", start, err) }()

	if err = m.api.do(ctx, http.MethodPost, "/v1/collections/"+id+"/delete", bearerAuth(m.masterKey), nil, nil); err != nil {
		return err
	}
	return nil
}

func (m *Manager) generateKey() (string, error) {
	key, err := m.keyGen(apiKeyLength)
	if err != nil {
		return "", &ConfigError{Reason: fmt.Sprintf("key generator: %v", err)}
	}
	return key, nil
}
