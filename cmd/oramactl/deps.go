package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	oramacore "github.com/oramasearch/oramacore-client-go"
	"github.com/oramasearch/oramacore-client-go/internal/config"
	"github.com/oramasearch/oramacore-client-go/internal/logger"
)

// deps bundles what a command needs to talk to the service.
type deps struct {
	cfg config.Config
	log *zap.Logger
}

// loadDeps loads configuration and builds the logger, applying global
// flag overrides on top of file and environment values.
func loadDeps() (*deps, error) {
	cfg, err := config.Load(globalConfig)
	if err != nil {
		return nil, err
	}
	if globalURL != "" {
		cfg.URL = globalURL
	}
	if globalCollection != "" {
		cfg.Collection = globalCollection
	}
	if globalLogLevel != "" {
		cfg.Logging.Level = globalLogLevel
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, err
	}

	return &deps{cfg: cfg, log: log}, nil
}

// withManager builds an admin-plane Manager and calls fn with it.
func withManager(ctx context.Context, fn func(context.Context, *oramacore.Manager) error) error {
	d, err := loadDeps()
	if err != nil {
		return err
	}
	defer func() { _ = d.log.Sync() }()

	if d.cfg.MasterAPIKey == "" {
		return errors.New("master api key is required (set master_api_key in config or " + config.EnvMasterAPIKey + ")")
	}

	mgr, err := oramacore.NewManager(d.cfg.URL, d.cfg.MasterAPIKey)
	if err != nil {
		return fmt.Errorf("creating manager: %w", err)
	}

	return fn(logger.NewContext(ctx, d.log), mgr)
}

// withDocuments builds a data-plane handle for the configured collection
// and calls fn with it.
func withDocuments(ctx context.Context, fn func(context.Context, *oramacore.DocumentService) error) error {
	d, err := loadDeps()
	if err != nil {
		return err
	}
	defer func() { _ = d.log.Sync() }()

	if d.cfg.Collection == "" {
		return errors.New("collection is required (use --collection, config or " + config.EnvCollection + ")")
	}
	if d.cfg.WriteAPIKey == "" {
		return errors.New("write api key is required (set write_api_key in config or " + config.EnvWriteAPIKey + ")")
	}

	client, err := oramacore.NewClient(d.cfg.URL,
		oramacore.WithWriteAPIKey(d.cfg.WriteAPIKey),
		oramacore.WithReadAPIKey(d.cfg.ReadAPIKey),
	)
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	return fn(logger.NewContext(ctx, d.log), client.Documents(d.cfg.Collection))
}
