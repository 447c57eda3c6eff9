package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/custodia-labs/pwc-mcp/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pwc-mcp/internal/adapters/driven/fetch"
	"github.com/custodia-labs/pwc-mcp/internal/adapters/driven/paperswithcode"
	"github.com/custodia-labs/pwc-mcp/internal/adapters/driving/cli"
	"github.com/custodia-labs/pwc-mcp/internal/core/services"
	"github.com/custodia-labs/pwc-mcp/internal/logger"
	"github.com/custodia-labs/pwc-mcp/internal/normalisers/html"
	"github.com/custodia-labs/pwc-mcp/internal/normalisers/pdf"
	"github.com/custodia-labs/pwc-mcp/internal/observability"
)

// newServices wires the driven adapters into the core services using the
// settings stored in configDir.
func newServices(configDir string) (*cli.Services, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	logger.Configure(settings.Log.Level, settings.Log.Format.String())
	if err := settingsService.Validate(); err != nil {
		logger.Warn("invalid settings in %s: %v", settingsService.Path(), err)
	}
	logger.Section("startup")
	logger.Debug("config loaded from %s", settingsService.Path())

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(observability.DefaultNamespace, registry)

	client := paperswithcode.NewClient(
		settings.API.BaseURL,
		settings.API.Timeout,
		paperswithcode.WithMetrics(metrics),
	)
	logger.Debug("research API at %s", client.BaseURL())
	fetcher := fetch.New(fetch.Config{
		Timeout:   settings.Document.Timeout,
		MaxBytes:  settings.Document.MaxBytes,
		UserAgent: settings.Document.UserAgent,
		Metrics:   metrics,
	})

	return &cli.Services{
		Research: services.NewResearchService(client, nil),
		Document: services.NewDocumentService(fetcher, html.New(), pdf.New()),
		Settings: settingsService,
		Metrics:  metrics,
		Gatherer: registry,
	}, nil
}
