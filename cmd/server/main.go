package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"findbgm/internal/adapters/mcptool"
	"findbgm/internal/adapters/mockdata"
	"findbgm/internal/adapters/spotify"
	"findbgm/internal/adapters/sqlite"
	"findbgm/internal/config"
	"findbgm/internal/core/ports"
	"findbgm/internal/core/services"
	"findbgm/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.ServerName, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel)
	ctx := context.Background()

	// Catalog selection happens once at startup. A missing or broken
	// credential file degrades to the mock catalog instead of failing.
	mock := mockdata.New()
	catalog, apiStatus, closeCatalog := selectCatalog(ctx, cfg, mock, logger)
	defer closeCatalog()

	analyzer := services.NewAnalyzer()
	recommender := services.NewRecommender(catalog, services.Options{
		MaxDurationSeconds: cfg.MaxDurationSeconds,
		SearchLimit:        cfg.SearchLimit,
		MaxSearchTerms:     cfg.MaxSearchTerms,
		MaxResults:         cfg.MaxResults,
		MaxRecommendations: cfg.MaxRecommendations,
		Weights:            services.DefaultOptions().Weights,
	}, logger)

	s := server.NewMCPServer(
		config.ServerName,
		config.ServerVersion,
		server.WithToolCapabilities(true),
	)
	mcptool.Register(s, mcptool.NewHandler(analyzer, recommender, apiStatus, logger))

	logger.Info("starting server",
		"name", config.ServerName,
		"version", config.ServerVersion,
		"api_status", apiStatus,
	)

	return server.ServeStdio(s)
}

// selectCatalog wires the live catalog (optionally cached) or the mock
// fallback, returning the chosen catalog, the reported API status, and
// a cleanup func.
func selectCatalog(ctx context.Context, cfg config.Config, mock ports.MusicCatalog, logger *slog.Logger) (ports.MusicCatalog, string, func()) {
	noop := func() {}

	live, err := spotify.NewClientFromFile(ctx, cfg.CredentialsFile, logger)
	if err != nil {
		logger.Warn("music API unavailable, using mock recommendations",
			"credentials_file", cfg.CredentialsFile,
			"error", err,
		)
		return mock, mcptool.StatusMockMode, noop
	}
	logger.Info("music API initialized", "credentials_file", cfg.CredentialsFile)

	catalog := live
	cleanup := noop
	if cfg.CachePath != "" {
		cache, err := sqlite.NewCache(cfg.CachePath, live, cfg.CacheTTL, logger)
		if err != nil {
			logger.Warn("search cache disabled", "path", cfg.CachePath, "error", err)
		} else {
			catalog = cache
			cleanup = func() { _ = cache.Close() }
		}
	}

	return services.NewFallbackCatalog(catalog, mock, logger), mcptool.StatusActive, cleanup
}
