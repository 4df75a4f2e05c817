package services

import (
	"context"
	"log/slog"

	"findbgm/internal/core/domain"
	"findbgm/internal/core/ports"
)

// FallbackCatalog serves searches from a primary catalog and degrades
// to a secondary one when the primary fails. External-API errors are
// logged at warning level and never surfaced as hard failures.
type FallbackCatalog struct {
	primary   ports.MusicCatalog
	secondary ports.MusicCatalog
	log       *slog.Logger
}

var _ ports.MusicCatalog = (*FallbackCatalog)(nil)

// NewFallbackCatalog wires a primary catalog with a degradation target.
func NewFallbackCatalog(primary, secondary ports.MusicCatalog, logger *slog.Logger) *FallbackCatalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackCatalog{primary: primary, secondary: secondary, log: logger}
}

// Search tries the primary catalog and falls back on error. Context
// cancellation is propagated rather than masked by the fallback.
func (f *FallbackCatalog) Search(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	tracks, err := f.primary.Search(ctx, query, limit)
	if err == nil {
		return tracks, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	f.log.Warn("primary catalog failed, using fallback", "query", query, "error", err)
	return f.secondary.Search(ctx, query, limit)
}
