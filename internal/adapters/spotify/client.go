// Package spotify adapts the Spotify Web API to the MusicCatalog port.
package spotify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/zmb3/spotify/v2"
	"golang.org/x/time/rate"

	"findbgm/internal/core/domain"
	"findbgm/internal/core/ports"
)

// Client wraps the Spotify SDK behind the catalog port. Calls are rate
// limited so fan-out searches stay inside the API quota.
type Client struct {
	api     *spotify.Client
	limiter *rate.Limiter
	log     *slog.Logger
}

var _ ports.MusicCatalog = (*Client)(nil)

// NewClient constructs a catalog adapter over an authenticated SDK client.
func NewClient(api *spotify.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		api: api,
		// Spotify allows bursts but throttles sustained traffic; a
		// little under 3 req/s keeps fan-out searches safe.
		limiter: rate.NewLimiter(rate.Every(350*time.Millisecond), 1),
		log:     logger,
	}
}

// Search queries the catalog for tracks and maps them to domain values.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, ports.CatalogError{Query: query, Err: err}
	}

	result, err := c.api.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(limit))
	if err != nil {
		return nil, ports.CatalogError{Query: query, Err: fmt.Errorf("spotify search: %w", err)}
	}
	if result.Tracks == nil {
		return []domain.Track{}, nil
	}

	tracks := make([]domain.Track, 0, len(result.Tracks.Tracks))
	for _, ft := range result.Tracks.Tracks {
		tracks = append(tracks, mapTrack(ft))
	}
	c.log.Debug("catalog search", "query", query, "results", len(tracks))
	return tracks, nil
}

// mapTrack converts an SDK track to a domain Track.
func mapTrack(ft spotify.FullTrack) domain.Track {
	seconds := int(ft.Duration) / 1000
	return domain.Track{
		ID:              string(ft.ID),
		Title:           ft.Name,
		Artist:          joinArtistNames(ft.Artists),
		DurationSeconds: seconds,
		LoopSuitable:    seconds >= domain.MinRequestDuration,
	}
}

func joinArtistNames(artists []spotify.SimpleArtist) string {
	if len(artists) == 0 {
		return "Unknown Artist"
	}
	parts := make([]string, 0, len(artists))
	for _, a := range artists {
		parts = append(parts, a.Name)
	}
	return strings.Join(parts, ", ")
}
