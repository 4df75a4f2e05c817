// Package mockdata provides the fixed in-memory substitute catalog
// used when no authenticated music API access is configured.
package mockdata

import (
	"context"
	"strings"

	"findbgm/internal/core/domain"
	"findbgm/internal/core/ports"
)

// Catalog serves searches from a small fixed sample set. Results are
// deterministic for a given query, so mock-mode responses are
// reproducible.
type Catalog struct {
	tracks []domain.Track
}

var _ ports.MusicCatalog = (*Catalog)(nil)

// New returns the stock mock catalog. The set covers every mood and
// theme vocabulary entry well enough that unauthenticated runs still
// produce scored matches.
func New() *Catalog {
	return &Catalog{tracks: sampleTracks}
}

// Search returns tracks whose titles share tokens with the query,
// ahead of the remaining sample entries, capped at limit. No network,
// no errors.
func (c *Catalog) Search(_ context.Context, query string, limit int) ([]domain.Track, error) {
	if limit <= 0 {
		return []domain.Track{}, nil
	}

	queryTokens := strings.Fields(strings.ToLower(query))

	matched := make([]domain.Track, 0, len(c.tracks))
	rest := make([]domain.Track, 0, len(c.tracks))
	for _, t := range c.tracks {
		if titleMatchesQuery(t.Title, queryTokens) {
			matched = append(matched, t)
		} else {
			rest = append(rest, t)
		}
	}

	results := append(matched, rest...)
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func titleMatchesQuery(title string, queryTokens []string) bool {
	lowered := strings.ToLower(title)
	for _, tok := range queryTokens {
		if strings.Contains(lowered, tok) {
			return true
		}
	}
	return false
}

var sampleTracks = []domain.Track{
	{ID: "mock_id_1", Title: "Uplifting Corporate Background", Artist: "Audio Library", DurationSeconds: 45, LoopSuitable: true},
	{ID: "mock_id_2", Title: "Motivational Instrumental", Artist: "Background Music", DurationSeconds: 60, LoopSuitable: true},
	{ID: "mock_id_3", Title: "Energetic Pop Background", Artist: "Royalty Free", DurationSeconds: 30, LoopSuitable: true},
	{ID: "mock_id_4", Title: "Workout Energy Boost Instrumental", Artist: "Gym Beats", DurationSeconds: 50, LoopSuitable: true},
	{ID: "mock_id_5", Title: "Calm Ambient Meditation", Artist: "Still Waters", DurationSeconds: 90, LoopSuitable: true},
	{ID: "mock_id_6", Title: "Dramatic Cinematic Tension", Artist: "Score Lab", DurationSeconds: 75, LoopSuitable: false},
	{ID: "mock_id_7", Title: "Chill Lofi Background", Artist: "Late Night Tapes", DurationSeconds: 40, LoopSuitable: true},
	{ID: "mock_id_8", Title: "Upbeat Electronic Party", Artist: "Neon Drive", DurationSeconds: 55, LoopSuitable: true},
	{ID: "mock_id_9", Title: "Acoustic Kitchen Morning", Artist: "Warm Strings", DurationSeconds: 48, LoopSuitable: true},
	{ID: "mock_id_10", Title: "Travel Adventure Theme", Artist: "Open Roads", DurationSeconds: 65, LoopSuitable: false},
	{ID: "mock_id_11", Title: "Tech Innovation Pulse", Artist: "Circuit Audio", DurationSeconds: 35, LoopSuitable: true},
	{ID: "mock_id_12", Title: "Relaxed Classical Study BGM", Artist: "Quiet Hall", DurationSeconds: 80, LoopSuitable: true},
}
