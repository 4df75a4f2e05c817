// Package sqlite provides an on-disk cache for catalog search results.
// It wraps a live catalog adapter; cache faults always fall through to
// the wrapped catalog rather than failing the request.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3" // driver

	"findbgm/internal/core/domain"
	"findbgm/internal/core/ports"
)

// Cache is a TTL cache keyed by (query, limit).
type Cache struct {
	db    *sql.DB
	inner ports.MusicCatalog
	ttl   time.Duration
	log   *slog.Logger
	now   func() time.Time
}

var _ ports.MusicCatalog = (*Cache)(nil)

// NewCache opens (or creates) the cache database and runs the schema
// migration.
func NewCache(storagePath string, inner ports.MusicCatalog, ttl time.Duration, logger *slog.Logger) (*Cache, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping cache db: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}
	c := &Cache{db: db, inner: inner, ttl: ttl, log: logger, now: time.Now}
	if err := c.migrate(); err != nil {
		return nil, fmt.Errorf("cache migration: %w", err)
	}
	return c, nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Search serves from cache when a fresh entry exists, otherwise
// delegates to the wrapped catalog and stores the result.
func (c *Cache) Search(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	if tracks, ok := c.lookup(ctx, query, limit); ok {
		return tracks, nil
	}

	tracks, err := c.inner.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	c.store(ctx, query, limit, tracks)
	return tracks, nil
}

func (c *Cache) lookup(ctx context.Context, query string, limit int) ([]domain.Track, bool) {
	row := c.db.QueryRowContext(ctx,
		"SELECT payload, created_at FROM search_cache WHERE query = ? AND track_limit = ?",
		query, limit,
	)

	var payload string
	var createdAt int64
	if err := row.Scan(&payload, &createdAt); err != nil {
		if err != sql.ErrNoRows {
			c.log.Warn("cache lookup failed", "query", query, "error", err)
		}
		return nil, false
	}

	if c.now().Sub(time.Unix(createdAt, 0)) > c.ttl {
		return nil, false
	}

	var tracks []domain.Track
	if err := json.Unmarshal([]byte(payload), &tracks); err != nil {
		c.log.Warn("cache payload corrupt", "query", query, "error", err)
		return nil, false
	}
	return tracks, true
}

func (c *Cache) store(ctx context.Context, query string, limit int, tracks []domain.Track) {
	payload, err := json.Marshal(tracks)
	if err != nil {
		c.log.Warn("cache encode failed", "query", query, "error", err)
		return
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO search_cache (query, track_limit, payload, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(query, track_limit) DO UPDATE SET
			payload = excluded.payload,
			created_at = excluded.created_at
	`, query, limit, string(payload), c.now().Unix())
	if err != nil {
		c.log.Warn("cache store failed", "query", query, "error", err)
	}
}

func (c *Cache) migrate() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS search_cache (
			query       TEXT    NOT NULL,
			track_limit INTEGER NOT NULL,
			payload     TEXT    NOT NULL,
			created_at  INTEGER NOT NULL,
			PRIMARY KEY (query, track_limit)
		)
	`)
	return err
}
