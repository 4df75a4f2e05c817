package ports

import (
	"context"
	"errors"
	"fmt"

	"findbgm/internal/core/domain"
)

// ErrCatalogUnavailable indicates the music catalog could not serve a search.
var ErrCatalogUnavailable = errors.New("music catalog unavailable")

// CatalogError wraps a catalog failure with the query that triggered it.
type CatalogError struct {
	Query string
	Err   error
}

func (e CatalogError) Error() string {
	return fmt.Sprintf("catalog search %q: %v", e.Query, e.Err)
}

func (e CatalogError) Unwrap() error {
	return e.Err
}

func (e CatalogError) Is(target error) bool {
	return target == ErrCatalogUnavailable
}

// MusicCatalog is the narrow capability the recommendation flow needs
// from a music source. The authenticated API adapter and the fixed
// mock dataset are interchangeable implementations, selected once at
// startup.
type MusicCatalog interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Track, error)
}
