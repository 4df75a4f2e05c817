package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"findbgm/internal/core/ports"
)

// Credentials is the externally produced credential file consumed
// opaquely at startup. Its format is owned by whoever provisions API
// access, not by this server.
type Credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// LoadCredentials reads and validates a credential file.
func LoadCredentials(path string) (Credentials, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return Credentials{}, fmt.Errorf("parse credentials: %w", err)
	}
	if strings.TrimSpace(creds.ClientID) == "" || strings.TrimSpace(creds.ClientSecret) == "" {
		return Credentials{}, fmt.Errorf("credentials file %s is missing client_id or client_secret", path)
	}
	return creds, nil
}

// NewClientFromFile builds an authenticated catalog adapter from a
// credential file using the client-credentials OAuth flow. The returned
// error means the caller should run in mock mode instead; it is never
// fatal to the process.
func NewClientFromFile(ctx context.Context, path string, logger *slog.Logger) (ports.MusicCatalog, error) {
	creds, err := LoadCredentials(path)
	if err != nil {
		return nil, err
	}

	config := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	httpClient := config.Client(ctx)

	return NewClient(spotify.New(httpClient), logger), nil
}
