package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	spotifyapi "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"artist-analytics/internal/config"
	"artist-analytics/internal/core/domain"
	ports "artist-analytics/internal/core/ports/output"
)

const defaultAPIURL = "https://api.spotify.com/v1/"

type connector struct {
	apiURL   string
	tokenURL string
	timeout  time.Duration
	base     *http.Client
}

// NewConnector creates a Spotify catalog connector adapter
func NewConnector(cfg *config.SpotifyConfig) ports.CatalogConnector {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = spotifyauth.TokenURL
	}

	return &connector{
		apiURL:   apiURL,
		tokenURL: tokenURL,
		timeout:  timeout,
		base: &http.Client{
			Timeout:   timeout,
			Transport: newLoggingTransport(nil),
		},
	}
}

// Connect exchanges the client credentials for a bearer token once and binds
// every subsequent catalog call to that token.
func (c *connector) Connect(ctx context.Context, creds ports.Credentials) (ports.MusicCatalog, error) {
	cc := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     c.tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	token, err := cc.Token(context.WithValue(ctx, oauth2.HTTPClient, c.base))
	if err != nil {
		return nil, mapTokenError(err)
	}

	log.WithFields(log.Fields{
		"token_type": token.TokenType,
		"expires_at": token.Expiry,
	}).Debug("spotify token acquired")

	httpClient := &http.Client{
		Timeout: c.timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(token),
			Base:   c.base.Transport,
		},
	}

	return &catalog{
		client: spotifyapi.New(httpClient, spotifyapi.WithBaseURL(c.apiURL)),
	}, nil
}

// mapTokenError separates rejected credentials from transport failures
func mapTokenError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		status := retrieveErr.Response.StatusCode
		if status >= 400 && status < 500 {
			return fmt.Errorf("token exchange: %w", domain.ErrInvalidCredentials)
		}
		return fmt.Errorf("%w: token exchange: http status %d", domain.ErrUpstream, status)
	}
	return fmt.Errorf("%w: token exchange: %v", domain.ErrUpstream, err)
}
