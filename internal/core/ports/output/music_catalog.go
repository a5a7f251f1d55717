package ports

import (
	"context"

	"artist-analytics/internal/core/domain"
)

// Credentials are the client id/secret pair exchanged for a bearer token.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Complete reports whether both halves of the pair are set.
func (c Credentials) Complete() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// AlbumQuery narrows an artist album listing.
type AlbumQuery struct {
	Groups []string // album, single, compilation, appears_on
	Market string
	Limit  int
}

// MusicCatalog defines the contract for an authenticated music metadata API
type MusicCatalog interface {
	// SearchArtist returns the best match for name, or domain.ErrArtistNotFound
	SearchArtist(ctx context.Context, name string) (*domain.Artist, error)

	// GetArtist returns full artist details, or domain.ErrArtistNotFound
	GetArtist(ctx context.Context, id string) (*domain.Artist, error)

	// TopTracks returns the artist's most played tracks in the given market
	TopTracks(ctx context.Context, artistID, market string) ([]domain.Track, error)

	// ArtistAlbums lists albums newest first
	ArtistAlbums(ctx context.Context, artistID string, q AlbumQuery) ([]domain.Album, error)

	// AlbumTracks lists up to limit tracks in album order
	AlbumTracks(ctx context.Context, albumID string, limit int) ([]domain.Track, error)

	// NewReleaseArtists flattens the credited artists of the newest releases
	NewReleaseArtists(ctx context.Context, limit int) ([]domain.ArtistRef, error)

	// RelatedArtists lists artists similar to the given one
	RelatedArtists(ctx context.Context, artistID string) ([]domain.ArtistRef, error)
}

// CatalogConnector performs the one-shot token exchange and returns a catalog
// bound to the resulting token.
type CatalogConnector interface {
	Connect(ctx context.Context, creds Credentials) (MusicCatalog, error)
}
