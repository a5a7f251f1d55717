package spotify

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	spotifyapi "github.com/zmb3/spotify/v2"

	"artist-analytics/internal/core/domain"
	ports "artist-analytics/internal/core/ports/output"
)

var albumGroups = map[string]spotifyapi.AlbumType{
	"album":       spotifyapi.AlbumTypeAlbum,
	"single":      spotifyapi.AlbumTypeSingle,
	"appears_on":  spotifyapi.AlbumTypeAppearsOn,
	"compilation": spotifyapi.AlbumTypeCompilation,
}

type catalog struct {
	client *spotifyapi.Client
}

func (c *catalog) SearchArtist(ctx context.Context, name string) (*domain.Artist, error) {
	log.WithField("query", name).Debug("spotify search artist")

	result, err := c.client.Search(ctx, name, spotifyapi.SearchTypeArtist, spotifyapi.Limit(1))
	if err != nil {
		return nil, mapAPIError(err, domain.ErrArtistNotFound)
	}
	if result.Artists == nil || len(result.Artists.Artists) == 0 {
		return nil, domain.ErrArtistNotFound
	}

	return toArtist(&result.Artists.Artists[0]), nil
}

func (c *catalog) GetArtist(ctx context.Context, id string) (*domain.Artist, error) {
	artist, err := c.client.GetArtist(ctx, spotifyapi.ID(id))
	if err != nil {
		return nil, mapAPIError(err, domain.ErrArtistNotFound)
	}
	return toArtist(artist), nil
}

func (c *catalog) TopTracks(ctx context.Context, artistID, market string) ([]domain.Track, error) {
	tracks, err := c.client.GetArtistsTopTracks(ctx, spotifyapi.ID(artistID), market)
	if err != nil {
		return nil, mapAPIError(err, domain.ErrArtistNotFound)
	}

	out := make([]domain.Track, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, toTrack(t.SimpleTrack))
	}
	return out, nil
}

func (c *catalog) ArtistAlbums(ctx context.Context, artistID string, q ports.AlbumQuery) ([]domain.Album, error) {
	var types []spotifyapi.AlbumType
	for _, g := range q.Groups {
		t, ok := albumGroups[g]
		if !ok {
			return nil, fmt.Errorf("unknown album group %q", g)
		}
		types = append(types, t)
	}

	var opts []spotifyapi.RequestOption
	if q.Market != "" {
		opts = append(opts, spotifyapi.Market(q.Market))
	}
	if q.Limit > 0 {
		opts = append(opts, spotifyapi.Limit(q.Limit))
	}

	page, err := c.client.GetArtistAlbums(ctx, spotifyapi.ID(artistID), types, opts...)
	if err != nil {
		return nil, mapAPIError(err, domain.ErrArtistNotFound)
	}

	albums := make([]domain.Album, 0, len(page.Albums))
	for _, a := range page.Albums {
		albums = append(albums, toAlbum(a))
	}
	return albums, nil
}

func (c *catalog) AlbumTracks(ctx context.Context, albumID string, limit int) ([]domain.Track, error) {
	var opts []spotifyapi.RequestOption
	if limit > 0 {
		opts = append(opts, spotifyapi.Limit(limit))
	}

	page, err := c.client.GetAlbumTracks(ctx, spotifyapi.ID(albumID), opts...)
	if err != nil {
		return nil, mapAPIError(err, domain.ErrAlbumNotFound)
	}

	tracks := make([]domain.Track, 0, len(page.Tracks))
	for _, t := range page.Tracks {
		tracks = append(tracks, toTrack(t))
	}
	return tracks, nil
}

func (c *catalog) NewReleaseArtists(ctx context.Context, limit int) ([]domain.ArtistRef, error) {
	var opts []spotifyapi.RequestOption
	if limit > 0 {
		opts = append(opts, spotifyapi.Limit(limit))
	}

	page, err := c.client.NewReleases(ctx, opts...)
	if err != nil {
		return nil, mapAPIError(err, nil)
	}

	var refs []domain.ArtistRef
	for _, album := range page.Albums {
		for _, a := range album.Artists {
			refs = append(refs, toArtistRef(a))
		}
	}
	return refs, nil
}

func (c *catalog) RelatedArtists(ctx context.Context, artistID string) ([]domain.ArtistRef, error) {
	artists, err := c.client.GetRelatedArtists(ctx, spotifyapi.ID(artistID))
	if err != nil {
		// A 404 here means the endpoint is closed to this app, not a missing artist.
		return nil, mapAPIError(err, nil)
	}

	refs := make([]domain.ArtistRef, 0, len(artists))
	for _, a := range artists {
		refs = append(refs, toArtistRef(a.SimpleArtist))
	}
	return refs, nil
}
