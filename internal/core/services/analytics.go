package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	log "github.com/sirupsen/logrus"

	"artist-analytics/internal/config"
	"artist-analytics/internal/core/domain"
	ports "artist-analytics/internal/core/ports/output"
)

// AnalyticsOptions tunes a single analytics run
type AnalyticsOptions struct {
	DefaultCredentials ports.Credentials
	DefaultArtist      string
	Market             string
	PopularSource      domain.PopularSource
	PopularLimit       int
	NewReleasesLimit   int
	TopTracks          int
	RandomTopTracks    int
	AlbumTracks        int

	// AlbumOptional reports artists without albums instead of failing with
	// ErrAlbumNotFound; LatestAlbum is then nil.
	AlbumOptional bool
}

// DefaultAnalyticsOptions returns the stock dashboard limits
func DefaultAnalyticsOptions() AnalyticsOptions {
	return AnalyticsOptions{
		DefaultArtist:    "Mt Joy",
		Market:           "US",
		PopularSource:    domain.PopularSourceNewReleases,
		PopularLimit:     10,
		NewReleasesLimit: 20,
		TopTracks:        5,
		RandomTopTracks:  3,
		AlbumTracks:      5,
	}
}

// Picker returns an index in [0, n).
type Picker func(n int) int

// OptionsFromConfig builds the options from the loaded configuration,
// keeping the defaults for unset or non-positive limits.
func OptionsFromConfig(cfg *config.Config) AnalyticsOptions {
	opts := DefaultAnalyticsOptions()
	opts.DefaultCredentials = ports.Credentials{
		ClientID:     cfg.Spotify.ClientID,
		ClientSecret: cfg.Spotify.ClientSecret,
	}
	if cfg.Analytics.DefaultArtist != "" {
		opts.DefaultArtist = cfg.Analytics.DefaultArtist
	}
	if cfg.Spotify.Market != "" {
		opts.Market = cfg.Spotify.Market
	}
	if cfg.Analytics.PopularSource != "" {
		opts.PopularSource = domain.PopularSource(cfg.Analytics.PopularSource)
	}

	positive(&opts.PopularLimit, cfg.Analytics.PopularLimit)
	positive(&opts.NewReleasesLimit, cfg.Analytics.NewReleasesLimit)
	positive(&opts.TopTracks, cfg.Analytics.TopTracks)
	positive(&opts.RandomTopTracks, cfg.Analytics.RandomTopTracks)
	positive(&opts.AlbumTracks, cfg.Analytics.AlbumTracks)
	return opts
}

func positive(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

// AnalyticsService gathers artist, album and popular artist statistics
type AnalyticsService struct {
	connector ports.CatalogConnector
	opts      AnalyticsOptions
	pick      Picker
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(connector ports.CatalogConnector, opts AnalyticsOptions) *AnalyticsService {
	return &AnalyticsService{
		connector: connector,
		opts:      opts,
		pick:      rand.IntN,
	}
}

// WithPicker replaces the random source used to choose the random artist.
func (s *AnalyticsService) WithPicker(p Picker) *AnalyticsService {
	if p != nil {
		s.pick = p
	}
	return s
}

// DefaultArtist is the artist analysed when a request names none.
func (s *AnalyticsService) DefaultArtist() string {
	return s.opts.DefaultArtist
}

// AnalyticsRequest contains the caller supplied parameters. Empty fields fall
// back to the configured defaults.
type AnalyticsRequest struct {
	ClientID     string
	ClientSecret string
	ArtistName   string
	Market       string
}

// Analyze runs the lookup chain: token exchange, artist, top tracks, latest
// album, popular artists, random pick.
func (s *AnalyticsService) Analyze(ctx context.Context, req AnalyticsRequest) (*domain.Report, error) {
	creds := s.resolveCredentials(req)
	if !creds.Complete() {
		return nil, domain.ErrMissingCredentials
	}

	name := strings.TrimSpace(req.ArtistName)
	if name == "" {
		name = s.opts.DefaultArtist
	}
	if name == "" {
		return nil, domain.ErrInvalidArtistName
	}

	market := strings.ToUpper(strings.TrimSpace(req.Market))
	if market == "" {
		market = s.opts.Market
	}

	catalog, err := s.connector.Connect(ctx, creds)
	if err != nil {
		return nil, err
	}

	artist, err := catalog.SearchArtist(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("search artist %q: %w", name, err)
	}

	topTracks, err := catalog.TopTracks(ctx, artist.ID, market)
	if err != nil {
		return nil, fmt.Errorf("top tracks: %w", err)
	}
	artist.TopTracks = firstTracks(topTracks, s.opts.TopTracks)

	latest, err := s.latestAlbum(ctx, catalog, artist.ID, market)
	if err != nil {
		return nil, err
	}

	popular, err := s.popularArtists(ctx, catalog, artist)
	if err != nil {
		return nil, fmt.Errorf("popular artists: %w", err)
	}

	random, err := s.randomArtist(ctx, catalog, popular, market)
	if err != nil {
		return nil, fmt.Errorf("random artist: %w", err)
	}

	return &domain.Report{
		Artist:         artist,
		LatestAlbum:    latest,
		PopularArtists: popular,
		RandomArtist:   random,
	}, nil
}

func (s *AnalyticsService) resolveCredentials(req AnalyticsRequest) ports.Credentials {
	creds := ports.Credentials{ClientID: req.ClientID, ClientSecret: req.ClientSecret}
	if creds.ClientID == "" {
		creds.ClientID = s.opts.DefaultCredentials.ClientID
	}
	if creds.ClientSecret == "" {
		creds.ClientSecret = s.opts.DefaultCredentials.ClientSecret
	}
	return creds
}

func (s *AnalyticsService) latestAlbum(ctx context.Context, catalog ports.MusicCatalog, artistID, market string) (*domain.Album, error) {
	albums, err := catalog.ArtistAlbums(ctx, artistID, ports.AlbumQuery{
		Groups: []string{"album"},
		Market: market,
		Limit:  1,
	})
	if err != nil {
		return nil, fmt.Errorf("artist albums: %w", err)
	}
	if len(albums) == 0 {
		if s.opts.AlbumOptional {
			return nil, nil
		}
		return nil, domain.ErrAlbumNotFound
	}

	album := albums[0]
	if album.ReleaseDate == "" {
		album.ReleaseDate = domain.UnknownReleaseDate
	}

	tracks, err := catalog.AlbumTracks(ctx, album.ID, s.opts.AlbumTracks)
	if err != nil {
		return nil, fmt.Errorf("album tracks: %w", err)
	}
	album.Tracks = firstTracks(tracks, s.opts.AlbumTracks)

	return &album, nil
}

func (s *AnalyticsService) popularArtists(ctx context.Context, catalog ports.MusicCatalog, exclude *domain.Artist) ([]domain.ArtistRef, error) {
	var (
		listed []domain.ArtistRef
		err    error
	)
	switch s.opts.PopularSource {
	case domain.PopularSourceRelated:
		listed, err = catalog.RelatedArtists(ctx, exclude.ID)
	default:
		listed, err = catalog.NewReleaseArtists(ctx, s.opts.NewReleasesLimit)
	}
	if err != nil {
		return nil, err
	}
	return ExtractPopularArtists(listed, exclude, s.opts.PopularLimit), nil
}

// ExtractPopularArtists keeps the first occurrence of every artist name,
// drops the analysed artist and stops after limit entries.
func ExtractPopularArtists(listed []domain.ArtistRef, exclude *domain.Artist, limit int) []domain.ArtistRef {
	out := make([]domain.ArtistRef, 0, limit)
	if limit <= 0 {
		return out
	}

	seen := make(map[string]struct{}, len(listed))
	for _, a := range listed {
		if exclude != nil && (a.ID == exclude.ID || strings.EqualFold(a.Name, exclude.Name)) {
			continue
		}
		if _, ok := seen[a.Name]; ok {
			continue
		}
		seen[a.Name] = struct{}{}
		out = append(out, a)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func (s *AnalyticsService) randomArtist(ctx context.Context, catalog ports.MusicCatalog, popular []domain.ArtistRef, market string) (*domain.Artist, error) {
	if len(popular) == 0 {
		return nil, nil
	}

	chosen := popular[s.pick(len(popular))]

	artist, err := catalog.GetArtist(ctx, chosen.ID)
	if errors.Is(err, domain.ErrArtistNotFound) {
		log.WithField("artist_id", chosen.ID).Warn("random artist vanished from catalog")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	topTracks, err := catalog.TopTracks(ctx, artist.ID, market)
	if err != nil {
		return nil, err
	}
	artist.TopTracks = firstTracks(topTracks, s.opts.RandomTopTracks)

	return artist, nil
}

func firstTracks(tracks []domain.Track, limit int) []domain.Track {
	if limit < 0 || limit >= len(tracks) {
		return tracks
	}
	return tracks[:limit]
}
