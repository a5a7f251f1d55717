package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"artist-analytics/internal/core/domain"
	ports "artist-analytics/internal/core/ports/output"
)

// MockCatalogConnector is a mock of CatalogConnector.
type MockCatalogConnector struct {
	mock.Mock
}

func (m *MockCatalogConnector) Connect(ctx context.Context, creds ports.Credentials) (ports.MusicCatalog, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.MusicCatalog), args.Error(1)
}

// MockMusicCatalog is a mock of MusicCatalog.
type MockMusicCatalog struct {
	mock.Mock
}

func (m *MockMusicCatalog) SearchArtist(ctx context.Context, name string) (*domain.Artist, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockMusicCatalog) GetArtist(ctx context.Context, id string) (*domain.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockMusicCatalog) TopTracks(ctx context.Context, artistID, market string) ([]domain.Track, error) {
	args := m.Called(ctx, artistID, market)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Track), args.Error(1)
}

func (m *MockMusicCatalog) ArtistAlbums(ctx context.Context, artistID string, q ports.AlbumQuery) ([]domain.Album, error) {
	args := m.Called(ctx, artistID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Album), args.Error(1)
}

func (m *MockMusicCatalog) AlbumTracks(ctx context.Context, albumID string, limit int) ([]domain.Track, error) {
	args := m.Called(ctx, albumID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Track), args.Error(1)
}

func (m *MockMusicCatalog) NewReleaseArtists(ctx context.Context, limit int) ([]domain.ArtistRef, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArtistRef), args.Error(1)
}

func (m *MockMusicCatalog) RelatedArtists(ctx context.Context, artistID string) ([]domain.ArtistRef, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArtistRef), args.Error(1)
}
