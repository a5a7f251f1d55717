package dto

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artist-analytics/internal/core/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		Artist: &domain.Artist{
			ID:         "mtjoy",
			Name:       "Mt. Joy",
			Followers:  1234567,
			Popularity: 64,
			ImageURL:   "https://img.test/mtjoy",
			TopTracks:  []domain.Track{{Name: "Silver Lining"}, {Name: "Astrovan"}},
		},
		LatestAlbum: &domain.Album{
			Name:        "Orange Blood",
			ReleaseDate: "2022-06-17",
			Tracks:      []domain.Track{{Name: "Lemon Tree", DurationMs: 192000}},
		},
		PopularArtists: []domain.ArtistRef{{ID: "alpha", Name: "Alpha"}, {ID: "beta", Name: "Beta"}},
	}
}

// ============================================================================
// ToAnalyticsResponse Tests
// ============================================================================

func TestToAnalyticsResponse(t *testing.T) {
	resp := ToAnalyticsResponse(sampleReport())

	assert.Equal(t, "Mt. Joy", resp.Artist.Name)
	assert.Equal(t, 1234567, resp.Artist.Followers)
	assert.Equal(t, 64, resp.Artist.Popularity)
	assert.Equal(t, []string{"Silver Lining", "Astrovan"}, resp.Artist.TopTracks)
	require.NotNil(t, resp.Artist.Image)
	assert.Equal(t, "https://img.test/mtjoy", *resp.Artist.Image)

	assert.Equal(t, "Orange Blood", resp.LatestAlbum.Name)
	assert.Equal(t, "2022-06-17", resp.LatestAlbum.ReleaseDate)
	assert.Nil(t, resp.LatestAlbum.Image)
	assert.Equal(t, []TrackResponse{{Name: "Lemon Tree", Duration: "3:12"}}, resp.LatestAlbum.Tracks)

	assert.Equal(t, []string{"Alpha", "Beta"}, resp.PopularArtists)
	assert.Nil(t, resp.RandomArtist)
}

func TestToAnalyticsResponse_RandomArtist(t *testing.T) {
	report := sampleReport()
	report.RandomArtist = &domain.Artist{Name: "Beta", Followers: 6000, Popularity: 45}

	resp := ToAnalyticsResponse(report)

	require.NotNil(t, resp.RandomArtist)
	assert.Equal(t, "Beta", resp.RandomArtist.Name)
	assert.Equal(t, []string{}, resp.RandomArtist.TopTracks)
	assert.Nil(t, resp.RandomArtist.Image)
}

func TestToAlbumResponse_UnknownReleaseDate(t *testing.T) {
	resp := ToAlbumResponse(&domain.Album{Name: "Untitled"})

	assert.Equal(t, domain.UnknownReleaseDate, resp.ReleaseDate)
	assert.Equal(t, []TrackResponse{}, resp.Tracks)
}

func TestAnalyticsResponse_JSONShape(t *testing.T) {
	data, err := json.Marshal(ToAnalyticsResponse(sampleReport()))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))

	assert.Contains(t, body, "artist")
	assert.Contains(t, body, "latest_album")
	assert.Contains(t, body, "popular_artists")
	assert.Contains(t, body, "random_artist")
	assert.Nil(t, body["random_artist"])

	album := body["latest_album"].(map[string]any)
	assert.Nil(t, album["image"])
	assert.Equal(t, "2022-06-17", album["release_date"])
}
