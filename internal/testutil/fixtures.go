package testutil

import (
	"fmt"

	"artist-analytics/internal/core/domain"
)

// FixtureArtist returns a fully populated artist without top tracks.
func FixtureArtist(id, name string) *domain.Artist {
	return &domain.Artist{
		ID:         id,
		Name:       name,
		Followers:  1234567,
		Popularity: 71,
		ImageURL:   "https://i.scdn.co/image/" + id,
	}
}

// FixtureTracks returns n tracks named "<prefix> 1".."<prefix> n", each 3:30 long.
func FixtureTracks(prefix string, n int) []domain.Track {
	tracks := make([]domain.Track, 0, n)
	for i := 1; i <= n; i++ {
		tracks = append(tracks, domain.Track{
			ID:         fmt.Sprintf("%s-%d", prefix, i),
			Name:       fmt.Sprintf("%s %d", prefix, i),
			DurationMs: 210000,
		})
	}
	return tracks
}
