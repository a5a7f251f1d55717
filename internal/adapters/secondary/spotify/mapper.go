package spotify

import (
	spotifyapi "github.com/zmb3/spotify/v2"

	"artist-analytics/internal/core/domain"
)

func toArtist(a *spotifyapi.FullArtist) *domain.Artist {
	return &domain.Artist{
		ID:         string(a.ID),
		Name:       a.Name,
		Followers:  int(a.Followers.Count),
		Popularity: int(a.Popularity),
		ImageURL:   firstImage(a.Images),
	}
}

func toArtistRef(a spotifyapi.SimpleArtist) domain.ArtistRef {
	return domain.ArtistRef{ID: string(a.ID), Name: a.Name}
}

func toAlbum(a spotifyapi.SimpleAlbum) domain.Album {
	return domain.Album{
		ID:          string(a.ID),
		Name:        a.Name,
		ReleaseDate: a.ReleaseDate,
		ImageURL:    firstImage(a.Images),
	}
}

func toTrack(t spotifyapi.SimpleTrack) domain.Track {
	return domain.Track{
		ID:         string(t.ID),
		Name:       t.Name,
		DurationMs: int(t.Duration),
	}
}

// firstImage picks the widest image; Spotify lists them largest first.
func firstImage(images []spotifyapi.Image) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}
