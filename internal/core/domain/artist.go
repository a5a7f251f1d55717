package domain

import "fmt"

// UnknownReleaseDate is reported when the catalog omits an album's release date.
const UnknownReleaseDate = "Unknown"

// ArtistRef identifies a listed artist before its details are fetched.
type ArtistRef struct {
	ID   string
	Name string
}

type Artist struct {
	ID         string
	Name       string
	Followers  int
	Popularity int
	ImageURL   string
	TopTracks  []Track
}

type Album struct {
	ID          string
	Name        string
	ReleaseDate string
	ImageURL    string
	Tracks      []Track
}

type Track struct {
	ID         string
	Name       string
	DurationMs int
}

// Duration renders the track length as M:SS.
func (t Track) Duration() string {
	if t.DurationMs < 0 {
		return "0:00"
	}
	minutes := t.DurationMs / 60000
	seconds := (t.DurationMs % 60000) / 1000
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// TrackNames returns the names of at most limit tracks, in order.
func TrackNames(tracks []Track, limit int) []string {
	if limit < 0 || limit > len(tracks) {
		limit = len(tracks)
	}
	names := make([]string, 0, limit)
	for _, t := range tracks[:limit] {
		names = append(names, t.Name)
	}
	return names
}
