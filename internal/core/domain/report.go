package domain

// PopularSource selects where the popular artist list comes from.
type PopularSource string

const (
	PopularSourceNewReleases PopularSource = "new_releases"
	PopularSourceRelated     PopularSource = "related"
)

// Report is the combined result of one analytics run.
type Report struct {
	Artist         *Artist
	LatestAlbum    *Album
	PopularArtists []ArtistRef
	RandomArtist   *Artist // nil when no popular artist could be picked
}

// PopularArtistNames returns the names of the listed artists.
func (r *Report) PopularArtistNames() []string {
	names := make([]string, 0, len(r.PopularArtists))
	for _, a := range r.PopularArtists {
		names = append(names, a.Name)
	}
	return names
}
