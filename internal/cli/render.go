package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"

	"artist-analytics/internal/adapters/primary/http/dto"
	"artist-analytics/internal/core/domain"
)

const ruleWidth = 40

// RenderText writes the report as a numbered, human readable summary.
func RenderText(w io.Writer, r *domain.Report) error {
	var b strings.Builder

	title := strings.ToUpper(r.Artist.Name) + " ANALYTICS"
	rule := strings.Repeat("=", max(ruleWidth, runewidth.StringWidth(title)))
	fmt.Fprintln(&b, title)
	fmt.Fprintln(&b, rule)

	fmt.Fprintf(&b, "\n1. %s Stats:\n", r.Artist.Name)
	writeArtist(&b, r.Artist)

	fmt.Fprintln(&b, "\n2. Latest Album:")
	if a := r.LatestAlbum; a != nil {
		fmt.Fprintf(&b, "   %s (%s)\n", a.Name, a.ReleaseDate)
		writeAlbumTracks(&b, a.Tracks)
	}

	fmt.Fprintln(&b, "\n3. Popular Artists:")
	if names := r.PopularArtistNames(); len(names) > 0 {
		writeNumbered(&b, names)
	} else {
		fmt.Fprintln(&b, "     (none)")
	}

	if r.RandomArtist != nil {
		fmt.Fprintln(&b, "\n4. Random Artist Details:")
		writeArtist(&b, r.RandomArtist)
	}

	fmt.Fprintln(&b, "\n"+rule)

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderJSON writes the same document the HTTP API returns, indented.
func RenderJSON(w io.Writer, r *domain.Report) error {
	data, err := json.MarshalIndent(dto.ToAnalyticsResponse(r), "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func writeArtist(b *strings.Builder, a *domain.Artist) {
	fmt.Fprintf(b, "   %s\n", a.Name)
	fmt.Fprintf(b, "   Followers: %s\n", humanize.Comma(int64(a.Followers)))
	fmt.Fprintf(b, "   Popularity: %d/100\n", a.Popularity)

	if len(a.TopTracks) > 0 {
		fmt.Fprintln(b, "\n   Top Tracks:")
		writeNumbered(b, domain.TrackNames(a.TopTracks, -1))
	}
}

func writeNumbered(b *strings.Builder, items []string) {
	digits := len(strconv.Itoa(len(items)))
	for i, item := range items {
		fmt.Fprintf(b, "     %*d. %s\n", digits, i+1, item)
	}
}

// writeAlbumTracks lines durations up in one column, measuring names by
// display width so wide runes do not push it out of place.
func writeAlbumTracks(b *strings.Builder, tracks []domain.Track) {
	width := 0
	for _, t := range tracks {
		width = max(width, runewidth.StringWidth(t.Name))
	}

	digits := len(strconv.Itoa(len(tracks)))
	for i, t := range tracks {
		fmt.Fprintf(b, "     %*d. %s  %s\n", digits, i+1, runewidth.FillRight(t.Name, width), t.Duration())
	}
}
