package dto

import (
	"artist-analytics/internal/core/domain"
)

// ============================================================================
// Request DTOs
// ============================================================================

// AnalyticsRequest is accepted both as a JSON body and as a submitted form.
// Empty credentials fall back to the server configuration.
type AnalyticsRequest struct {
	ClientID     string `json:"client_id" form:"client_id"`
	ClientSecret string `json:"client_secret" form:"client_secret"`
	ArtistName   string `json:"artist_name" form:"artist_name"`
	Market       string `json:"market" form:"market" binding:"omitempty,len=2,alpha"`
}

// ============================================================================
// Response DTOs
// ============================================================================

type ArtistResponse struct {
	Name       string   `json:"name"`
	Followers  int      `json:"followers"`
	Popularity int      `json:"popularity"`
	TopTracks  []string `json:"top_tracks"`
	Image      *string  `json:"image"`
}

type TrackResponse struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

type AlbumResponse struct {
	Name        string          `json:"name"`
	ReleaseDate string          `json:"release_date"`
	Image       *string         `json:"image"`
	Tracks      []TrackResponse `json:"tracks"`
}

type AnalyticsResponse struct {
	Artist         ArtistResponse  `json:"artist"`
	LatestAlbum    AlbumResponse   `json:"latest_album"`
	PopularArtists []string        `json:"popular_artists"`
	RandomArtist   *ArtistResponse `json:"random_artist"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ============================================================================
// Mappers
// ============================================================================

func ToAnalyticsResponse(r *domain.Report) AnalyticsResponse {
	resp := AnalyticsResponse{
		PopularArtists: r.PopularArtistNames(),
	}
	if r.Artist != nil {
		resp.Artist = ToArtistResponse(r.Artist)
	} else {
		resp.Artist.TopTracks = []string{}
	}
	if r.LatestAlbum != nil {
		resp.LatestAlbum = ToAlbumResponse(r.LatestAlbum)
	} else {
		resp.LatestAlbum = AlbumResponse{ReleaseDate: domain.UnknownReleaseDate, Tracks: []TrackResponse{}}
	}
	if r.RandomArtist != nil {
		random := ToArtistResponse(r.RandomArtist)
		resp.RandomArtist = &random
	}
	return resp
}

func ToArtistResponse(a *domain.Artist) ArtistResponse {
	return ArtistResponse{
		Name:       a.Name,
		Followers:  a.Followers,
		Popularity: a.Popularity,
		TopTracks:  domain.TrackNames(a.TopTracks, -1),
		Image:      optionalString(a.ImageURL),
	}
}

func ToAlbumResponse(a *domain.Album) AlbumResponse {
	releaseDate := a.ReleaseDate
	if releaseDate == "" {
		releaseDate = domain.UnknownReleaseDate
	}

	tracks := make([]TrackResponse, 0, len(a.Tracks))
	for _, t := range a.Tracks {
		tracks = append(tracks, TrackResponse{Name: t.Name, Duration: t.Duration()})
	}

	return AlbumResponse{
		Name:        a.Name,
		ReleaseDate: releaseDate,
		Image:       optionalString(a.ImageURL),
		Tracks:      tracks,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
