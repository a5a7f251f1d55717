package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const (
	FakeClientID     = "fake-client-id"
	FakeClientSecret = "fake-client-secret"
	FakeAccessToken  = "fake-access-token"
)

// FakeSpotify is an httptest server answering the subset of the Spotify Web
// API and accounts service used by the analytics pipeline.
type FakeSpotify struct {
	Server *httptest.Server

	mu    sync.Mutex
	calls []string

	// Payloads keyed by artist or album id. Missing keys answer 404, except
	// for Albums which answers an empty page.
	Artists     map[string]map[string]any
	TopTracks   map[string][]map[string]any
	Albums      map[string][]map[string]any
	AlbumTracks map[string][]map[string]any
	Related     map[string][]map[string]any
	NewReleases []map[string]any

	// SearchResults keyed by the raw q parameter.
	SearchResults map[string][]map[string]any

	// FailAPI makes every catalog endpoint answer 503.
	FailAPI bool
}

// NewFakeSpotify starts a fake seeded with a small catalog around Mt. Joy.
func NewFakeSpotify(t *testing.T) *FakeSpotify {
	t.Helper()

	f := &FakeSpotify{}
	f.seed()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/token", f.handleToken)
	mux.HandleFunc("GET /v1/search", f.authorized(f.handleSearch))
	mux.HandleFunc("GET /v1/artists/{id}", f.authorized(f.handleArtist))
	mux.HandleFunc("GET /v1/artists/{id}/top-tracks", f.authorized(f.handleTopTracks))
	mux.HandleFunc("GET /v1/artists/{id}/albums", f.authorized(f.handleAlbums))
	mux.HandleFunc("GET /v1/artists/{id}/related-artists", f.authorized(f.handleRelated))
	mux.HandleFunc("GET /v1/albums/{id}/tracks", f.authorized(f.handleAlbumTracks))
	mux.HandleFunc("GET /v1/browse/new-releases", f.authorized(f.handleNewReleases))

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

// APIURL is the catalog base URL, with the trailing slash the client expects.
func (f *FakeSpotify) APIURL() string { return f.Server.URL + "/v1/" }

// TokenURL is the accounts token endpoint.
func (f *FakeSpotify) TokenURL() string { return f.Server.URL + "/api/token" }

// Calls returns the request paths served so far, in order.
func (f *FakeSpotify) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *FakeSpotify) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, r.URL.Path)
}

func (f *FakeSpotify) seed() {
	f.Artists = map[string]map[string]any{
		"mtjoy": FakeArtist("mtjoy", "Mt. Joy", 1234567, 64),
		"alpha": FakeArtist("alpha", "Alpha", 5000, 40),
		"beta":  FakeArtist("beta", "Beta", 6000, 45),
	}
	f.SearchResults = map[string][]map[string]any{
		"Mt Joy": {f.Artists["mtjoy"]},
	}
	f.TopTracks = map[string][]map[string]any{
		"mtjoy": {
			FakeTrack("t1", "Silver Lining", 215000),
			FakeTrack("t2", "Astrovan", 226000),
			FakeTrack("t3", "Sheep", 189000),
			FakeTrack("t4", "Julia", 201000),
			FakeTrack("t5", "Bathroom Light", 240000),
			FakeTrack("t6", "Jenny Jenkins", 180000),
		},
		"alpha": {FakeTrack("a1", "Alpha One", 100000), FakeTrack("a2", "Alpha Two", 100000)},
		"beta": {
			FakeTrack("b1", "Beta One", 100000),
			FakeTrack("b2", "Beta Two", 100000),
			FakeTrack("b3", "Beta Three", 100000),
			FakeTrack("b4", "Beta Four", 100000),
		},
	}
	f.Albums = map[string][]map[string]any{
		"mtjoy": {{
			"id":           "orange",
			"name":         "Orange Blood",
			"release_date": "2022-06-17",
			"images":       []map[string]any{{"url": "https://img.test/orange", "height": 640, "width": 640}},
			"artists":      []map[string]any{{"id": "mtjoy", "name": "Mt. Joy"}},
		}},
	}
	f.AlbumTracks = map[string][]map[string]any{
		"orange": {
			FakeTrack("o1", "Lemon Tree", 192000),
			FakeTrack("o2", "Orange Blood", 247000),
			FakeTrack("o3", "Evergreen", 205000),
			FakeTrack("o4", "Roly Poly", 230000),
			FakeTrack("o5", "Bumper Cars", 199000),
		},
	}
	f.Related = map[string][]map[string]any{
		"mtjoy": {
			{"id": "alpha", "name": "Alpha"},
			{"id": "beta", "name": "Beta"},
		},
	}
	f.NewReleases = []map[string]any{
		{"id": "nr1", "name": "Release One", "artists": []map[string]any{{"id": "alpha", "name": "Alpha"}}},
		{"id": "nr2", "name": "Release Two", "artists": []map[string]any{{"id": "mtjoy", "name": "Mt. Joy"}, {"id": "beta", "name": "Beta"}}},
		{"id": "nr3", "name": "Release Three", "artists": []map[string]any{{"id": "alpha", "name": "Alpha"}}},
	}
}

// FakeArtist builds a full artist object.
func FakeArtist(id, name string, followers, popularity int) map[string]any {
	return map[string]any{
		"id":         id,
		"name":       name,
		"popularity": popularity,
		"followers":  map[string]any{"total": followers},
		"genres":     []string{},
		"images":     []map[string]any{{"url": "https://img.test/" + id, "height": 640, "width": 640}},
	}
}

// FakeTrack builds a simple track object.
func FakeTrack(id, name string, durationMs int) map[string]any {
	return map[string]any{
		"id":          id,
		"name":        name,
		"duration_ms": durationMs,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeAPIError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": map[string]any{"status": status, "message": msg}})
}

func (f *FakeSpotify) handleToken(w http.ResponseWriter, r *http.Request) {
	f.record(r)
	id, secret, ok := r.BasicAuth()
	if !ok || id != FakeClientID || secret != FakeClientSecret {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":             "invalid_client",
			"error_description": "Invalid client",
		})
		return
	}
	if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "client_credentials" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "unsupported_grant_type"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": FakeAccessToken,
		"token_type":   "Bearer",
		"expires_in":   3600,
	})
}

func (f *FakeSpotify) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		if r.Header.Get("Authorization") != "Bearer "+FakeAccessToken {
			writeAPIError(w, http.StatusUnauthorized, "No token provided")
			return
		}
		if f.FailAPI {
			writeAPIError(w, http.StatusServiceUnavailable, "Service unavailable")
			return
		}
		next(w, r)
	}
}

func page(items any, total int) map[string]any {
	return map[string]any{
		"href":   "https://api.spotify.test",
		"items":  items,
		"limit":  total,
		"offset": 0,
		"total":  total,
	}
}

func (f *FakeSpotify) handleSearch(w http.ResponseWriter, r *http.Request) {
	items := f.SearchResults[r.URL.Query().Get("q")]
	if items == nil {
		items = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"artists": page(items, len(items))})
}

func (f *FakeSpotify) handleArtist(w http.ResponseWriter, r *http.Request) {
	artist, ok := f.Artists[r.PathValue("id")]
	if !ok {
		writeAPIError(w, http.StatusNotFound, "Resource not found")
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

func (f *FakeSpotify) handleTopTracks(w http.ResponseWriter, r *http.Request) {
	tracks, ok := f.TopTracks[r.PathValue("id")]
	if !ok {
		writeAPIError(w, http.StatusNotFound, "Resource not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tracks": tracks})
}

func (f *FakeSpotify) handleAlbums(w http.ResponseWriter, r *http.Request) {
	albums := f.Albums[r.PathValue("id")]
	if albums == nil {
		albums = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, page(albums, len(albums)))
}

func (f *FakeSpotify) handleAlbumTracks(w http.ResponseWriter, r *http.Request) {
	tracks, ok := f.AlbumTracks[r.PathValue("id")]
	if !ok {
		writeAPIError(w, http.StatusNotFound, "Resource not found")
		return
	}
	writeJSON(w, http.StatusOK, page(tracks, len(tracks)))
}

func (f *FakeSpotify) handleRelated(w http.ResponseWriter, r *http.Request) {
	related, ok := f.Related[r.PathValue("id")]
	if !ok {
		writeAPIError(w, http.StatusNotFound, "Resource not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"artists": related})
}

func (f *FakeSpotify) handleNewReleases(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"albums": page(f.NewReleases, len(f.NewReleases))})
}
