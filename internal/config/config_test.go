package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "https://api.spotify.com/v1/", cfg.Spotify.APIURL)
	assert.Equal(t, "https://accounts.spotify.com/api/token", cfg.Spotify.TokenURL)
	assert.Equal(t, "US", cfg.Spotify.Market)
	assert.Equal(t, 15*time.Second, cfg.Spotify.Timeout)
	assert.Equal(t, "Mt Joy", cfg.Analytics.DefaultArtist)
	assert.Equal(t, "new_releases", cfg.Analytics.PopularSource)
	assert.Equal(t, 10, cfg.Analytics.PopularLimit)
	assert.Equal(t, 20, cfg.Analytics.NewReleasesLimit)
	assert.Equal(t, 5, cfg.Analytics.TopTracks)
	assert.Equal(t, 3, cfg.Analytics.RandomTopTracks)
	assert.Equal(t, 5, cfg.Analytics.AlbumTracks)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SPOTIFY_CLIENT_ID", "env-id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "env-secret")
	t.Setenv("SPOTIFY_TIMEOUT", "2s")
	t.Setenv("ANALYTICS_POPULAR_SOURCE", "related")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "env-id", cfg.Spotify.ClientID)
	assert.Equal(t, "env-secret", cfg.Spotify.ClientSecret)
	assert.Equal(t, 2*time.Second, cfg.Spotify.Timeout)
	assert.Equal(t, "related", cfg.Analytics.PopularSource)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("SPOTIFY_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.Spotify.Timeout)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("SERVER_PORT: 7070\nSPOTIFY_MARKET: SE\n"), 0o600))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "SE", cfg.Spotify.Market)
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("SERVER_PORT: [7070\n"), 0o600))
	t.Chdir(dir)

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "read config file")
}
