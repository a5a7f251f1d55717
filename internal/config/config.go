package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Spotify   SpotifyConfig
	Analytics AnalyticsConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// SpotifyConfig holds the upstream endpoints and the fallback credentials used
// when a request does not carry its own.
type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	APIURL       string
	TokenURL     string
	Market       string
	Timeout      time.Duration
}

type AnalyticsConfig struct {
	DefaultArtist    string
	PopularSource    string
	PopularLimit     int
	NewReleasesLimit int
	TopTracks        int
	RandomTopTracks  int
	AlbumTracks      int
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 5000)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SPOTIFY_CLIENT_ID", "")
	v.SetDefault("SPOTIFY_CLIENT_SECRET", "")
	v.SetDefault("SPOTIFY_API_URL", "https://api.spotify.com/v1/")
	v.SetDefault("SPOTIFY_TOKEN_URL", "https://accounts.spotify.com/api/token")
	v.SetDefault("SPOTIFY_MARKET", "US")
	v.SetDefault("SPOTIFY_TIMEOUT", "15s")
	v.SetDefault("ANALYTICS_DEFAULT_ARTIST", "Mt Joy")
	v.SetDefault("ANALYTICS_POPULAR_SOURCE", "new_releases")
	v.SetDefault("ANALYTICS_POPULAR_LIMIT", 10)
	v.SetDefault("ANALYTICS_NEW_RELEASES_LIMIT", 20)
	v.SetDefault("ANALYTICS_TOP_TRACKS", 5)
	v.SetDefault("ANALYTICS_RANDOM_TOP_TRACKS", 3)
	v.SetDefault("ANALYTICS_ALBUM_TRACKS", 5)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Optional config file, keys use the same names as the env vars
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// Env
	v.AutomaticEnv()

	timeout, err := time.ParseDuration(v.GetString("SPOTIFY_TIMEOUT"))
	if err != nil {
		timeout = 15 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:           v.GetString("SERVER_HOST"),
			Port:           v.GetInt("SERVER_PORT"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Spotify: SpotifyConfig{
			ClientID:     v.GetString("SPOTIFY_CLIENT_ID"),
			ClientSecret: v.GetString("SPOTIFY_CLIENT_SECRET"),
			APIURL:       v.GetString("SPOTIFY_API_URL"),
			TokenURL:     v.GetString("SPOTIFY_TOKEN_URL"),
			Market:       v.GetString("SPOTIFY_MARKET"),
			Timeout:      timeout,
		},
		Analytics: AnalyticsConfig{
			DefaultArtist:    v.GetString("ANALYTICS_DEFAULT_ARTIST"),
			PopularSource:    v.GetString("ANALYTICS_POPULAR_SOURCE"),
			PopularLimit:     v.GetInt("ANALYTICS_POPULAR_LIMIT"),
			NewReleasesLimit: v.GetInt("ANALYTICS_NEW_RELEASES_LIMIT"),
			TopTracks:        v.GetInt("ANALYTICS_TOP_TRACKS"),
			RandomTopTracks:  v.GetInt("ANALYTICS_RANDOM_TOP_TRACKS"),
			AlbumTracks:      v.GetInt("ANALYTICS_ALBUM_TRACKS"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
