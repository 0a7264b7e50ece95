package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("SONARR_API_URL", "http://sonarr:8989/api/v3")
	t.Setenv("SONARR_API_KEY", "secret")
	t.Setenv("QB_API_URL", "http://qb:8080/api/v2")
}

func TestLoadFromEnvDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://sonarr:8989/api/v3", cfg.SonarrURL)
	assert.Equal(t, "secret", cfg.SonarrAPIKey)
	assert.Equal(t, "http://qb:8080/api/v2", cfg.QBittorrentURL)
	assert.Equal(t, "tv-sonarr", cfg.Category)
	assert.Equal(t, 15*time.Minute, cfg.CheckInterval)
	assert.Equal(t, 168*time.Hour, cfg.MaxReleaseAge)
	assert.Equal(t, 12*time.Hour, cfg.SkipWindow)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "", cfg.IgnoreFile)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CHECK_INTERVAL", "90s")
	t.Setenv("MAX_RELEASE_AGE", "48h")
	t.Setenv("SKIP_WINDOW", "0")
	t.Setenv("CATEGORY", "tv")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.CheckInterval)
	assert.Equal(t, 48*time.Hour, cfg.MaxReleaseAge)
	assert.Equal(t, time.Duration(0), cfg.SkipWindow)
	assert.Equal(t, "tv", cfg.Category)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `sonarr_api_url: https://sonarr.example.com/api/v3
sonarr_api_key: file-key
qb_api_url: http://127.0.0.1:8080/api/v2
check_interval: 5m
max_release_age: 24h
ignore_file: /config/ignore.txt
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://sonarr.example.com/api/v3", cfg.SonarrURL)
	assert.Equal(t, "file-key", cfg.SonarrAPIKey)
	assert.Equal(t, 5*time.Minute, cfg.CheckInterval)
	assert.Equal(t, 24*time.Hour, cfg.MaxReleaseAge)
	assert.Equal(t, "/config/ignore.txt", cfg.IgnoreFile)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			SonarrURL:      "http://sonarr:8989/api/v3",
			SonarrAPIKey:   "key",
			QBittorrentURL: "http://qb:8080/api/v2",
			Category:       "tv-sonarr",
			CheckInterval:  time.Minute,
			MaxReleaseAge:  time.Hour,
			SkipWindow:     time.Hour,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "skip window disabled", mutate: func(c *Config) { c.SkipWindow = 0 }},
		{name: "missing sonarr url", mutate: func(c *Config) { c.SonarrURL = "" }, wantErr: "SONARR_API_URL is required"},
		{name: "relative sonarr url", mutate: func(c *Config) { c.SonarrURL = "sonarr/api" }, wantErr: "SONARR_API_URL"},
		{name: "missing api key", mutate: func(c *Config) { c.SonarrAPIKey = "" }, wantErr: "SONARR_API_KEY is required"},
		{name: "missing qb url", mutate: func(c *Config) { c.QBittorrentURL = "" }, wantErr: "QB_API_URL is required"},
		{name: "ftp qb url", mutate: func(c *Config) { c.QBittorrentURL = "ftp://qb" }, wantErr: "unsupported scheme"},
		{name: "empty category", mutate: func(c *Config) { c.Category = "" }, wantErr: "CATEGORY"},
		{name: "zero interval", mutate: func(c *Config) { c.CheckInterval = 0 }, wantErr: "CHECK_INTERVAL"},
		{name: "zero max age", mutate: func(c *Config) { c.MaxReleaseAge = 0 }, wantErr: "MAX_RELEASE_AGE"},
		{name: "negative skip window", mutate: func(c *Config) { c.SkipWindow = -time.Second }, wantErr: "SKIP_WINDOW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
