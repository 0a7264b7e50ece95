package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Sonarr
	SonarrURL    string
	SonarrAPIKey string

	// qBittorrent
	QBittorrentURL string
	Category       string // Label every submission is filed under (default: tv-sonarr)

	// Reconciliation
	CheckInterval time.Duration // Time between two passes (default: 15m)
	MaxReleaseAge time.Duration // Releases published longer ago are not submitted (default: 168h)
	SkipWindow    time.Duration // Lifetime of the skip-set, 0 disables it (default: 12h)

	// Transport
	HTTPTimeout time.Duration

	// Server
	ServerPort string // Empty disables the operational server

	// Paths
	IgnoreFile string // Series titles never reconciled

	// Logging
	LogLevel  string
	LogFormat string
}

const (
	defaultCategory      = "tv-sonarr"
	defaultCheckInterval = 15 * time.Minute
	defaultMaxReleaseAge = 7 * 24 * time.Hour
	defaultSkipWindow    = 12 * time.Hour
	defaultHTTPTimeout   = 30 * time.Second
)

// Load loads configuration from environment variables, an optional config file and a .env file
func Load(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(".env")
		v.SetConfigType("env")
		v.AddConfigPath(".")
		// Load .env file if it exists (ignore if not found)
		_ = v.ReadInConfig()
	}
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("category", defaultCategory)
	v.SetDefault("check_interval", defaultCheckInterval)
	v.SetDefault("max_release_age", defaultMaxReleaseAge)
	v.SetDefault("skip_window", defaultSkipWindow)
	v.SetDefault("http_timeout", defaultHTTPTimeout)
	v.SetDefault("server_port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
}

func fromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	config := &Config{
		SonarrURL:    v.GetString("sonarr_api_url"),
		SonarrAPIKey: v.GetString("sonarr_api_key"),

		QBittorrentURL: v.GetString("qb_api_url"),
		Category:       v.GetString("category"),

		CheckInterval: v.GetDuration("check_interval"),
		MaxReleaseAge: v.GetDuration("max_release_age"),
		SkipWindow:    v.GetDuration("skip_window"),

		HTTPTimeout: v.GetDuration("http_timeout"),

		ServerPort: v.GetString("server_port"),

		IgnoreFile: v.GetString("ignore_file"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks required fields and value ranges
func (c *Config) Validate() error {
	if c.SonarrURL == "" {
		return fmt.Errorf("SONARR_API_URL is required")
	}
	if err := validateURL(c.SonarrURL); err != nil {
		return fmt.Errorf("SONARR_API_URL: %w", err)
	}
	if c.SonarrAPIKey == "" {
		return fmt.Errorf("SONARR_API_KEY is required")
	}
	if c.QBittorrentURL == "" {
		return fmt.Errorf("QB_API_URL is required")
	}
	if err := validateURL(c.QBittorrentURL); err != nil {
		return fmt.Errorf("QB_API_URL: %w", err)
	}
	if c.Category == "" {
		return fmt.Errorf("CATEGORY must not be empty")
	}
	if c.CheckInterval <= 0 {
		return fmt.Errorf("CHECK_INTERVAL must be positive, got %s", c.CheckInterval)
	}
	if c.MaxReleaseAge <= 0 {
		return fmt.Errorf("MAX_RELEASE_AGE must be positive, got %s", c.MaxReleaseAge)
	}
	if c.SkipWindow < 0 {
		return fmt.Errorf("SKIP_WINDOW must not be negative, got %s", c.SkipWindow)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q in %s", u.Scheme, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %s", raw)
	}
	return nil
}
