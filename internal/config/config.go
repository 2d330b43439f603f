package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every setting the service reads from the environment.
type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Providers ProviderConfig
	Cache     CacheConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	providers, err := loadProviderConfig()
	if err != nil {
		return nil, err
	}

	cache, err := loadCacheConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:    server,
		Auth:      AuthConfig{APIKey: strings.TrimSpace(os.Getenv("API_KEY"))},
		Providers: providers,
		Cache:     cache,
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AuthConfig holds the shared API key checked on chat endpoints. An empty
// key disables the check.
type AuthConfig struct {
	APIKey string
}

// Required reports whether requests must carry the key.
func (c AuthConfig) Required() bool {
	return c.APIKey != ""
}

// ProviderConfig holds credentials and timeouts for external lookups.
type ProviderConfig struct {
	OpenWeatherKey string
	WeatherTimeout time.Duration
	SearchTimeout  time.Duration
}

// WeatherEnabled reports whether live weather lookups can be made.
func (c ProviderConfig) WeatherEnabled() bool {
	return c.OpenWeatherKey != ""
}

func loadProviderConfig() (ProviderConfig, error) {
	weatherTimeout, err := parseOptionalDurationEnv("WEATHER_TIMEOUT")
	if err != nil {
		return ProviderConfig{}, err
	}

	searchTimeout, err := parseOptionalDurationEnv("SEARCH_TIMEOUT")
	if err != nil {
		return ProviderConfig{}, err
	}

	cfg := ProviderConfig{
		OpenWeatherKey: strings.TrimSpace(os.Getenv("OPENWEATHER_API_KEY")),
		WeatherTimeout: 15 * time.Second,
		SearchTimeout:  15 * time.Second,
	}
	if weatherTimeout != nil {
		cfg.WeatherTimeout = *weatherTimeout
	}
	if searchTimeout != nil {
		cfg.SearchTimeout = *searchTimeout
	}
	return cfg, nil
}

// CacheConfig controls the enrichment query cache.
type CacheConfig struct {
	TTL time.Duration
}

func loadCacheConfig() (CacheConfig, error) {
	ttl, err := parseOptionalDurationEnv("CACHE_TTL")
	if err != nil {
		return CacheConfig{}, err
	}

	cfg := CacheConfig{TTL: 5 * time.Minute}
	if ttl != nil {
		if *ttl <= 0 {
			return CacheConfig{}, fmt.Errorf("CACHE_TTL must be positive, got %s", *ttl)
		}
		cfg.TTL = *ttl
	}
	return cfg, nil
}

func parseOptionalDurationEnv(key string) (*time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	// Accept a bare number of seconds or a Go duration string.
	if seconds, err := strconv.Atoi(value); err == nil {
		d := time.Duration(seconds) * time.Second
		return &d, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &d, nil
}
