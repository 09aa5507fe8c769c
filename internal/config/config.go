package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"weather-cli/internal/domain"
)

const defaultHTTPTimeout = 10 * time.Second

// Config holds everything main needs to wire the adapters.
type Config struct {
	OpenCageKey    string
	OpenWeatherKey string

	OpenCageURL    string
	OpenWeatherURL string
	HTTPTimeout    time.Duration

	Verbose   bool
	ZipkinURL string
}

// Load reads configuration from the environment.
// API keys are checked first, OpenCage before OpenWeather, so a missing key
// is reported before anything else is parsed.
func Load() (*Config, error) {
	c := &Config{
		OpenCageKey:    strings.TrimSpace(os.Getenv("OPENCAGE_KEY")),
		OpenWeatherKey: strings.TrimSpace(os.Getenv("OPENWEATHER_KEY")),
	}

	if c.OpenCageKey == "" {
		return nil, domain.InvalidArgument("Missing OpenCage api key")
	}
	if c.OpenWeatherKey == "" {
		return nil, domain.InvalidArgument("Missing OpenWeather api key")
	}

	c.OpenCageURL = strings.TrimSpace(os.Getenv("OPENCAGE_URL"))
	c.OpenWeatherURL = strings.TrimSpace(os.Getenv("OPENWEATHER_URL"))
	c.ZipkinURL = strings.TrimSpace(os.Getenv("ZIPKIN_URL"))

	timeout, err := time.ParseDuration(Get("HTTP_TIMEOUT", defaultHTTPTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("load config: HTTP_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("load config: HTTP_TIMEOUT must be positive, got %s", timeout)
	}
	c.HTTPTimeout = timeout

	verbose, err := strconv.ParseBool(Get("LOG_VERBOSE", "false"))
	if err != nil {
		return nil, fmt.Errorf("load config: LOG_VERBOSE: %w", err)
	}
	c.Verbose = verbose

	return c, nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
