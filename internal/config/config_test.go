package config

import (
	"errors"
	"strings"
	"testing"
	"time"
	"weather-cli/internal/domain"
)

func setKeys(t *testing.T, openCage, openWeather string) {
	t.Helper()
	t.Setenv("OPENCAGE_KEY", openCage)
	t.Setenv("OPENWEATHER_KEY", openWeather)
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("LOG_VERBOSE", "")
	t.Setenv("OPENCAGE_URL", "")
	t.Setenv("OPENWEATHER_URL", "")
	t.Setenv("ZIPKIN_URL", "")
}

func TestLoadMissingOpenCageKey(t *testing.T) {
	setKeys(t, "", "")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "Missing OpenCage api key") {
		t.Fatalf("expected missing OpenCage key error, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestLoadMissingOpenWeatherKey(t *testing.T) {
	setKeys(t, "Fizzbuzz", "   ")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "Missing OpenWeather api key") {
		t.Fatalf("expected missing OpenWeather key error, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	setKeys(t, "Fizzbuzz", "Foobar")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OpenCageKey != "Fizzbuzz" || cfg.OpenWeatherKey != "Foobar" {
		t.Fatalf("keys = %q/%q", cfg.OpenCageKey, cfg.OpenWeatherKey)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("HTTPTimeout = %s, want 10s", cfg.HTTPTimeout)
	}
	if cfg.Verbose {
		t.Fatal("Verbose should default to false")
	}
	if cfg.OpenCageURL != "" || cfg.OpenWeatherURL != "" || cfg.ZipkinURL != "" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	setKeys(t, "Fizzbuzz", "Foobar")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("LOG_VERBOSE", "true")
	t.Setenv("OPENCAGE_URL", "http://localhost:1/geo")
	t.Setenv("ZIPKIN_URL", "http://localhost:9411/api/v2/spans")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("HTTPTimeout = %s, want 3s", cfg.HTTPTimeout)
	}
	if !cfg.Verbose {
		t.Fatal("expected Verbose")
	}
	if cfg.OpenCageURL != "http://localhost:1/geo" {
		t.Fatalf("OpenCageURL = %q", cfg.OpenCageURL)
	}
	if cfg.ZipkinURL == "" {
		t.Fatal("expected ZipkinURL")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"HTTP_TIMEOUT", "soon"},
		{"HTTP_TIMEOUT", "-1s"},
		{"LOG_VERBOSE", "loud"},
	}

	for _, tt := range tests {
		setKeys(t, "Fizzbuzz", "Foobar")
		t.Setenv(tt.key, tt.value)

		if _, err := Load(); err == nil {
			t.Errorf("%s=%q: expected error", tt.key, tt.value)
		}
	}
}

func TestGet(t *testing.T) {
	t.Setenv("WEATHER_CLI_TEST", "")
	if got := Get("WEATHER_CLI_TEST", "fallback"); got != "fallback" {
		t.Fatalf("Get() = %q, want fallback", got)
	}

	t.Setenv("WEATHER_CLI_TEST", "set")
	if got := Get("WEATHER_CLI_TEST", "fallback"); got != "set" {
		t.Fatalf("Get() = %q, want set", got)
	}
}
