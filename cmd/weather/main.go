package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"weather-cli/internal/adapters/geocode"
	"weather-cli/internal/adapters/weather"
	"weather-cli/internal/config"
	"weather-cli/internal/console"
	"weather-cli/internal/platform/obs"
	"weather-cli/internal/platform/tracing"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires the OpenCage and OpenWeather adapters behind ports and runs one console session.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	envErr := godotenv.Load()

	// Missing keys are fatal and reported before any network activity.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// stdout is the user-facing surface; diagnostics go to stderr only when asked for.
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
	}
	if envErr != nil {
		log.Println("No .env file found (using environment variables)")
	}

	shutdown, err := tracing.Setup(cfg.ZipkinURL, "weather-cli")
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.Printf("tracing shutdown failed: %v", err)
		}
	}()

	session := &http.Client{Timeout: cfg.HTTPTimeout}

	geo, err := geocode.NewOpenCageGeocoder(session, cfg.OpenCageKey, geocode.WithEndpoint(cfg.OpenCageURL))
	if err != nil {
		return err
	}
	provider, err := weather.NewOpenWeatherProvider(session, cfg.OpenWeatherKey, weather.WithEndpoint(cfg.OpenWeatherURL))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = obs.WithRunID(ctx)

	log.Printf("run_id=%s timeout=%s tracing=%t", obs.RunID(ctx), cfg.HTTPTimeout, cfg.ZipkinURL != "")

	s := &console.Session{
		In:       os.Stdin,
		Out:      os.Stdout,
		Geocoder: geo,
		Weather:  provider,
	}
	return s.Run(ctx)
}
