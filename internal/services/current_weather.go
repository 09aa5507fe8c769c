package services

import (
	"context"
	"fmt"
	"weather-cli/internal/domain"
	"weather-cli/internal/ports"
)

// CurrentWeather geocodes loc and then fetches the current temperature there.
//
// The two calls run sequentially; the weather lookup never starts if
// geocoding fails. Errors keep their *domain.APIError for errors.As.
func CurrentWeather(
	ctx context.Context,
	loc domain.Location,
	geocoder ports.Geocoder,
	provider ports.WeatherProvider,
) (*domain.WeatherReport, error) {
	if geocoder == nil || provider == nil {
		return nil, domain.InvalidArgument("current weather: geocoder and weather provider must be non-nil")
	}

	coord, err := geocoder.Resolve(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("current weather: resolve %q: %w", loc.Query(), err)
	}

	temp, err := provider.CurrentTemperature(ctx, coord)
	if err != nil {
		return nil, fmt.Errorf("current weather: temperature at %s: %w", coord, err)
	}

	return &domain.WeatherReport{
		Location:     coord,
		TemperatureC: temp,
	}, nil
}
