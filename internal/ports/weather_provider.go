package ports

import (
	"context"
	"weather-cli/internal/domain"
)

// Contract for retrieving current conditions at a coordinate.
type WeatherProvider interface {
	// Return the current temperature in degrees Celsius.
	CurrentTemperature(ctx context.Context, at domain.Coordinate) (float64, error)
}
