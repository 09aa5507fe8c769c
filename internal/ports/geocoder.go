package ports

import (
	"context"
	"weather-cli/internal/domain"
)

// Contract for turning a free-text location into coordinates.
type Geocoder interface {
	// Resolve the best match for loc; fails with *domain.APIError when the service has none.
	Resolve(ctx context.Context, loc domain.Location) (domain.Coordinate, error)
}
