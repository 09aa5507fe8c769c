package weather

import (
	"context"
	"weather-cli/internal/domain"
)

// StaticProvider returns a fixed temperature or error, for tests.
type StaticProvider struct {
	TempC float64
	Err   error

	Calls []domain.Coordinate
}

func (p *StaticProvider) CurrentTemperature(ctx context.Context, at domain.Coordinate) (float64, error) {
	p.Calls = append(p.Calls, at)
	if p.Err != nil {
		return 0, p.Err
	}
	return p.TempC, nil
}
