package geocode

import (
	"context"
	"weather-cli/internal/domain"
)

// StaticGeocoder resolves queries from a fixed table, for tests.
type StaticGeocoder struct {
	m     map[string]domain.Coordinate
	Calls int
}

func NewStaticGeocoder(entries map[string]domain.Coordinate) *StaticGeocoder {
	m := make(map[string]domain.Coordinate, len(entries))
	for q, c := range entries {
		m[q] = c
	}
	return &StaticGeocoder{m: m}
}

func (g *StaticGeocoder) Resolve(ctx context.Context, loc domain.Location) (domain.Coordinate, error) {
	g.Calls++

	c, ok := g.m[loc.Query()]
	if !ok {
		return domain.Coordinate{}, &domain.APIError{Service: "static", Message: "Location not found"}
	}
	return c, nil
}
