package geocode

import (
	"context"
	"net/http"
	"strings"
	"weather-cli/internal/adapters/apiclient"
	"weather-cli/internal/domain"
	"weather-cli/internal/platform/obs"
)

const (
	openCageService  = "opencage"
	openCageEndpoint = "https://api.opencagedata.com/geocode/v1/json"
)

type openCageResponse struct {
	Status *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
	Results []struct {
		Formatted string `json:"formatted"`
		Geometry  *struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
	} `json:"results"`
}

// OpenCageGeocoder implements ports.Geocoder using the OpenCage forward geocoding API.
type OpenCageGeocoder struct {
	api      *apiclient.Client
	apiKey   string
	endpoint string
}

type Option func(*OpenCageGeocoder)

// WithEndpoint overrides the OpenCage endpoint URL.
func WithEndpoint(endpoint string) Option {
	return func(g *OpenCageGeocoder) {
		if endpoint != "" {
			g.endpoint = endpoint
		}
	}
}

func NewOpenCageGeocoder(session *http.Client, apiKey string, opts ...Option) (*OpenCageGeocoder, error) {
	api, err := apiclient.New(openCageService, session)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, domain.InvalidArgument("opencage: api key must not be empty")
	}

	g := &OpenCageGeocoder{
		api:      api,
		apiKey:   apiKey,
		endpoint: openCageEndpoint,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Resolve returns the first OpenCage match for loc.
func (g *OpenCageGeocoder) Resolve(ctx context.Context, loc domain.Location) (_ domain.Coordinate, err error) {
	defer obs.Time(ctx, "opencage.Resolve")(&err)

	q := loc.Query()
	if q == "" {
		return domain.Coordinate{}, domain.InvalidArgument("opencage: location must not be empty")
	}

	params := apiclient.Params{
		{Key: "q", Value: q},
		{Key: "key", Value: g.apiKey},
	}

	var decoded openCageResponse
	status, err := g.api.GetJSON(ctx, g.endpoint, params, &decoded)
	if err != nil {
		return domain.Coordinate{}, err
	}

	if decoded.Status == nil {
		return domain.Coordinate{}, g.apiError(status, "malformed opencage response: missing status")
	}

	if decoded.Status.Code != http.StatusOK {
		return domain.Coordinate{}, g.apiError(decoded.Status.Code, decoded.Status.Message)
	}

	if len(decoded.Results) == 0 {
		return domain.Coordinate{}, g.apiError(decoded.Status.Code, "Location not found")
	}

	first := decoded.Results[0]
	if first.Geometry == nil {
		return domain.Coordinate{}, g.apiError(decoded.Status.Code, "malformed opencage response: missing geometry")
	}

	return domain.NewCoordinate(first.Geometry.Lat, first.Geometry.Lng, first.Formatted), nil
}

func (g *OpenCageGeocoder) apiError(code int, msg string) error {
	return &domain.APIError{Service: openCageService, StatusCode: code, Message: msg}
}
