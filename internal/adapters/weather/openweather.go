package weather

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"weather-cli/internal/adapters/apiclient"
	"weather-cli/internal/domain"
	"weather-cli/internal/platform/obs"
)

const (
	openWeatherService  = "openweather"
	openWeatherEndpoint = "http://api.openweathermap.org/data/2.5/weather"
)

type openWeatherResponse struct {
	Cod     *responseCode `json:"cod"`
	Message string        `json:"message"`
	Main    *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

// OpenWeatherProvider implements ports.WeatherProvider using the OpenWeather current weather API.
type OpenWeatherProvider struct {
	api      *apiclient.Client
	apiKey   string
	endpoint string
}

type Option func(*OpenWeatherProvider)

// WithEndpoint overrides the OpenWeather endpoint URL.
func WithEndpoint(endpoint string) Option {
	return func(p *OpenWeatherProvider) {
		if endpoint != "" {
			p.endpoint = endpoint
		}
	}
}

func NewOpenWeatherProvider(session *http.Client, apiKey string, opts ...Option) (*OpenWeatherProvider, error) {
	api, err := apiclient.New(openWeatherService, session)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, domain.InvalidArgument("openweather: api key must not be empty")
	}

	p := &OpenWeatherProvider{
		api:      api,
		apiKey:   apiKey,
		endpoint: openWeatherEndpoint,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// CurrentTemperature returns the current temperature at the coordinate in Celsius.
func (p *OpenWeatherProvider) CurrentTemperature(ctx context.Context, at domain.Coordinate) (_ float64, err error) {
	defer obs.Time(ctx, "openweather.CurrentTemperature")(&err)

	// units=metric makes main.temp Celsius; no conversion is applied.
	params := apiclient.Params{
		{Key: "APPID", Value: p.apiKey},
		{Key: "lat", Value: domain.FormatDecimal(at.Lat)},
		{Key: "lon", Value: domain.FormatDecimal(at.Lon)},
		{Key: "units", Value: "metric"},
	}

	var decoded openWeatherResponse
	status, err := p.api.GetJSON(ctx, p.endpoint, params, &decoded)
	if err != nil {
		return 0, err
	}

	if decoded.Cod == nil {
		return 0, p.apiError(status, "malformed openweather response: missing cod")
	}

	code := int(*decoded.Cod)
	if code != http.StatusOK {
		msg := decoded.Message
		if msg == "" {
			msg = fmt.Sprintf("unexpected response code %d", code)
		}
		return 0, p.apiError(code, msg)
	}

	if decoded.Main == nil || decoded.Main.Temp == nil {
		return 0, p.apiError(code, "malformed openweather response: missing temperature")
	}

	return *decoded.Main.Temp, nil
}

func (p *OpenWeatherProvider) apiError(code int, msg string) error {
	return &domain.APIError{Service: openWeatherService, StatusCode: code, Message: msg}
}
