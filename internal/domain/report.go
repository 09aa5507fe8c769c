package domain

// Current temperature reading for a resolved location.
type WeatherReport struct {
	Location     Coordinate
	TemperatureC float64
}
