package domain

import "strconv"

// Immutable geographic coordinate, optionally annotated with a place name.
type Coordinate struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

func NewCoordinate(lat, lon float64, displayName string) Coordinate {
	return Coordinate{Lat: lat, Lon: lon, DisplayName: displayName}
}

// String returns the display name, or "lat, lon" when none was resolved.
func (c Coordinate) String() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return FormatDecimal(c.Lat) + ", " + FormatDecimal(c.Lon)
}

// FormatDecimal renders f in its shortest round-trip decimal form (41.65, -1.05).
func FormatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
