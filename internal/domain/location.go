package domain

import "strings"

// Represents a free-text place to geocode.
// State and Country are optional; an empty string means absent.
type Location struct {
	City    string
	State   string
	Country string
}

// Query joins the non-empty parts with commas, e.g. "Des Moines,Ia,US".
func (l Location) Query() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.City, l.State, l.Country} {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, ",")
}

// ParseLocation splits a console line of the form "city[, state[, country]]".
// Lines with more than three comma-separated parts are kept whole as the city.
func ParseLocation(line string) Location {
	line = strings.TrimSpace(line)
	parts := strings.Split(line, ",")
	if len(parts) > 3 {
		return Location{City: line}
	}

	var loc Location
	fields := []*string{&loc.City, &loc.State, &loc.Country}
	for i, p := range parts {
		*fields[i] = strings.TrimSpace(p)
	}
	return loc
}
