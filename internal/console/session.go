package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"weather-cli/internal/domain"
	"weather-cli/internal/ports"
	"weather-cli/internal/services"
)

const (
	Prompt        = "Where are you? "
	FailureHeader = "Could not retrieve weather:"
)

// Session runs one prompt-lookup-print cycle against In and Out.
type Session struct {
	In       io.Reader
	Out      io.Writer
	Geocoder ports.Geocoder
	Weather  ports.WeatherProvider
}

// Run prompts for a location and prints its current temperature.
//
// API failures and blank input are reported on Out and Run returns nil;
// only I/O failures and a closed input are returned.
func (s *Session) Run(ctx context.Context) error {
	if _, err := io.WriteString(s.Out, Prompt); err != nil {
		return fmt.Errorf("console: write prompt: %w", err)
	}

	line, err := bufio.NewReader(s.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("console: read location: %w", err)
	}
	if errors.Is(err, io.EOF) && strings.TrimSpace(line) == "" {
		return domain.InvalidArgument("console: no location entered")
	}

	loc := domain.ParseLocation(line)
	if loc.Query() == "" {
		return s.printFailure("Location must not be empty")
	}

	report, err := services.CurrentWeather(ctx, loc, s.Geocoder, s.Weather)
	if err != nil {
		apiErr, ok := domain.IsAPIError(err)
		if !ok {
			return err
		}
		log.Printf("lookup failed: %s", apiErr.Detailed())
		return s.printFailure(apiErr.Message)
	}

	if _, err := fmt.Fprintf(s.Out, "%s wether:\n%s degrees Celsius\n",
		report.Location, domain.FormatDecimal(report.TemperatureC)); err != nil {
		return fmt.Errorf("console: write report: %w", err)
	}
	return nil
}

func (s *Session) printFailure(msg string) error {
	if _, err := fmt.Fprintf(s.Out, "%s\n%s\n", FailureHeader, msg); err != nil {
		return fmt.Errorf("console: write failure: %w", err)
	}
	return nil
}
