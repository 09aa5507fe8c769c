package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"weather-cli/internal/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Upper bound on response bodies; both APIs answer with a few KB.
const maxBodyBytes = 1 << 20

// Client issues single GET requests against one external JSON API.
// There is no retry; every failure surfaces as a *domain.APIError.
type Client struct {
	service string
	session *http.Client
}

// New returns a Client for service using session, which must be non-nil.
func New(service string, session *http.Client) (*Client, error) {
	if session == nil {
		return nil, domain.InvalidArgument(service + ": http client must not be nil")
	}
	return &Client{service: service, session: session}, nil
}

func (c *Client) newRequest(ctx context.Context, endpoint string, params Params) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.URL.RawQuery = params.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// GetJSON sends one GET to endpoint and decodes the body into out.
//
// The body is decoded whatever the HTTP status, because both providers report
// failures inside the JSON payload. The HTTP status code is returned so callers
// can attach it to their own APIError.
func (c *Client) GetJSON(ctx context.Context, endpoint string, params Params, out any) (status int, err error) {
	tracer := otel.Tracer("weather-cli/" + c.service)
	ctx, span := tracer.Start(ctx, c.service+" GET")
	defer func() {
		span.SetAttributes(attribute.Int("http.status_code", status))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req, err := c.newRequest(ctx, endpoint, params)
	if err != nil {
		return 0, c.transportError(err)
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return 0, c.transportError(err)
	}
	defer resp.Body.Close()

	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes))
	if err := dec.Decode(out); err != nil {
		msg := fmt.Sprintf("malformed %s response", c.service)
		if resp.StatusCode >= 400 {
			msg = fmt.Sprintf("%s returned HTTP %d", c.service, resp.StatusCode)
		}
		return resp.StatusCode, &domain.APIError{
			Service:    c.service,
			StatusCode: resp.StatusCode,
			Message:    msg,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}

	return resp.StatusCode, nil
}

// transportError maps network failures into an APIError.
// The *url.Error wrapper is dropped because its URL carries the API key.
func (c *Client) transportError(err error) error {
	cause := err
	var ue *url.Error
	if errors.As(err, &ue) {
		cause = ue.Err
	}

	return &domain.APIError{
		Service: c.service,
		Message: fmt.Sprintf("%s request failed: %v", c.service, cause),
		Err:     cause,
	}
}

// Param is one query parameter; order is preserved on the wire.
type Param struct {
	Key   string
	Value string
}

type Params []Param

// Encode percent-encodes params, writing spaces as %20 rather than "+".
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(kv.Key))
		b.WriteByte('=')
		b.WriteString(escape(kv.Value))
	}
	return b.String()
}

// QueryEscape already escapes a literal "+" as %2B, so every remaining "+" is a space.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
