package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// CorrelationIDHeader is the HTTP header that carries the correlation id of
// a request, both inbound and outbound.
const CorrelationIDHeader = "X-Correlation-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 5*time.Second)
//	resp, err := client.WithCorrelationID("req-1").Get("/test")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL. A zero timeout
// leaves resty's default (no timeout) in place.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// WithCorrelationID returns a request that propagates correlationID to the
// server through [CorrelationIDHeader].
func (c *HTTPClient) WithCorrelationID(correlationID string) *resty.Request {
	return c.R().SetHeader(CorrelationIDHeader, correlationID)
}

// CheckHealth requests every path in order and fails on the first transport
// error or non-2xx answer. The requests share one correlation id so they can
// be found together in the server log.
func (c *HTTPClient) CheckHealth(ctx context.Context, correlationID string, paths ...string) error {
	for _, path := range paths {
		resp, err := c.WithCorrelationID(correlationID).SetContext(ctx).Get(path)
		if err != nil {
			return fmt.Errorf("error requesting %s: %w", path, err)
		}
		if !resp.IsSuccess() {
			return fmt.Errorf("%s answered %d: %s", path, resp.StatusCode(), resp.String())
		}
	}
	return nil
}
