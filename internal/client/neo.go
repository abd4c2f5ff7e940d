package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/nasa/internal/http"
	"github.com/fivetwenty-io/nasa/pkg/nasa"
)

// NeoClient implements nasa.NeoClient against the Near Earth Object Web
// Service. It shares the enclosing client's keyed transport.
type NeoClient struct {
	httpClient *http.Client
}

// NewNeoClient creates a new NeoWs client.
func NewNeoClient(httpClient *http.Client) *NeoClient {
	return &NeoClient{
		httpClient: httpClient,
	}
}

// Feed implements nasa.NeoClient.Feed. Dates are opaque strings; the service
// reports its own error for malformed values.
func (c *NeoClient) Feed(ctx context.Context, startDate, endDate string) (nasa.Payload, error) {
	query := url.Values{
		"start_date": []string{startDate},
		"end_date":   []string{endDate},
	}

	resp, err := c.httpClient.Get(ctx, "/neo/rest/v1/feed", query)
	if err != nil {
		return nil, fmt.Errorf("getting asteroid feed: %w", err)
	}

	return decodePayload(resp.Body)
}

// Lookup implements nasa.NeoClient.Lookup.
func (c *NeoClient) Lookup(ctx context.Context, asteroidID string) (nasa.Payload, error) {
	resp, err := c.httpClient.Get(ctx, "/neo/rest/v1/neo/"+url.PathEscape(asteroidID), nil)
	if err != nil {
		return nil, fmt.Errorf("looking up asteroid: %w", err)
	}

	return decodePayload(resp.Body)
}

// Browse implements nasa.NeoClient.Browse.
func (c *NeoClient) Browse(ctx context.Context) (nasa.Payload, error) {
	resp, err := c.httpClient.Get(ctx, "/neo/rest/v1/neo/browse", nil)
	if err != nil {
		return nil, fmt.Errorf("browsing asteroids: %w", err)
	}

	return decodePayload(resp.Body)
}
