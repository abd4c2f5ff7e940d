package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/nasa/internal/http"
	"github.com/fivetwenty-io/nasa/pkg/nasa"
)

// EarthClient implements nasa.EarthClient against the Landsat 8 imagery
// endpoints.
type EarthClient struct {
	httpClient *http.Client
}

// NewEarthClient creates a new earth imagery client.
func NewEarthClient(httpClient *http.Client) *EarthClient {
	return &EarthClient{
		httpClient: httpClient,
	}
}

// Imagery implements nasa.EarthClient.Imagery.
func (c *EarthClient) Imagery(ctx context.Context, lon, lat float64, date string) (nasa.Payload, error) {
	query := url.Values{
		"lon":  []string{formatCoordinate(lon)},
		"lat":  []string{formatCoordinate(lat)},
		"date": []string{date},
	}

	resp, err := c.httpClient.Get(ctx, "/planetary/earth/imagery", query)
	if err != nil {
		return nil, fmt.Errorf("getting earth imagery: %w", err)
	}

	return decodePayload(resp.Body)
}

// Assets implements nasa.EarthClient.Assets.
func (c *EarthClient) Assets(ctx context.Context, lon, lat float64, date string, dim float64) (nasa.Payload, error) {
	query := url.Values{
		"lon":  []string{formatCoordinate(lon)},
		"lat":  []string{formatCoordinate(lat)},
		"date": []string{date},
		"dim":  []string{formatCoordinate(dim)},
	}

	resp, err := c.httpClient.Get(ctx, "/planetary/earth/assets", query)
	if err != nil {
		return nil, fmt.Errorf("getting earth assets: %w", err)
	}

	return decodePayload(resp.Body)
}
