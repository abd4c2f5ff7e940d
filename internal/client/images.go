package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/nasa/internal/http"
	"github.com/fivetwenty-io/nasa/pkg/nasa"
)

// ImagesClient implements nasa.ImagesClient against the image and video
// library host. Its transport carries no API key; the host is public.
type ImagesClient struct {
	httpClient *http.Client
}

// NewImagesClient creates a new image library client.
func NewImagesClient(httpClient *http.Client) *ImagesClient {
	return &ImagesClient{
		httpClient: httpClient,
	}
}

// Search implements nasa.ImagesClient.Search.
func (c *ImagesClient) Search(ctx context.Context, query string) (nasa.Payload, error) {
	params := url.Values{
		"q": []string{query},
	}

	resp, err := c.httpClient.Get(ctx, "/search", params)
	if err != nil {
		return nil, fmt.Errorf("searching media library: %w", err)
	}

	return decodePayload(resp.Body)
}

// Asset implements nasa.ImagesClient.Asset.
func (c *ImagesClient) Asset(ctx context.Context, nasaID string) (nasa.Payload, error) {
	resp, err := c.httpClient.Get(ctx, "/asset/"+url.PathEscape(nasaID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting media asset: %w", err)
	}

	return decodePayload(resp.Body)
}

// Metadata implements nasa.ImagesClient.Metadata.
func (c *ImagesClient) Metadata(ctx context.Context, nasaID string) (nasa.Payload, error) {
	resp, err := c.httpClient.Get(ctx, "/metadata/"+url.PathEscape(nasaID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting media metadata: %w", err)
	}

	return decodePayload(resp.Body)
}

// Captions implements nasa.ImagesClient.Captions.
func (c *ImagesClient) Captions(ctx context.Context, nasaID string) (nasa.Payload, error) {
	resp, err := c.httpClient.Get(ctx, "/captions/"+url.PathEscape(nasaID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting media captions: %w", err)
	}

	return decodePayload(resp.Body)
}
