// Package client contains the concrete implementation of nasa.Client.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/nasa/internal/http"
	"github.com/fivetwenty-io/nasa/pkg/nasa"
)

// Client implements the nasa.Client interface. It owns one transport per
// host: the general API transport attaches the key, the images transport
// does not.
type Client struct {
	api       *http.Client
	imagesAPI *http.Client
	logger    nasa.Logger

	// Namespace clients
	neo    *NeoClient
	earth  *EarthClient
	images *ImagesClient
}

// New creates a new NASA API client. Endpoint defaults and key validation
// are handled by the nasaclient package; config arrives here normalized.
func New(config *nasa.Config) (*Client, error) {
	if config == nil {
		return nil, nasa.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, nasa.ErrAPIKeyRequired
	}

	httpOpts := transportOptions(config)

	client := &Client{
		api:       http.NewClient(config.APIEndpoint, config.APIKey, httpOpts...),
		imagesAPI: http.NewClient(config.ImagesEndpoint, "", httpOpts...),
		logger:    config.Logger,
	}

	client.neo = NewNeoClient(client.api)
	client.earth = NewEarthClient(client.api)
	client.images = NewImagesClient(client.imagesAPI)

	return client, nil
}

// transportOptions builds HTTP client options from config.
func transportOptions(config *nasa.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.RawErrorPayloads {
		httpOpts = append(httpOpts, http.WithRawErrors(true))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return httpOpts
}

// Apod implements nasa.Client.Apod.
func (c *Client) Apod(ctx context.Context) (nasa.Payload, error) {
	resp, err := c.api.Get(ctx, "/planetary/apod", nil)
	if err != nil {
		return nil, fmt.Errorf("getting picture of the day: %w", err)
	}

	return decodePayload(resp.Body)
}

// Insight implements nasa.Client.Insight.
func (c *Client) Insight(ctx context.Context, version string) (nasa.Payload, error) {
	if _, err := strconv.ParseFloat(version, 64); err != nil {
		return nil, &nasa.ValidationError{
			Field:  "version",
			Value:  version,
			Reason: "must be numeric",
		}
	}

	query := url.Values{
		"feedtype": []string{"json"},
		"ver":      []string{version},
	}

	resp, err := c.api.Get(ctx, "/insight_weather/", query)
	if err != nil {
		return nil, fmt.Errorf("getting InSight weather: %w", err)
	}

	return decodePayload(resp.Body)
}

// Techport implements nasa.Client.Techport.
func (c *Client) Techport(ctx context.Context, projectID string) (nasa.Payload, error) {
	if _, err := strconv.Atoi(projectID); err != nil {
		return nil, &nasa.ValidationError{
			Field:  "projectID",
			Value:  projectID,
			Reason: "must be numeric",
		}
	}

	resp, err := c.api.Get(ctx, "/techport/api/projects/"+url.PathEscape(projectID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting TechPort project: %w", err)
	}

	return decodePayload(resp.Body)
}

// Neo implements nasa.Client.Neo.
func (c *Client) Neo() nasa.NeoClient {
	return c.neo
}

// Earth implements nasa.Client.Earth.
func (c *Client) Earth() nasa.EarthClient {
	return c.earth
}

// Images implements nasa.Client.Images.
func (c *Client) Images() nasa.ImagesClient {
	return c.images
}

// decodePayload decodes a response body, distinguishing a malformed body
// from the transport failures already handled upstream.
func decodePayload(body []byte) (nasa.Payload, error) {
	var payload nasa.Payload

	err := json.Unmarshal(body, &payload)
	if err != nil {
		return nil, &nasa.DecodeError{Err: err}
	}

	return payload, nil
}

// formatCoordinate renders lon/lat/dim values without trailing zeros so the
// built query is a pure function of the inputs.
func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
