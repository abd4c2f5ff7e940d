// Package nasaclient provides the main entry point for creating NASA API clients
package nasaclient

import (
	"strings"

	"github.com/fivetwenty-io/nasa/internal/client"
	"github.com/fivetwenty-io/nasa/internal/constants"
	"github.com/fivetwenty-io/nasa/pkg/nasa"
)

// New creates a new NASA API client from a config.
//
// The API key is validated eagerly: an empty key fails here with
// nasa.ErrAPIKeyRequired rather than on the first request. Endpoints are
// normalized by trimming a trailing slash and adding "https://" when no
// scheme is present; empty endpoints fall back to the public hosts.
func New(config *nasa.Config) (nasa.Client, error) {
	if config == nil {
		return nil, nasa.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, nasa.ErrAPIKeyRequired
	}

	config.APIEndpoint = normalizeEndpoint(config.APIEndpoint, constants.DefaultAPIEndpoint)
	config.ImagesEndpoint = normalizeEndpoint(config.ImagesEndpoint, constants.DefaultImagesEndpoint)

	return client.New(config)
}

// NewWithKey creates a new client for the public hosts with default settings.
func NewWithKey(apiKey string) (nasa.Client, error) {
	return New(&nasa.Config{
		APIKey: apiKey,
	})
}

// NewDemo creates a client using the rate-limited DEMO_KEY. Useful for
// examples and experimentation only.
func NewDemo() (nasa.Client, error) {
	return NewWithKey(nasa.DemoKey)
}

// normalizeEndpoint applies the default and makes sure the endpoint carries a
// scheme and no trailing slash.
func normalizeEndpoint(endpoint, fallback string) string {
	if endpoint == "" {
		return fallback
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
