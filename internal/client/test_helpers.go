package client

import (
	"testing"

	"github.com/fivetwenty-io/nasa/pkg/nasa"
)

// newTestClient builds a Client with both hosts pointed at test servers.
// imagesURL may equal apiURL when the test never touches the images host.
func newTestClient(t *testing.T, apiURL, imagesURL string) *Client {
	t.Helper()

	c, err := New(&nasa.Config{
		APIKey:         "test-key",
		APIEndpoint:    apiURL,
		ImagesEndpoint: imagesURL,
	})
	if err != nil {
		t.Fatalf("creating test client: %v", err)
	}

	return c
}
