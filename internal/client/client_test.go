package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/nasa/pkg/nasa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Apod(t *testing.T) {
	payload := map[string]interface{}{
		"title":      "Pillars of Creation",
		"media_type": "image",
		"url":        "https://apod.nasa.gov/apod/image/pillars.jpg",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/planetary/apod", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, server.URL)

	got, err := c.Apod(context.Background())
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestClient_Insight(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/insight_weather/", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("feedtype"))
		assert.Equal(t, "1.0", r.URL.Query().Get("ver"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"sol_keys": []string{"681"}})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, server.URL)

	weather, err := c.Insight(context.Background(), "1.0")
	require.NoError(t, err)
	assert.Contains(t, weather, "sol_keys")
}

func TestClient_Insight_NonNumericVersion(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, server.URL)

	_, err := c.Insight(context.Background(), "x")
	require.Error(t, err)
	assert.True(t, nasa.IsValidation(err))
	assert.Equal(t, 0, requests, "validation must fail before any network call")
}

func TestClient_Techport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/techport/api/projects/12345", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"project": map[string]interface{}{"id": float64(12345), "title": "Starshade"},
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, server.URL)

	project, err := c.Techport(context.Background(), "12345")
	require.NoError(t, err)
	assert.Contains(t, project, "project")
}

func TestClient_Techport_NonNumericID(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, server.URL)

	_, err := c.Techport(context.Background(), "x")
	require.Error(t, err)

	validationErr := &nasa.ValidationError{}
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "projectID", validationErr.Field)
	assert.Equal(t, 0, requests, "validation must fail before any network call")
}

func TestClient_NonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, server.URL)

	_, err := c.Apod(context.Background())
	require.Error(t, err)
	assert.True(t, nasa.IsDecode(err))
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := newTestClient(t, server.URL, server.URL)

	_, err := c.Apod(context.Background())
	require.Error(t, err)
	assert.True(t, nasa.IsNetwork(err), "transport failure must surface as NetworkError, not a decode failure")
	assert.False(t, nasa.IsDecode(err))
}

func TestClient_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"code":    "OVER_RATE_LIMIT",
				"message": "API_KEY has exceeded the rate limit",
			},
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, server.URL)

	_, err := c.Apod(context.Background())
	require.Error(t, err)
	assert.True(t, nasa.IsRateLimited(err))
}

func TestClient_RawErrorPayloads(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"code": "OVER_RATE_LIMIT"},
		})
	}))
	defer server.Close()

	c, err := New(&nasa.Config{
		APIKey:           "test-key",
		APIEndpoint:      server.URL,
		ImagesEndpoint:   server.URL,
		RawErrorPayloads: true,
	})
	require.NoError(t, err)

	// Legacy behavior: the error payload comes back as an ordinary response.
	payload, err := c.Apod(context.Background())
	require.NoError(t, err)
	assert.Contains(t, payload, "error")
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, nasa.ErrConfigRequired)

	_, err = New(&nasa.Config{})
	require.ErrorIs(t, err, nasa.ErrAPIKeyRequired)
}
