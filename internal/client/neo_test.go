package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeoClient_Feed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/neo/rest/v1/feed", r.URL.Path)
		assert.Equal(t, "2022-01-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2022-01-02", r.URL.Query().Get("end_date"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"element_count": float64(7)})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, server.URL)

	feed, err := c.Neo().Feed(context.Background(), "2022-01-01", "2022-01-02")
	require.NoError(t, err)
	assert.Equal(t, float64(7), feed["element_count"])
}

func TestNeoClient_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/neo/rest/v1/neo/3542519", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":   "3542519",
			"name": "(2010 PK9)",
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, server.URL)

	asteroid, err := c.Neo().Lookup(context.Background(), "3542519")
	require.NoError(t, err)
	assert.Equal(t, "(2010 PK9)", asteroid["name"])
}

func TestNeoClient_Browse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/neo/rest/v1/neo/browse", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"near_earth_objects": []interface{}{},
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, server.URL)

	page, err := c.Neo().Browse(context.Background())
	require.NoError(t, err)
	assert.Contains(t, page, "near_earth_objects")
}

func TestNeoClient_Feed_Deterministic(t *testing.T) {
	var paths []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.String())

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, server.URL)

	_, err := c.Neo().Feed(context.Background(), "2022-01-01", "2022-01-02")
	require.NoError(t, err)
	_, err = c.Neo().Feed(context.Background(), "2022-01-01", "2022-01-02")
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, paths[0], paths[1], "same inputs must build the identical outbound URL")
}
