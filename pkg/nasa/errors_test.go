package nasa_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fivetwenty-io/nasa/pkg/nasa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := &nasa.ValidationError{Field: "version", Value: "x", Reason: "must be numeric"}
	assert.Equal(t, `invalid version "x": must be numeric`, err.Error())
	assert.True(t, nasa.IsValidation(err))
	assert.True(t, nasa.IsValidation(fmt.Errorf("calling insight: %w", err)))
	assert.False(t, nasa.IsNetwork(err))
}

func TestNetworkError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := &nasa.NetworkError{URL: "https://api.nasa.gov/planetary/apod", Err: cause}

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, nasa.IsNetwork(err))
	assert.False(t, nasa.IsDecode(err))
}

func TestDecodeError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("invalid character '<'")
	err := &nasa.DecodeError{Err: cause}

	require.ErrorIs(t, err, cause)
	assert.True(t, nasa.IsDecode(err))
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *nasa.APIError
		want string
	}{
		{
			name: "code and message",
			err:  &nasa.APIError{StatusCode: 403, Code: "API_KEY_INVALID", Message: "invalid key"},
			want: "API_KEY_INVALID: invalid key (status: 403)",
		},
		{
			name: "message only",
			err:  &nasa.APIError{StatusCode: 400, Message: "bad date"},
			want: "bad date (status: 400)",
		},
		{
			name: "bare status",
			err:  &nasa.APIError{StatusCode: 502},
			want: "API error (status: 502)",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, testCase.err.Error())
		})
	}
}

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	t.Run("nested shape", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"error":{"code":"OVER_RATE_LIMIT","message":"rate limit exceeded"}}`)
		err := nasa.ParseAPIError(429, body)

		assert.Equal(t, 429, err.StatusCode)
		assert.Equal(t, "OVER_RATE_LIMIT", err.Code)
		assert.Equal(t, "rate limit exceeded", err.Message)
		assert.True(t, nasa.IsRateLimited(err))
	})

	t.Run("flat shape", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"code":400,"error_message":"invalid date format","http_error":"BAD_REQUEST"}`)
		err := nasa.ParseAPIError(400, body)

		assert.Equal(t, "400", err.Code)
		assert.Equal(t, "invalid date format", err.Message)
	})

	t.Run("unparseable body keeps the status", func(t *testing.T) {
		t.Parallel()

		body := []byte("<html>gateway timeout</html>")
		err := nasa.ParseAPIError(504, body)

		assert.Equal(t, 504, err.StatusCode)
		assert.Empty(t, err.Message)
		assert.Equal(t, body, err.Body)
	})
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	notFound := &nasa.APIError{StatusCode: 404}
	assert.True(t, nasa.IsNotFound(notFound))
	assert.True(t, nasa.IsNotFound(fmt.Errorf("looking up asteroid: %w", notFound)))
	assert.False(t, nasa.IsNotFound(&nasa.APIError{StatusCode: 403}))
	assert.False(t, nasa.IsNotFound(errors.New("not found")))
}

func TestIsAPIError(t *testing.T) {
	t.Parallel()

	assert.True(t, nasa.IsAPIError(&nasa.APIError{StatusCode: 500}))
	assert.False(t, nasa.IsAPIError(&nasa.NetworkError{Err: errors.New("dial tcp")}))
}
