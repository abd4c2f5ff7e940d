package nasa

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports a caller-supplied argument that failed a shape
// check before any request was issued.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// NetworkError reports a failed transport call (DNS, connection refused,
// timeout). It wraps the root cause and is returned instead of ever handing a
// nil body to the JSON decoder.
type NetworkError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response body: %v", e.Err)
}

// Unwrap returns the underlying json error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// APIError represents an error response from a NASA API. The general host
// reports errors in two shapes; both are folded into Code/Message on a best
// effort basis, and the raw body is kept for callers that want more.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		if e.Code != "" {
			return fmt.Sprintf("%s: %s (status: %d)", e.Code, e.Message, e.StatusCode)
		}

		return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
	}

	return fmt.Sprintf("API error (status: %d)", e.StatusCode)
}

// Error codes reported by api.nasa.gov.
const (
	ErrorCodeAPIKeyMissing = "API_KEY_MISSING"
	ErrorCodeAPIKeyInvalid = "API_KEY_INVALID"
	ErrorCodeOverRateLimit = "OVER_RATE_LIMIT"
)

// ParseAPIError builds an APIError from a non-2xx response body. The general
// host wraps errors either as {"error": {"code", "message"}} or as a flat
// {"code", "error_message"} object depending on the service.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       body,
	}

	var nested struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &nested); err == nil && nested.Error.Message != "" {
		apiErr.Code = nested.Error.Code
		apiErr.Message = nested.Error.Message

		return apiErr
	}

	var flat struct {
		Code         json.Number `json:"code"`
		ErrorMessage string      `json:"error_message"`
	}

	if err := json.Unmarshal(body, &flat); err == nil && flat.ErrorMessage != "" {
		apiErr.Code = flat.Code.String()
		apiErr.Message = flat.ErrorMessage
	}

	return apiErr
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	validationErr := &ValidationError{}

	return errors.As(err, &validationErr)
}

// IsNetwork checks if the error is a transport failure.
func IsNetwork(err error) bool {
	networkErr := &NetworkError{}

	return errors.As(err, &networkErr)
}

// IsDecode checks if the error is a JSON decode failure.
func IsDecode(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}

// IsAPIError checks if the error is a remote API error.
func IsAPIError(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// IsNotFound checks if the error is a remote not-found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsRateLimited checks if the error reports an exhausted API key quota.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.Code == ErrorCodeOverRateLimit
	}

	return false
}
