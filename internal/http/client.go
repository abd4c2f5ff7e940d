// Package http implements the HTTP transport shared by every endpoint
// method: one request-building and response-handling routine, parameterized
// by host and by whether the API key is attached.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/nasa/internal/constants"
	"github.com/fivetwenty-io/nasa/pkg/nasa"
	"github.com/hashicorp/go-retryablehttp"
)

const defaultUserAgent = "nasa-go-client/1.0"

// Client is an HTTP client bound to one base URL. A non-empty apiKey is
// appended as the api_key query parameter on every request; the images host
// uses an empty key.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *retryablehttp.Client
	logger     nasa.Logger
	debug      bool
	userAgent  string
	rawErrors  bool
}

// Request represents an outbound API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
}

// Response represents an API response with the body fully read.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger nasa.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging. A logger must also be set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries for transient failures (>=500, 429, and
// connection errors). Retries are off unless this option is applied.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithRawErrors disables surfacing HTTP 4xx/5xx responses as *nasa.APIError.
// The body is handed back to the caller as if the request had succeeded.
func WithRawErrors(raw bool) Option {
	return func(c *Client) {
		c.rawErrors = raw
	}
}

// NewClient creates a new HTTP client for the given host. Pass an empty
// apiKey for hosts that do not require authentication.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Hand back the final response even when the retry policy gives up, so a
	// 5xx surfaces as *nasa.APIError rather than a transport failure.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: retryClient,
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request and returns the response with the body read. The
// transport call failing yields *nasa.NetworkError; a 4xx/5xx status yields
// the response plus *nasa.APIError unless raw errors are enabled.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.buildURL(req)

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": method,
			"url":    redactKey(fullURL),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &nasa.NetworkError{URL: redactKey(fullURL), Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &nasa.NetworkError{URL: redactKey(fullURL), Err: err}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    redactKey(fullURL),
		})
	}

	if httpResp.StatusCode >= http.StatusBadRequest && !c.rawErrors {
		return resp, nasa.ParseAPIError(httpResp.StatusCode, body)
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// buildURL joins the base URL, path, and query, attaching the API key last so
// the same inputs always produce the same outbound URL.
func (c *Client) buildURL(req *Request) string {
	fullURL := c.baseURL + req.Path

	query := url.Values{}
	for key, values := range req.Query {
		query[key] = values
	}

	if c.apiKey != "" {
		query.Set("api_key", c.apiKey)
	}

	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	return fullURL
}

// redactKey masks the api_key query parameter in URLs destined for logs and
// error messages.
func redactKey(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	query := parsed.Query()
	if query.Get("api_key") == "" {
		return rawURL
	}

	query.Set("api_key", constants.MaskedSecret)
	parsed.RawQuery = query.Encode()

	return parsed.String()
}
