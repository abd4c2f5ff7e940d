package nasa

import (
	"context"
	"errors"
	"time"
)

// DemoKey is the rate-limited demonstration key accepted by api.nasa.gov.
// It is good enough for examples and smoke tests, not for real workloads.
const DemoKey = "DEMO_KEY"

// Static errors for err113 compliance.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrAPIKeyRequired = errors.New("API key is required")
)

// Payload is a decoded JSON response returned verbatim from a NASA API.
// The library does not define response schemas; callers pick out the fields
// they need.
type Payload = map[string]interface{}

// Client is the entry point for all NASA API operations. Root-level methods
// call the general API host directly; the namespace accessors return
// sub-clients that share this client's transports.
type Client interface {
	// Apod fetches the Astronomy Picture of the Day.
	Apod(ctx context.Context) (Payload, error)

	// Insight fetches InSight Mars weather data. version must be a numeric
	// string (e.g. "1.0"); a non-numeric value fails with *ValidationError
	// before any request is made.
	Insight(ctx context.Context, version string) (Payload, error)

	// Techport looks up a TechPort project. projectID must be a numeric
	// string; a non-numeric value fails with *ValidationError before any
	// request is made.
	Techport(ctx context.Context, projectID string) (Payload, error)

	// Neo returns the Near Earth Object Web Service sub-client.
	Neo() NeoClient

	// Earth returns the Earth imagery sub-client.
	Earth() EarthClient

	// Images returns the image and video library sub-client. Requests from
	// this sub-client go to a separate public host and carry no API key.
	Images() ImagesClient
}

// NeoClient exposes the Near Earth Object Web Service (NeoWs).
type NeoClient interface {
	// Feed lists asteroids by closest approach date. Dates are passed
	// through as opaque YYYY-MM-DD strings without validation.
	Feed(ctx context.Context, startDate, endDate string) (Payload, error)

	// Lookup fetches a single asteroid by its NASA JPL SPK-ID.
	Lookup(ctx context.Context, asteroidID string) (Payload, error)

	// Browse pages through the overall asteroid data set.
	Browse(ctx context.Context) (Payload, error)
}

// EarthClient exposes Landsat 8 earth imagery endpoints.
type EarthClient interface {
	// Imagery fetches the image closest to the given point and date.
	Imagery(ctx context.Context, lon, lat float64, date string) (Payload, error)

	// Assets lists available imagery for the given point, date, and
	// width/height in degrees.
	Assets(ctx context.Context, lon, lat float64, date string, dim float64) (Payload, error)
}

// ImagesClient exposes the NASA image and video library on
// images-api.nasa.gov. This host is public and never receives the API key.
type ImagesClient interface {
	// Search performs a free-text search over the media library.
	Search(ctx context.Context, query string) (Payload, error)

	// Asset fetches the media asset manifest for a NASA media ID.
	Asset(ctx context.Context, nasaID string) (Payload, error)

	// Metadata fetches the metadata location for a NASA media ID.
	Metadata(ctx context.Context, nasaID string) (Payload, error)

	// Captions fetches the caption file location for a NASA video ID.
	Captions(ctx context.Context, nasaID string) (Payload, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a nasa.Client.
//
// APIKey is the only required field; nasaclient.New validates it eagerly and
// fails with ErrAPIKeyRequired when it is empty. Everything else has a
// sensible default.
//
// Retries are disabled by default: the library issues exactly one request per
// call. Set RetryMax to opt in to retrying transient failures (>=500, 429,
// connection errors).
type Config struct {
	// APIKey is appended as the api_key query parameter on every request to
	// the general API host. Keys are issued at https://api.nasa.gov.
	APIKey string

	// APIEndpoint overrides the general API host. Defaults to
	// "https://api.nasa.gov". nasaclient.New normalizes this value by
	// trimming a trailing slash and adding "https://" if no scheme is
	// present.
	APIEndpoint string

	// ImagesEndpoint overrides the image/video library host. Defaults to
	// "https://images-api.nasa.gov". Normalized the same way as APIEndpoint.
	ImagesEndpoint string

	// UserAgent overrides the default User-Agent header sent by the client.
	UserAgent string

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool

	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger

	// RetryMax: maximum number of retries for transient failures. Zero
	// leaves retries off.
	RetryMax int

	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration

	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// RawErrorPayloads preserves the legacy behavior of returning API error
	// bodies as ordinary payloads instead of surfacing *APIError for
	// HTTP 4xx/5xx responses.
	RawErrorPayloads bool
}
