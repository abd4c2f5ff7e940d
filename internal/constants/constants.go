package constants

import "time"

// Default hosts.
const (
	// DefaultAPIEndpoint is the general-purpose, key-authenticated API host.
	DefaultAPIEndpoint = "https://api.nasa.gov"

	// DefaultImagesEndpoint is the public image/video library host.
	DefaultImagesEndpoint = "https://images-api.nasa.gov"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits, applied only when a caller opts in to retries.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Output formatting.
const (
	// JSONIndentSize is the number of spaces for JSON and YAML indentation.
	JSONIndentSize = 2

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)
