// Package nasaclient constructs concrete NASA API clients.
//
// New wires the two HTTP transports (the keyed general host and the public
// image library host) behind the nasa.Client interface:
//
//	cli, err := nasaclient.New(&nasa.Config{APIKey: os.Getenv("NASA_API_KEY")})
//
// NewWithKey covers the common case of default hosts and settings, and
// NewDemo builds a client on the shared, heavily rate-limited DEMO_KEY.
package nasaclient
