// Package nasa provides types, interfaces, and helpers for working with the
// NASA Open APIs (https://api.nasa.gov).
//
// # Overview
//
// The nasa package defines the Client interface along with the namespace
// sub-clients (NeoClient, EarthClient, ImagesClient) and the error taxonomy
// shared by every endpoint method. A concrete implementation is provided by
// the nasaclient package, which wires configuration and the two HTTP
// transports. Most consumers should import nasaclient to construct a client
// and then call the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/nasa/pkg/nasaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := nasaclient.NewWithKey("my-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  apod, err := cli.Apod(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = apod["url"]
//	}
//
// # Responses
//
// Every endpoint method returns the decoded JSON body verbatim as a Payload
// (map[string]interface{}). The library deliberately defines no response
// schemas and performs no transformation beyond decoding.
//
// # Hosts and authentication
//
// Two hosts are involved. The general API host (api.nasa.gov) authenticates
// with the api_key query parameter attached by the transport on every call.
// The image/video library host (images-api.nasa.gov), reached through
// Client.Images, is public and never receives the key.
//
// # Errors
//
// Failures are typed: *ValidationError for bad arguments (rejected before any
// network call), *NetworkError for transport failures, *DecodeError for
// non-JSON bodies, and *APIError for HTTP 4xx/5xx responses. Helpers such as
// IsNetwork, IsNotFound, and IsRateLimited make it easy to branch on common
// cases. Config.RawErrorPayloads restores the legacy behavior of returning
// error payloads as ordinary responses.
package nasa
