/*
fuel is a client library for remote model hosting services. A service
stores versioned simulation assets ("models") owned by named users, and
exposes them over a REST interface. This package defines the contracts
between the high-level client, the transport and the local cache. The
implementations live in the pkg directory:

  - pkg/client is the high-level client which resolves model URLs,
    lists, searches and downloads models
  - pkg/rest is the HTTP transport
  - pkg/cache is the local filesystem cache
  - pkg/config loads server and cache configuration
  - pkg/schema defines the wire and identifier types
*/
package fuel

import (
	"context"
	"net/url"

	// Packages
	schema "github.com/fueltools/go-fuel/pkg/schema"
)

// Response is the raw result of a REST request. The status code is
// reported as received so that callers can make policy decisions
// (retry, fall back to cache) which the transport has no view of.
type Response struct {
	StatusCode int
	Data       []byte
}

// REST makes requests against a remote service endpoint. The transport
// joins the server URL, the API version and the request path, and
// returns the response body without interpreting it.
type REST interface {
	// Perform a request against a server and return the raw response.
	// An error is returned for transport failures only, never for
	// HTTP-level status codes.
	Request(ctx context.Context, method, serverURL, version, path string, query url.Values, headers map[string]string, body []byte) (Response, error)
}

// Cache stores downloaded models on the local filesystem, keyed by
// owner and normalized model name.
type Cache interface {
	// Return all models in the cache
	AllModels() []schema.ModelIdentifier

	// Return cached models matching the non-empty fields of the
	// partial identifier
	MatchingModels(partial schema.ModelIdentifier) []schema.ModelIdentifier

	// Save model data in the cache. When archive is set the data is
	// a zip archive and is unpacked into the model directory.
	SaveModel(id schema.ModelIdentifier, data []byte, archive bool) error
}
