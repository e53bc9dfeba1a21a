package rest

import (
	"io"
	"time"

	// Packages
	trace "go.opentelemetry.io/otel/trace"

	fuel "github.com/fueltools/go-fuel"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring the transport
type Opt func(*Client) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(doer Doer) Opt {
	return func(client *Client) error {
		if doer == nil {
			return fuel.ErrBadParameter.With("http client is required")
		}
		client.client = doer
		return nil
	}
}

// WithTimeout sets the request timeout for the default HTTP client
func WithTimeout(timeout time.Duration) Opt {
	return func(client *Client) error {
		if timeout <= 0 {
			return fuel.ErrBadParameter.Withf("timeout %v", timeout)
		}
		client.timeout = timeout
		return nil
	}
}

// WithTrace writes a line for each request and response to w. When
// verbose is set the response body is written as well.
func WithTrace(w io.Writer, verbose bool) Opt {
	return func(client *Client) error {
		client.trace = w
		client.verbose = verbose
		return nil
	}
}

// WithTracer sets the tracer used to create a span for each request
func WithTracer(tracer trace.Tracer) Opt {
	return func(client *Client) error {
		client.tracer = tracer
		return nil
	}
}
