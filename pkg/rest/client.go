/*
rest implements the HTTP transport for remote model hosting services.
Requests are addressed by server URL, API version and path. The raw
response body and status code are returned without interpretation, so
that callers can decide how to treat HTTP-level failures.
*/
package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	// Packages
	attribute "go.opentelemetry.io/otel/attribute"
	codes "go.opentelemetry.io/otel/codes"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"

	fuel "github.com/fueltools/go-fuel"
	version "github.com/fueltools/go-fuel/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Doer is the interface for issuing HTTP requests
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	client  Doer
	timeout time.Duration
	trace   io.Writer
	verbose bool
	tracer  trace.Tracer
}

var _ fuel.REST = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultTimeout = 30 * time.Second
	spanName       = "fuel.request"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new transport with the given options
func New(opts ...Opt) (*Client, error) {
	client := new(Client)
	client.timeout = defaultTimeout

	// Apply options
	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	// Defaults
	if client.client == nil {
		client.client = &http.Client{Timeout: client.timeout}
	}
	if client.tracer == nil {
		client.tracer = noop.NewTracerProvider().Tracer("")
	}

	// Return success
	return client, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Request performs an HTTP request against a server and returns the
// status code and raw body. An error is returned for failures below
// the HTTP layer only, never for the status code itself.
func (client *Client) Request(ctx context.Context, method, serverURL, version, path string, query url.Values, headers map[string]string, body []byte) (fuel.Response, error) {
	endpoint, err := requestURL(serverURL, version, path, query)
	if err != nil {
		return fuel.Response{}, err
	}

	// Span for the request
	ctx, span := client.tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", endpoint),
		))
	defer span.End()

	// Make the request
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fuel.Response{}, err
	}
	req.Header.Set("User-Agent", userAgent())
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	if client.trace != nil {
		fmt.Fprintln(client.trace, method, endpoint)
	}
	resp, err := client.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fuel.Response{}, err
	}
	defer resp.Body.Close()

	// Read the response
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fuel.Response{}, err
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if client.trace != nil {
		fmt.Fprintf(client.trace, "  %s (%d bytes)\n", resp.Status, len(data))
		if client.verbose && len(data) > 0 {
			client.trace.Write(data)
			fmt.Fprintln(client.trace)
		}
	}

	// Return the response, status code included
	return fuel.Response{StatusCode: resp.StatusCode, Data: data}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Join the server URL, API version and request path. An empty version
// is elided so the path attaches to the server root.
func requestURL(serverURL, apiVersion, p string, query url.Values) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fuel.ErrBadParameter.Withf("server url %q", serverURL)
	}
	u.Path = path.Join("/", u.Path, apiVersion, p)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

func userAgent() string {
	return "go-fuel/" + version.Version()
}
