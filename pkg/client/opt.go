package client

import (
	// Packages
	zap "go.uber.org/zap"

	fuel "github.com/fueltools/go-fuel"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring the client
type Opt func(*Client) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithREST sets the transport used for server requests
func WithREST(transport fuel.REST) Opt {
	return func(client *Client) error {
		if transport == nil {
			return fuel.ErrBadParameter.With("transport is required")
		}
		client.rest = transport
		return nil
	}
}

// WithCache sets the local model cache
func WithCache(store fuel.Cache) Opt {
	return func(client *Client) error {
		if store == nil {
			return fuel.ErrBadParameter.With("cache is required")
		}
		client.cache = store
		return nil
	}
}

// WithLogger sets the logger for warnings and diagnostics
func WithLogger(log *zap.Logger) Opt {
	return func(client *Client) error {
		if log == nil {
			return fuel.ErrBadParameter.With("logger is required")
		}
		client.log = log
		return nil
	}
}
