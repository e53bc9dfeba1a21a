/*
client is the high-level Fuel client. It resolves model URLs against
the configured servers, lists and searches models on a server, and
downloads model content into the local cache.
*/
package client

import (
	// Packages
	zap "go.uber.org/zap"

	fuel "github.com/fueltools/go-fuel"
	cache "github.com/fueltools/go-fuel/pkg/cache"
	config "github.com/fueltools/go-fuel/pkg/config"
	rest "github.com/fueltools/go-fuel/pkg/rest"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	config *config.Config
	rest   fuel.REST
	cache  fuel.Cache
	log    *zap.Logger
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client for the servers named in the configuration. A
// default transport, and a filesystem cache under the configured
// cache location, are used unless overridden by options.
func New(cfg *config.Config, opts ...Opt) (*Client, error) {
	if cfg == nil {
		return nil, fuel.ErrBadParameter.With("configuration is required")
	}

	client := new(Client)
	client.config = cfg
	client.log = zap.NewNop()

	// Apply options
	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	// Defaults
	if client.rest == nil {
		transport, err := rest.New()
		if err != nil {
			return nil, err
		}
		client.rest = transport
	}
	if client.cache == nil {
		store, err := cache.New(cfg.CacheLocation(), cache.WithLogger(client.log))
		if err != nil {
			return nil, err
		}
		client.cache = store
	}

	// Return success
	return client, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Config returns the client configuration.
func (client *Client) Config() *config.Config {
	return client.config
}
