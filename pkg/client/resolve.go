package client

import (
	"regexp"

	// Packages
	zap "go.uber.org/zap"

	fuel "github.com/fueltools/go-fuel"
	schema "github.com/fueltools/go-fuel/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// The two accepted grammars for a model reference. A versioned URL
// carries the API version segment after the host, a unique name does
// not. The versioned form is tried first.
var (
	modelURLRe        = regexp.MustCompile(`^([A-Za-z0-9.+-]+)://([^/\s]+)/+([^/\s]+)/+([^/\s]+)/+models/+([^/]+)/*$`)
	modelUniqueNameRe = regexp.MustCompile(`^([A-Za-z0-9.+-]+)://([^/\s]+)/+([^/\s]+)/+models/+([^/]+)/*$`)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ParseModelURL resolves a model URL or unique name into the server
// it lives on and the model identifier. The parsed server is
// reconciled against the configured servers: a configured server with
// the same URL is adopted wholesale, recovering its local name and
// version. The configured version takes precedence over a version
// given in the URL.
func (client *Client) ParseModelURL(rawURL string) (schema.ServerConfig, schema.ModelIdentifier, error) {
	var scheme, host, version, owner, name string

	// Versioned URL first, then unique name
	if match := modelURLRe.FindStringSubmatch(rawURL); match != nil {
		scheme, host, version, owner, name = match[1], match[2], match[3], match[4], match[5]
	} else if match := modelUniqueNameRe.FindStringSubmatch(rawURL); match != nil {
		scheme, host, owner, name = match[1], match[2], match[3], match[4]
	} else {
		return schema.ServerConfig{}, schema.ModelIdentifier{}, fuel.ErrParse.Withf("%q", rawURL)
	}

	// Recover the local name and version from the configuration
	server := schema.ServerConfig{URL: scheme + "://" + host, Version: version}
	for _, configured := range client.config.Servers {
		if configured.SameServer(server) {
			if version != "" && configured.Version != version {
				client.log.Warn("requested API version differs from the server configuration, using the configured version",
					zap.String("requested", version),
					zap.String("configured", configured.Version),
					zap.String("server", configured.URL))
			}
			server = configured
			break
		}
	}
	if !server.Complete() {
		client.log.Warn("server configuration is incomplete", zap.String("server", server.String()))
	}

	// Return the server and the model identifier
	return server, schema.ModelIdentifier{Owner: owner, Name: name, Server: server}, nil
}
