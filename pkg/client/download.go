package client

import (
	"context"
	"net/http"
	"path/filepath"

	// Packages
	fuel "github.com/fueltools/go-fuel"
	schema "github.com/fueltools/go-fuel/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// DownloadModel fetches the model archive from a server and saves it
// into the local cache. A failure to save is reported the same way as
// a failed fetch, since either way the model is not available locally.
func (client *Client) DownloadModel(ctx context.Context, server schema.ServerConfig, id schema.ModelIdentifier) error {
	resp, err := client.rest.Request(ctx, http.MethodGet, server.URL, server.Version, modelPath(id)+".zip", nil, nil, nil)
	if err != nil {
		return fuel.ErrFetch.Withf("%v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fuel.ErrFetch.Withf("status %d", resp.StatusCode)
	}
	if err := client.cache.SaveModel(id, resp.Data, true); err != nil {
		return fuel.ErrFetch.Withf("%v", err)
	}

	// Return success
	return nil
}

// DownloadModelURL resolves a model URL or unique name and downloads
// the model into the local cache. On success it returns the local
// path the model is conventionally cached under. The path is derived
// from the identifier rather than reported by the cache, so it is a
// convention, not a guarantee.
func (client *Client) DownloadModelURL(ctx context.Context, rawURL string) (string, error) {
	server, id, err := client.ParseModelURL(rawURL)
	if err != nil {
		return "", fuel.ErrFetch.Withf("%v", err)
	}
	if err := client.DownloadModel(ctx, server, id); err != nil {
		return "", err
	}

	// Return the conventional cache path for the model
	return filepath.Join(client.config.CacheLocation(), "models", id.Owner, id.NormalizedName()), nil
}
