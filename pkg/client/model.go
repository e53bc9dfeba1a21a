package client

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strconv"

	// Packages
	zap "go.uber.org/zap"

	fuel "github.com/fueltools/go-fuel"
	schema "github.com/fueltools/go-fuel/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ModelDetails fetches the details of a single model from a server.
func (client *Client) ModelDetails(ctx context.Context, server schema.ServerConfig, id schema.ModelIdentifier) (schema.ModelIdentifier, error) {
	resp, err := client.rest.Request(ctx, http.MethodGet, server.URL, server.Version, modelPath(id), nil, nil, nil)
	if err != nil {
		return schema.ModelIdentifier{}, fuel.ErrFetch.Withf("%v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return schema.ModelIdentifier{}, fuel.ErrFetch.Withf("status %d", resp.StatusCode)
	}
	model, err := schema.ParseModel(resp.Data, server)
	if err != nil {
		return schema.ModelIdentifier{}, fuel.ErrFetch.Withf("%v", err)
	}

	// Return success
	return model, nil
}

// ListModels returns all models on a server, following the listing
// pages until the server reports no more. When the server cannot be
// reached at all the cached models are returned instead, so the
// caller always receives a usable listing. The fallback is logged as
// a warning and the result may be stale.
func (client *Client) ListModels(ctx context.Context, server schema.ServerConfig) []schema.ModelIdentifier {
	models, err := client.fetchModels(ctx, server, "models")
	if err != nil {
		client.log.Warn("failed to fetch models from server, returning cached models",
			zap.String("server", server.URL), zap.Error(err))
		return client.cache.AllModels()
	}
	return models
}

// FindModels returns the models matching an identifier. The cache is
// consulted first: when any cached model matches, it is returned
// without contacting the server. Only on a cache miss is the server
// queried, scoped to the owner and name.
func (client *Client) FindModels(ctx context.Context, server schema.ServerConfig, id schema.ModelIdentifier) ([]schema.ModelIdentifier, error) {
	if models := client.cache.MatchingModels(id); len(models) > 0 {
		return models, nil
	}
	client.log.Info("model not found in cache, attempting download",
		zap.String("model", id.UniqueName()))

	// Fetch from the server
	resp, err := client.rest.Request(ctx, http.MethodGet, server.URL, server.Version, modelPath(id), nil, nil, nil)
	if err != nil {
		return nil, fuel.ErrFetch.Withf("%v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fuel.ErrFetch.Withf("status %d", resp.StatusCode)
	}
	models, err := schema.ParseModels(resp.Data, server)
	if err != nil {
		return nil, fuel.ErrFetch.Withf("%v", err)
	}

	// Return success
	return models, nil
}

// UploadModel is not implemented. It fails without contacting the
// server and has no side effect.
func (client *Client) UploadModel(ctx context.Context, server schema.ServerConfig, modelDir string, id schema.ModelIdentifier) error {
	return fuel.ErrUpload.With("not implemented")
}

// DeleteModel is not implemented. It fails without contacting the
// server and has no side effect.
func (client *Client) DeleteModel(ctx context.Context, server schema.ServerConfig, id schema.ModelIdentifier) error {
	return fuel.ErrDelete.With("not implemented")
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Fetch models from a listing path, page by page. A failure on the
// first page is returned as an error. A failure or empty result on a
// later page ends the listing with the models fetched so far.
func (client *Client) fetchModels(ctx context.Context, server schema.ServerConfig, path string) ([]schema.ModelIdentifier, error) {
	var models []schema.ModelIdentifier
	for page := 1; ; page++ {
		query := url.Values{"page": []string{strconv.Itoa(page)}}
		resp, err := client.rest.Request(ctx, http.MethodGet, server.URL, server.Version, path, query, nil, nil)
		if err != nil {
			if page == 1 {
				return nil, fuel.ErrFetch.Withf("%v", err)
			}
			return models, nil
		}
		if resp.StatusCode != http.StatusOK {
			if page == 1 {
				return nil, fuel.ErrFetch.Withf("status %d", resp.StatusCode)
			}
			return models, nil
		}
		batch, err := schema.ParseModels(resp.Data, server)
		if err != nil {
			if page == 1 {
				return nil, fuel.ErrFetch.Withf("%v", err)
			}
			return models, nil
		}
		if len(batch) == 0 {
			return models, nil
		}
		models = append(models, batch...)
	}
}

// The request path for a model, {owner}/models/{name}.
func modelPath(id schema.ModelIdentifier) string {
	return path.Join(id.Owner, "models", id.Name)
}
