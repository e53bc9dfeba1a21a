package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"path/filepath"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"

	fuel "github.com/fueltools/go-fuel"
	schema "github.com/fueltools/go-fuel/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// DOWNLOAD TESTS

// Test DownloadModel fetches the archive and saves it into the cache
func Test_download_001(t *testing.T) {
	assert := assert.New(t)
	transport := &fakeREST{
		handler: func(path string, query url.Values) (fuel.Response, error) {
			return fuel.Response{StatusCode: http.StatusOK, Data: []byte("zipdata")}, nil
		},
	}
	store := &fakeCache{}
	c, _ := newTestClient(t, testConfig(), transport, store)
	id := schema.ModelIdentifier{Owner: "alice", Name: "Beer"}

	assert.NoError(c.DownloadModel(context.Background(), c.Config().Servers[0], id))
	assert.Equal("alice/models/Beer.zip", transport.lastPath)
	assert.Equal(1, store.saves)
	assert.Equal(id, store.lastID)
	assert.Equal("zipdata", string(store.lastData))
	assert.True(store.lastArchive)
}

// Test a missing archive is a fetch failure and nothing is saved
func Test_download_002(t *testing.T) {
	assert := assert.New(t)
	store := &fakeCache{}
	c, _ := newTestClient(t, testConfig(), &fakeREST{}, store)

	err := c.DownloadModel(context.Background(), c.Config().Servers[0], schema.ModelIdentifier{Owner: "alice", Name: "Beer"})
	assert.ErrorIs(err, fuel.ErrFetch)
	assert.Zero(store.saves)
}

// Test a transport failure is a fetch failure
func Test_download_003(t *testing.T) {
	assert := assert.New(t)
	transport := &fakeREST{
		handler: func(path string, query url.Values) (fuel.Response, error) {
			return fuel.Response{}, errors.New("connection refused")
		},
	}
	store := &fakeCache{}
	c, _ := newTestClient(t, testConfig(), transport, store)

	err := c.DownloadModel(context.Background(), c.Config().Servers[0], schema.ModelIdentifier{Owner: "alice", Name: "Beer"})
	assert.ErrorIs(err, fuel.ErrFetch)
	assert.Zero(store.saves)
}

// Test a failure to save is reported as a fetch failure
func Test_download_004(t *testing.T) {
	assert := assert.New(t)
	transport := &fakeREST{
		handler: func(path string, query url.Values) (fuel.Response, error) {
			return fuel.Response{StatusCode: http.StatusOK, Data: []byte("zipdata")}, nil
		},
	}
	store := &fakeCache{saveErr: errors.New("disk full")}
	c, _ := newTestClient(t, testConfig(), transport, store)

	err := c.DownloadModel(context.Background(), c.Config().Servers[0], schema.ModelIdentifier{Owner: "alice", Name: "Beer"})
	assert.ErrorIs(err, fuel.ErrFetch)
	assert.Equal(1, store.saves)
}

///////////////////////////////////////////////////////////////////////////////
// URL DOWNLOAD TESTS

// Test DownloadModelURL resolves, downloads and returns the cache path
func Test_download_005(t *testing.T) {
	assert := assert.New(t)
	transport := &fakeREST{
		handler: func(path string, query url.Values) (fuel.Response, error) {
			return fuel.Response{StatusCode: http.StatusOK, Data: []byte("zipdata")}, nil
		},
	}
	store := &fakeCache{}
	c, _ := newTestClient(t, testConfig(), transport, store)

	path, err := c.DownloadModelURL(context.Background(), "https://api.fuel.io/1.0/alice/models/My Model")
	assert.NoError(err)
	assert.Equal(filepath.Join("/var/cache/fuel", "models", "alice", "my_model"), path)
	assert.Equal("alice/models/My Model.zip", transport.lastPath)
	assert.Equal("My Model", store.lastID.Name)
	assert.True(store.lastArchive)
}

// Test an unparseable reference is a fetch failure with no request made
func Test_download_006(t *testing.T) {
	assert := assert.New(t)
	transport := &fakeREST{}
	c, _ := newTestClient(t, testConfig(), transport, &fakeCache{})

	_, err := c.DownloadModelURL(context.Background(), "not a model reference")
	assert.ErrorIs(err, fuel.ErrFetch)
	assert.Zero(transport.calls)
}

// Test the returned path preserves owner case and normalizes the name
func Test_download_007(t *testing.T) {
	assert := assert.New(t)
	transport := &fakeREST{
		handler: func(path string, query url.Values) (fuel.Response, error) {
			return fuel.Response{StatusCode: http.StatusOK, Data: []byte("zipdata")}, nil
		},
	}
	store := &fakeCache{}
	c, _ := newTestClient(t, testConfig(), transport, store)

	path, err := c.DownloadModelURL(context.Background(), "https://api.fuel.io/1.0/Caguero/models/Table Lamp")
	assert.NoError(err)
	assert.Equal(filepath.Join("/var/cache/fuel", "models", "Caguero", "table_lamp"), path)
	assert.Equal("Caguero/models/Table Lamp.zip", transport.lastPath)
	assert.Equal("Caguero", store.lastID.Owner)
	assert.Equal("Table Lamp", store.lastID.Name)
}
