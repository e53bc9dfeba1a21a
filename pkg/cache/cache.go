/*
cache stores downloaded models on the local filesystem. Models are
laid out as {location}/models/{owner}/{name}, with the name lowercased
and spaces replaced by underscores. Each model directory holds the
fetched archive, its unpacked content and a model.json metadata file.
It is safe for concurrent use.
*/
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	// Packages
	zap "go.uber.org/zap"

	fuel "github.com/fueltools/go-fuel"
	schema "github.com/fueltools/go-fuel/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Cache struct {
	mu       sync.RWMutex
	location string
	log      *zap.Logger
}

var _ fuel.Cache = (*Cache)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	modelsDir     = "models"
	metadataFile  = "model.json"
	archiveFile   = "model.zip"
	stagingPrefix = ".staging-"
)

const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a cache rooted at location. The models directory is created
// when it does not exist.
func New(location string, opts ...Opt) (*Cache, error) {
	if location == "" {
		return nil, fuel.ErrBadParameter.With("cache location is required")
	}

	cache := new(Cache)
	cache.location = location
	cache.log = zap.NewNop()

	// Apply options
	for _, opt := range opts {
		if err := opt(cache); err != nil {
			return nil, err
		}
	}

	// Create the models directory
	if err := os.MkdirAll(filepath.Join(location, modelsDir), DirPerm); err != nil {
		return nil, fuel.ErrInternal.Withf("mkdir: %v", err)
	}

	// Return success
	return cache, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Location returns the directory the cache is rooted at.
func (cache *Cache) Location() string {
	return cache.location
}

// ModelPath returns the directory a model is cached under.
func (cache *Cache) ModelPath(id schema.ModelIdentifier) string {
	return filepath.Join(cache.location, modelsDir, id.Owner, id.NormalizedName())
}

// AllModels returns every model in the cache. Models without readable
// metadata are identified from their directory names alone.
func (cache *Cache) AllModels() []schema.ModelIdentifier {
	cache.mu.RLock()
	defer cache.mu.RUnlock()

	root := filepath.Join(cache.location, modelsDir)
	owners, err := os.ReadDir(root)
	if err != nil {
		cache.log.Debug("cache scan", zap.Error(err))
		return nil
	}

	var models []schema.ModelIdentifier
	for _, owner := range owners {
		if !owner.IsDir() {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(root, owner.Name()))
		if err != nil {
			cache.log.Debug("cache scan", zap.String("owner", owner.Name()), zap.Error(err))
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			models = append(models, cache.readModel(owner.Name(), entry.Name()))
		}
	}
	return models
}

// MatchingModels returns cached models matching the non-empty fields
// of the partial identifier. Owners and server URLs are compared
// exactly, names by their normalized form, so a lookup matches the
// same entries the cache path layout would collide on.
func (cache *Cache) MatchingModels(partial schema.ModelIdentifier) []schema.ModelIdentifier {
	var models []schema.ModelIdentifier
	for _, model := range cache.AllModels() {
		if matches(model, partial) {
			models = append(models, model)
		}
	}
	return models
}

// SaveModel writes model data into the cache. The data is stored as
// the model archive and, when archive is set, also unpacked into the
// model directory. The owner and the normalized name must each be a
// single path element, so an identifier can never address a path
// outside the cache root. Metadata is written last and a failed save
// removes a directory it created, so a model is never listed before
// its content is complete.
func (cache *Cache) SaveModel(id schema.ModelIdentifier, data []byte, archive bool) error {
	if id.Owner == "" || id.Name == "" {
		return fuel.ErrBadParameter.With("model owner and name are required")
	}
	if !localElement(id.Owner) || !localElement(id.NormalizedName()) {
		return fuel.ErrBadParameter.Withf("model path %q/%q", id.Owner, id.NormalizedName())
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()

	// Create the model directory
	dir := cache.ModelPath(id)
	_, statErr := os.Stat(dir)
	created := os.IsNotExist(statErr)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fuel.ErrInternal.Withf("mkdir: %v", err)
	}
	if err := cache.writeModel(dir, id, data, archive); err != nil {
		if created {
			os.RemoveAll(dir)
		}
		return err
	}

	// Return success
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Write the archive, the unpacked content and finally the metadata
// into the model directory.
func (cache *Cache) writeModel(dir string, id schema.ModelIdentifier, data []byte, archive bool) error {
	// Keep the archive alongside the unpacked content
	if err := os.WriteFile(filepath.Join(dir, archiveFile), data, FilePerm); err != nil {
		return fuel.ErrInternal.Withf("write: %v", err)
	}
	if archive {
		if err := cache.extract(dir, data); err != nil {
			return err
		}
	}

	// Write the metadata
	metadata, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return fuel.ErrInternal.Withf("marshal: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, metadataFile), metadata, FilePerm); err != nil {
		return fuel.ErrInternal.Withf("write: %v", err)
	}

	// Return success
	return nil
}

// Report whether s can be used as a single path element under the
// cache root.
func localElement(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	if strings.ContainsAny(s, `/\`) {
		return false
	}
	return filepath.IsLocal(s)
}

// Read a model's metadata, falling back to an identifier derived from
// the directory names when none is readable.
func (cache *Cache) readModel(owner, name string) schema.ModelIdentifier {
	path := filepath.Join(cache.location, modelsDir, owner, name, metadataFile)
	if data, err := os.ReadFile(path); err == nil {
		var model schema.ModelIdentifier
		if err := json.Unmarshal(data, &model); err == nil && model.Name != "" {
			return model
		}
		cache.log.Debug("invalid metadata", zap.String("path", path))
	}
	return schema.ModelIdentifier{Owner: owner, Name: name}
}

// Report whether model matches the non-empty fields of partial.
func matches(model, partial schema.ModelIdentifier) bool {
	if partial.Owner != "" && model.Owner != partial.Owner {
		return false
	}
	if partial.Name != "" && model.NormalizedName() != partial.NormalizedName() {
		return false
	}
	if partial.Server.URL != "" && model.Server.URL != partial.Server.URL {
		return false
	}
	return true
}
