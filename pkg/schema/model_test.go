package schema_test

import (
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"

	schema "github.com/fueltools/go-fuel/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// IDENTIFIER TESTS

// Test UniqueName is version-independent
func Test_model_001(t *testing.T) {
	assert := assert.New(t)
	model := schema.ModelIdentifier{
		Owner: "alice",
		Name:  "Beer",
		Server: schema.ServerConfig{
			URL:     "https://api.fuel.io",
			Version: "1.0",
		},
	}
	assert.Equal("https://api.fuel.io/alice/models/Beer", model.UniqueName())
}

// Test NormalizedName lowercases and replaces spaces, leaving Name intact
func Test_model_002(t *testing.T) {
	assert := assert.New(t)
	model := schema.ModelIdentifier{Owner: "Caguero", Name: "Table Lamp"}
	assert.Equal("table_lamp", model.NormalizedName())
	assert.Equal("Table Lamp", model.Name)
}

///////////////////////////////////////////////////////////////////////////////
// PARSING TESTS

// Test ParseModel binds the model to the server
func Test_model_003(t *testing.T) {
	assert := assert.New(t)
	server := schema.ServerConfig{URL: "https://api.fuel.io", Version: "1.0"}
	model, err := schema.ParseModel([]byte(`{
		"owner": "alice",
		"name": "Beer",
		"description": "A beer model",
		"downloads": 42
	}`), server)
	assert.NoError(err)
	assert.Equal("alice", model.Owner)
	assert.Equal("Beer", model.Name)
	assert.Equal("A beer model", model.Description)
	assert.Equal(uint64(42), model.Downloads)
	assert.Equal(server, model.Server)
}

// Test ParseModel rejects a model without a name
func Test_model_004(t *testing.T) {
	assert := assert.New(t)
	_, err := schema.ParseModel([]byte(`{"owner": "alice"}`), schema.ServerConfig{})
	assert.Error(err)
}

// Test ParseModel rejects invalid JSON
func Test_model_005(t *testing.T) {
	assert := assert.New(t)
	_, err := schema.ParseModel([]byte(`{invalid`), schema.ServerConfig{})
	assert.Error(err)
}

// Test ParseModels accepts an array
func Test_model_006(t *testing.T) {
	assert := assert.New(t)
	server := schema.ServerConfig{URL: "https://api.fuel.io"}
	models, err := schema.ParseModels([]byte(`[
		{"owner": "alice", "name": "Beer"},
		{"owner": "bob", "name": "Wine"}
	]`), server)
	assert.NoError(err)
	assert.Len(models, 2)
	assert.Equal("Beer", models[0].Name)
	assert.Equal("Wine", models[1].Name)
	assert.Equal(server, models[0].Server)
	assert.Equal(server, models[1].Server)
}

// Test ParseModels accepts a bare object as a single-model listing
func Test_model_007(t *testing.T) {
	assert := assert.New(t)
	models, err := schema.ParseModels([]byte(`  {"owner": "alice", "name": "Beer"}`), schema.ServerConfig{})
	assert.NoError(err)
	assert.Len(models, 1)
	assert.Equal("Beer", models[0].Name)
}

// Test ParseModels rejects invalid JSON
func Test_model_008(t *testing.T) {
	assert := assert.New(t)
	_, err := schema.ParseModels([]byte(`[{"owner"`), schema.ServerConfig{})
	assert.Error(err)
}

// Test ParseModels rejects an array element without a name
func Test_model_009(t *testing.T) {
	assert := assert.New(t)
	_, err := schema.ParseModels([]byte(`[{"owner": "alice", "name": "Beer"}, {"owner": "bob"}]`), schema.ServerConfig{})
	assert.Error(err)
}
