package schema_test

import (
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"

	schema "github.com/fueltools/go-fuel/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// SERVER TESTS

// Test servers are compared by URL alone
func Test_server_001(t *testing.T) {
	assert := assert.New(t)
	a := schema.ServerConfig{URL: "https://api.fuel.io", Version: "1.0", Name: "fuel"}
	b := schema.ServerConfig{URL: "https://api.fuel.io", Version: "2.0"}
	c := schema.ServerConfig{URL: "https://other.fuel.io", Version: "1.0", Name: "fuel"}
	assert.True(a.SameServer(b))
	assert.False(a.SameServer(c))
}

// Test a server is complete when it has a name and a version
func Test_server_002(t *testing.T) {
	assert := assert.New(t)
	assert.True(schema.ServerConfig{URL: "https://api.fuel.io", Version: "1.0", Name: "fuel"}.Complete())
	assert.False(schema.ServerConfig{URL: "https://api.fuel.io", Version: "1.0"}.Complete())
	assert.False(schema.ServerConfig{URL: "https://api.fuel.io", Name: "fuel"}.Complete())
}
