/*
config loads the client configuration, which names the remote servers
and the location of the local model cache. Configuration is stored as
a YAML file, by default under the user configuration directory.
*/
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	// Packages
	yaml "gopkg.in/yaml.v3"

	fuel "github.com/fueltools/go-fuel"
	schema "github.com/fueltools/go-fuel/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Config is the set of remote servers and the cache location
type Config struct {
	Servers []schema.ServerConfig `yaml:"servers" json:"servers"`
	Cache   Cache                 `yaml:"cache" json:"cache"`

	// Path to the file the configuration was loaded from
	path string
}

// Cache is the local store configuration
type Cache struct {
	Path string `yaml:"path" json:"path"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// The name of the directory under the user configuration directory
	configDir = "fuel"

	// The name of the config file
	configFile = "config.yaml"
)

const (
	// The public server, used when no servers are configured
	DefaultServerURL     = "https://api.fuel.io"
	DefaultServerVersion = "1.0"
	DefaultServerName    = "fuel"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Default returns a configuration with the public server and a cache
// under the user cache directory.
func Default() *Config {
	config := new(Config)
	config.applyDefaults()
	return config
}

// Load reads a configuration from a YAML file, filling in defaults
// for any missing values.
func Load(path string) (*Config, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	// Read and decode the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := new(Config)
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fuel.ErrBadParameter.Withf("%s: %v", path, err)
	}
	config.path = path
	config.applyDefaults()

	// Check the servers
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Return success
	return config, nil
}

// LoadDefault reads the configuration from the user configuration
// directory, or returns the default configuration when no file
// exists there.
func LoadDefault() (*Config, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return Default(), nil
	}
	path := filepath.Join(dir, configDir, configFile)
	if _, err := os.Stat(path); err != nil {
		return Default(), nil
	}
	return Load(path)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CacheLocation returns the directory models are cached under.
func (config *Config) CacheLocation() string {
	return config.Cache.Path
}

// Path returns the file the configuration was loaded from, or an
// empty string for a default configuration.
func (config *Config) Path() string {
	return config.path
}

// Validate checks the configured servers for malformed URLs and
// duplicate entries.
func (config *Config) Validate() error {
	seen := make(map[string]bool, len(config.Servers))
	for _, server := range config.Servers {
		u, err := url.Parse(server.URL)
		if err != nil {
			return fuel.ErrBadParameter.Withf("server url %q", server.URL)
		}
		// A server URL is scheme and host only, with no path
		if u.Scheme == "" || u.Host == "" || (u.Path != "" && u.Path != "/") {
			return fuel.ErrBadParameter.Withf("server url %q", server.URL)
		}
		if seen[server.URL] {
			return fuel.ErrBadParameter.Withf("duplicate server %q", server.URL)
		}
		seen[server.URL] = true
	}

	// Return success
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Fill in the default server, server versions and cache location
// when unset.
func (config *Config) applyDefaults() {
	if len(config.Servers) == 0 {
		config.Servers = []schema.ServerConfig{{
			URL:     DefaultServerURL,
			Version: DefaultServerVersion,
			Name:    DefaultServerName,
		}}
	}
	for i := range config.Servers {
		if config.Servers[i].Version == "" {
			config.Servers[i].Version = DefaultServerVersion
		}
	}
	if config.Cache.Path == "" {
		config.Cache.Path = defaultCacheDir()
	} else if path, err := expandHome(config.Cache.Path); err == nil {
		config.Cache.Path = path
	}
}

// The cache defaults to the user cache directory, or the system
// temporary directory when that cannot be determined.
func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, configDir)
	}
	return filepath.Join(os.TempDir(), configDir)
}

// Expand a leading '~' to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}
