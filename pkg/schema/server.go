package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ServerConfig identifies a Fuel server. URL is the scheme and host only,
// with no trailing path; Version is the API version segment used when
// building request paths; Name is the local alias given to the server in
// the configuration file. Version and Name may be empty, which is an
// incomplete but usable configuration.
type ServerConfig struct {
	URL     string `json:"url" yaml:"url"`
	Version string `json:"version,omitempty" yaml:"version"`
	Name    string `json:"name,omitempty" yaml:"name"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// SameServer returns true when both configurations address the same server.
// Servers are compared by URL alone, never by version or name.
func (s ServerConfig) SameServer(other ServerConfig) bool {
	return s.URL == other.URL
}

// Complete returns true when the server has both a local name and an
// API version.
func (s ServerConfig) Complete() bool {
	return s.Name != "" && s.Version != ""
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s ServerConfig) String() string {
	return Stringify(s)
}
