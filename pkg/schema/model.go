package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ModelIdentifier identifies a model hosted on a Fuel server: the owner,
// the model name and the server it lives on. The remaining fields are
// metadata reported by the server and are zero when unknown.
type ModelIdentifier struct {
	Owner  string       `json:"owner"`
	Name   string       `json:"name"`
	Server ServerConfig `json:"server,omitzero"`

	Description string    `json:"description,omitempty"`
	Likes       uint64    `json:"likes,omitempty"`
	Downloads   uint64    `json:"downloads,omitempty"`
	FileSize    int64     `json:"filesize,omitempty"`
	UploadDate  time.Time `json:"upload_date,omitzero"`
	ModifyDate  time.Time `json:"modify_date,omitzero"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// UniqueName returns the canonical version-independent name of the model,
// {server}/{owner}/models/{name}.
func (m ModelIdentifier) UniqueName() string {
	return m.Server.URL + "/" + m.Owner + "/models/" + m.Name
}

// NormalizedName returns the model name in the form used for filesystem
// paths: lowercased, with spaces replaced by underscores. The Name field
// itself is never rewritten.
func (m ModelIdentifier) NormalizedName() string {
	return strings.ReplaceAll(strings.ToLower(m.Name), " ", "_")
}

////////////////////////////////////////////////////////////////////////////////
// PARSING

// ParseModel parses a single model object as returned by a Fuel server and
// binds it to the given server.
func ParseModel(data []byte, server ServerConfig) (ModelIdentifier, error) {
	var model ModelIdentifier
	if err := json.Unmarshal(data, &model); err != nil {
		return ModelIdentifier{}, fmt.Errorf("parse model: %w", err)
	}
	if model.Name == "" {
		return ModelIdentifier{}, fmt.Errorf("parse model: missing model name")
	}
	model.Server = server
	return model, nil
}

// ParseModels parses a model listing as returned by a Fuel server. Servers
// return an array for listing paths, but a path scoped to a single model
// returns a bare object, so both forms are accepted. Every element must
// carry a model name.
func ParseModels(data []byte, server ServerConfig) ([]ModelIdentifier, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] != '[' {
		model, err := ParseModel(data, server)
		if err != nil {
			return nil, err
		}
		return []ModelIdentifier{model}, nil
	}

	var models []ModelIdentifier
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, fmt.Errorf("parse models: %w", err)
	}
	for i := range models {
		if models[i].Name == "" {
			return nil, fmt.Errorf("parse models: missing model name")
		}
		models[i].Server = server
	}
	return models, nil
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m ModelIdentifier) String() string {
	return Stringify(m)
}
