/*
schema defines the identifier and wire types shared by the Fuel client,
the local cache and the transport.
*/
package schema

import "encoding/json"

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Stringify returns an indented JSON rendering of v, for diagnostics.
func Stringify[T any](v T) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
