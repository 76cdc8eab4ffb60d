// Package codec holds the structured text formats a backing file can be serialized with.
package codec

import (
	"path/filepath"
	"strings"
)

// Codec The interface implemented by the backing file formats. Unmarshal must decode into
// generic values (sequences as []any, mappings as maps) so the store can validate the
// document shape itself, and an empty document decodes to nil without error
type Codec interface {
	Name() string

	Marshal(v any) ([]byte, error)

	Unmarshal(data []byte) (any, error)
}

// ForPath Selects a [Codec] from the file extension, defaulting to [YAML]
func ForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON{}
	default:
		return YAML{}
	}
}

// ForName Find a [Codec] by its name, returning false for unknown names
func ForName(name string) (Codec, bool) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return YAML{}, true
	case "json":
		return JSON{}, true
	}

	return nil, false
}
