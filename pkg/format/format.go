// Package format holds utilities for recognizing data format.
package format

import (
	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
)

const (
	// JSON describes JSON data format.
	JSON DataFormat = "JSON"

	// YAML describes Yaml data format.
	YAML DataFormat = "YAML"

	// Unknown describes unrecognized data format.
	Unknown DataFormat = "unknown"
)

// DataFormat describes format of data.
type DataFormat string

// IsJSON checks whether bytes are in JSON format.
func IsJSON(bytes []byte) bool {
	return gjson.ValidBytes(bytes)
}

// IsYAML checks whether bytes are in YAML format.
// Any JSON document is also valid YAML, such input reports false.
func IsYAML(bytes []byte) bool {
	if IsJSON(bytes) {
		return false
	}

	var y map[string]interface{}
	err := yaml.Unmarshal(bytes, &y)

	return err == nil
}

// Recognize guesses format of bytes.
func Recognize(bytes []byte) DataFormat {
	if IsJSON(bytes) {
		return JSON
	}

	if IsYAML(bytes) {
		return YAML
	}

	return Unknown
}
