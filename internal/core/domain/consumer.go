package domain

import (
	"encoding/json"

	"go.trai.ch/zerr"
)

// ConsumerJSONSchema is the current project manifest format version.
const ConsumerJSONSchema = 1

// ConsumerJSON is the bit.json manifest at the root of a consumer project.
// Compiler and Tester are the defaults given to newly created components.
type ConsumerJSON struct {
	Schema       int      `json:"schema"`
	Compiler     string   `json:"compiler,omitempty"`
	Tester       string   `json:"tester,omitempty"`
	Dependencies []string `json:"dependencies"`
}

// NewConsumerJSON returns an empty manifest.
func NewConsumerJSON() ConsumerJSON {
	return ConsumerJSON{Schema: ConsumerJSONSchema, Dependencies: []string{}}
}

// DecodeConsumerJSON parses a project manifest.
func DecodeConsumerJSON(data []byte) (ConsumerJSON, error) {
	var m ConsumerJSON
	if err := json.Unmarshal(data, &m); err != nil {
		return ConsumerJSON{}, zerr.Wrap(err, ErrConfigParseFailed.Error())
	}
	if m.Schema > ConsumerJSONSchema {
		return ConsumerJSON{}, zerr.With(zerr.Wrap(ErrUnsupportedSchema, BitJSONName), "schema", m.Schema)
	}
	if m.Dependencies == nil {
		m.Dependencies = []string{}
	}
	m.Schema = ConsumerJSONSchema
	return m, nil
}

// Encode renders the manifest with stable indentation.
func (m ConsumerJSON) Encode() ([]byte, error) {
	if m.Dependencies == nil {
		m.Dependencies = []string{}
	}
	m.Schema = ConsumerJSONSchema
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, ErrStoreMarshalFailed.Error())
	}
	return append(data, '\n'), nil
}

// DependencyIDs parses the declared dependencies.
func (m ConsumerJSON) DependencyIDs() (BitIDs, error) {
	return ParseBitIDs(m.Dependencies)
}
