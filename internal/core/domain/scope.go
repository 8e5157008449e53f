package domain

import (
	"encoding/json"

	"go.trai.ch/zerr"
)

// ScopeJSONSchema is the current scope.json format version.
const ScopeJSONSchema = 1

// ScopeJSON describes a scope on disk.
type ScopeJSON struct {
	Schema  int               `json:"version"`
	Name    string            `json:"name"`
	Remotes map[string]string `json:"remotes"`
}

// NewScopeJSON returns a descriptor with no remotes.
func NewScopeJSON(name string) ScopeJSON {
	return ScopeJSON{Schema: ScopeJSONSchema, Name: name, Remotes: map[string]string{}}
}

// DecodeScopeJSON parses scope.json. Schema 0 files have no version field
// and may carry a null remotes object.
func DecodeScopeJSON(data []byte) (ScopeJSON, error) {
	var s ScopeJSON
	if err := json.Unmarshal(data, &s); err != nil {
		return ScopeJSON{}, zerr.Wrap(err, ErrConfigParseFailed.Error())
	}
	if s.Schema > ScopeJSONSchema {
		return ScopeJSON{}, zerr.With(zerr.Wrap(ErrUnsupportedSchema, ScopeJSONName), "schema", s.Schema)
	}
	if s.Remotes == nil {
		s.Remotes = map[string]string{}
	}
	s.Schema = ScopeJSONSchema
	return s, nil
}

// Encode renders scope.json with stable indentation.
func (s ScopeJSON) Encode() ([]byte, error) {
	if s.Remotes == nil {
		s.Remotes = map[string]string{}
	}
	s.Schema = ScopeJSONSchema
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, ErrStoreMarshalFailed.Error())
	}
	return append(data, '\n'), nil
}

// ScopeDescription is what a scope reports about itself over a transport.
type ScopeDescription struct {
	Name string `json:"name"`
}

// Payload is a serialized bit exchanged by push and fetch.
type Payload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Contents []byte `json:"contents"`
}

// SearchResult summarizes one index hit.
type SearchResult struct {
	ID          string `json:"id"`
	Box         string `json:"box"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Score       int    `json:"score"`
}

// DependencyRecord is the dependency map entry of one published bit.
// Remotes maps a dependency id string to the alias it was fetched from.
type DependencyRecord struct {
	Dependencies BitIDs            `json:"dependencies"`
	Remotes      map[string]string `json:"remotes"`
}

// BitIDs returns the recorded dependency closure.
func (r DependencyRecord) BitIDs() BitIDs {
	return r.Dependencies
}

// RemoteOf returns the alias a dependency was fetched from.
func (r DependencyRecord) RemoteOf(id BitID) (string, bool) {
	alias, ok := r.Remotes[id.String()]
	return alias, ok
}

// Artifact is the output of a build plugin, keyed by relative path.
type Artifact struct {
	Files map[string][]byte
}

// TestReport is the outcome of a tester plugin run.
type TestReport struct {
	Passed bool
	Output string
}

// PluginCommand describes an external build or test command.
type PluginCommand struct {
	Build []string
	Test  []string
}

// GlobalConfig is the process wide configuration.
type GlobalConfig struct {
	Remotes       Remotes
	Plugins       map[string]PluginCommand
	DefaultRemote string
}
