package domain

import (
	"encoding/json"
	"sort"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// BitJSONSchema is the current bit.json format version.
const BitJSONSchema = 1

// BitJSON is the metadata stored next to a bit's payloads.
type BitJSON struct {
	Schema       int      `json:"schema"`
	Name         string   `json:"name"`
	Box          string   `json:"box"`
	Version      string   `json:"version"`
	Description  string   `json:"description,omitempty"`
	Impl         string   `json:"impl"`
	Spec         string   `json:"spec,omitempty"`
	Compiler     string   `json:"compiler,omitempty"`
	Tester       string   `json:"tester,omitempty"`
	Dependencies []string `json:"dependencies"`
}

// NewBitJSON returns metadata for a fresh bit with default payload names.
func NewBitJSON(box, name, version string) BitJSON {
	return BitJSON{
		Schema:       BitJSONSchema,
		Name:         name,
		Box:          box,
		Version:      version,
		Impl:         DefaultImplFile,
		Spec:         DefaultSpecFile,
		Dependencies: []string{},
	}
}

// bitJSONWire accepts both the current list of dependency ids and the
// schema 0 object of id to version.
type bitJSONWire struct {
	BitJSON
	Dependencies json.RawMessage `json:"dependencies"`
}

// DecodeBitJSON parses bit.json, migrating older schemas to the current one.
func DecodeBitJSON(data []byte) (BitJSON, error) {
	var wire bitJSONWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return BitJSON{}, zerr.Wrap(err, ErrStoreUnmarshalFailed.Error())
	}

	meta := wire.BitJSON
	if meta.Schema > BitJSONSchema {
		return BitJSON{}, zerr.With(zerr.Wrap(ErrUnsupportedSchema, "bit.json"), "schema", meta.Schema)
	}

	deps, err := decodeDependencies(meta.Schema, wire.Dependencies)
	if err != nil {
		return BitJSON{}, err
	}
	meta.Dependencies = deps
	meta.Schema = BitJSONSchema

	if meta.Impl == "" {
		meta.Impl = DefaultImplFile
	}

	return meta, nil
}

func decodeDependencies(schema int, raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []string{}, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	if schema != 0 {
		return nil, zerr.With(zerr.Wrap(ErrStoreUnmarshalFailed, "dependencies must be a list"), "schema", schema)
	}

	var legacy map[string]string
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, zerr.Wrap(err, ErrStoreUnmarshalFailed.Error())
	}

	out := make([]string, 0, len(legacy))
	for id, version := range legacy {
		if version == "" {
			out = append(out, id)
			continue
		}
		out = append(out, id+"@"+version)
	}
	sort.Strings(out)
	return out, nil
}

// Encode renders bit.json with stable indentation.
func (m BitJSON) Encode() ([]byte, error) {
	if m.Dependencies == nil {
		m.Dependencies = []string{}
	}
	m.Schema = BitJSONSchema
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, ErrStoreMarshalFailed.Error())
	}
	return append(data, '\n'), nil
}

// Validate checks the structural invariants of the metadata.
func (m BitJSON) Validate() error {
	invalid := func(reason string) error {
		return zerr.With(zerr.Wrap(ErrValidation, reason), "bit", m.Box+"/"+m.Name)
	}

	if !segmentRegex.MatchString(m.Box) {
		return invalid("invalid box")
	}
	if !segmentRegex.MatchString(m.Name) {
		return invalid("invalid name")
	}
	if _, err := semver.StrictNewVersion(m.Version); err != nil {
		return zerr.With(invalid("version must be a semantic version"), "version", m.Version)
	}
	if m.Impl == "" {
		return invalid("missing impl file name")
	}
	for _, dep := range m.Dependencies {
		id, err := ParseBitID(dep)
		if err != nil {
			return zerr.With(invalid("invalid dependency id"), "dependency", dep)
		}
		if id.Box == m.Box && id.Name == m.Name {
			return zerr.With(invalid("bit depends on itself"), "dependency", dep)
		}
	}
	return nil
}
