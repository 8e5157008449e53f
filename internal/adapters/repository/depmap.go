package repository

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/zerr"
)

// DependencyMapSchema is the current dependencies.json format version.
const DependencyMapSchema = 1

// dependencyMapFile is the on-disk layout of the dependency map.
type dependencyMapFile struct {
	Version int                                `json:"version"`
	Bits    map[string]domain.DependencyRecord `json:"bits"`
}

// DependencyMap persists, for every published bit, its flattened dependency
// closure and the remote each dependency came from.
//
// Changes are staged in memory and merged into the file by Write, which reads
// the current file, applies the staged entries and renames a new file into place.
type DependencyMap struct {
	path   string
	mu     sync.Mutex
	staged map[string]*domain.DependencyRecord
}

// NewDependencyMap creates a map persisted at path.
func NewDependencyMap(path string) *DependencyMap {
	return &DependencyMap{path: path, staged: make(map[string]*domain.DependencyRecord)}
}

func mapKey(id domain.BitID) string {
	return id.Local().String()
}

// SetBit stages the record of id.
func (m *DependencyMap) SetBit(id domain.BitID, record domain.DependencyRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := normalizeRecord(record)
	m.staged[mapKey(id)] = &r
}

// Delete stages the removal of id.
func (m *DependencyMap) Delete(id domain.BitID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.staged[mapKey(id)] = nil
}

// Discard drops any staged change for id.
func (m *DependencyMap) Discard(id domain.BitID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.staged, mapKey(id))
}

// Get returns the record of id, staged changes included.
func (m *DependencyMap) Get(id domain.BitID) (domain.DependencyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := mapKey(id)
	notInScope := func() error {
		return zerr.With(zerr.Wrap(domain.ErrBitNotInScope, "no dependency record"), "id", key)
	}

	if staged, ok := m.staged[key]; ok {
		if staged == nil {
			return domain.DependencyRecord{}, notInScope()
		}
		return *staged, nil
	}

	current, err := m.read()
	if err != nil {
		return domain.DependencyRecord{}, err
	}
	record, ok := current[key]
	if !ok {
		return domain.DependencyRecord{}, notInScope()
	}
	return record, nil
}

// All returns the persisted records merged with staged changes.
func (m *DependencyMap) All() (map[string]domain.DependencyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, err := m.read()
	if err != nil {
		return nil, err
	}
	applyStaged(current, m.staged)
	return current, nil
}

// Write merges the staged changes of ids into the file and replaces it
// atomically. With no ids every staged change is written. Changes staged for
// other ids stay pending, and nothing is unstaged if the write fails.
func (m *DependencyMap) Write(ids ...domain.BitID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, err := m.read()
	if err != nil {
		return err
	}
	selected := m.staged
	if len(ids) > 0 {
		selected = make(map[string]*domain.DependencyRecord, len(ids))
		for _, id := range ids {
			if record, ok := m.staged[mapKey(id)]; ok {
				selected[mapKey(id)] = record
			}
		}
	}
	applyStaged(current, selected)

	data, err := encodeDependencyMap(current)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(m.path, data, domain.FilePerm); err != nil {
		return err
	}

	if len(ids) == 0 {
		m.staged = make(map[string]*domain.DependencyRecord)
		return nil
	}
	for key := range selected {
		delete(m.staged, key)
	}
	return nil
}

// EnsureFile writes an empty map if none exists.
func (m *DependencyMap) EnsureFile() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := os.Stat(m.path); err == nil {
		return nil
	}
	data, err := encodeDependencyMap(map[string]domain.DependencyRecord{})
	if err != nil {
		return err
	}
	return writeFileAtomic(m.path, data, domain.FilePerm)
}

func (m *DependencyMap) read() (map[string]domain.DependencyRecord, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]domain.DependencyRecord{}, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return decodeDependencyMap(data)
}

// decodeDependencyMap accepts the versioned layout and the schema 0 layout,
// which was a bare object of id to record.
func decodeDependencyMap(data []byte) (map[string]domain.DependencyRecord, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "file", domain.DependencyMapName)
	}

	if _, versioned := fields["version"]; versioned {
		var file dependencyMapFile
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "file", domain.DependencyMapName)
		}
		if file.Version > DependencyMapSchema {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedSchema, domain.DependencyMapName), "schema", file.Version)
		}
		if file.Bits == nil {
			file.Bits = map[string]domain.DependencyRecord{}
		}
		for k, r := range file.Bits {
			file.Bits[k] = normalizeRecord(r)
		}
		return file.Bits, nil
	}

	legacy := make(map[string]domain.DependencyRecord, len(fields))
	for key, raw := range fields {
		var record domain.DependencyRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "id", key)
		}
		legacy[key] = normalizeRecord(record)
	}
	return legacy, nil
}

func encodeDependencyMap(bits map[string]domain.DependencyRecord) ([]byte, error) {
	data, err := json.MarshalIndent(dependencyMapFile{Version: DependencyMapSchema, Bits: bits}, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}
	return append(data, '\n'), nil
}

func applyStaged(current map[string]domain.DependencyRecord, staged map[string]*domain.DependencyRecord) {
	for key, record := range staged {
		if record == nil {
			delete(current, key)
			continue
		}
		current[key] = *record
	}
}

func normalizeRecord(r domain.DependencyRecord) domain.DependencyRecord {
	if r.Dependencies == nil {
		r.Dependencies = domain.BitIDs{}
	}
	if r.Remotes == nil {
		r.Remotes = map[string]string{}
	}
	return r
}
