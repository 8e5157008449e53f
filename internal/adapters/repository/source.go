package repository

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Source stores the records of bits owned by the scope under box/name/@this/version.
type Source struct {
	dir   string
	locks *keyedMutex
}

// NewSource creates a Source rooted at dir.
func NewSource(dir string) *Source {
	return &Source{dir: dir, locks: newKeyedMutex()}
}

func (s *Source) recordPath(id domain.BitID) string {
	return filepath.Join(s.dir, id.Box, id.Name, domain.LocalScopeMarker, id.Version)
}

// Set writes the record through a staging directory and renames it into place.
// Writers of the same id are serialized; the last one wins.
func (s *Source) Set(bit *domain.Bit) (bool, error) {
	id := bit.ID().Local()
	if !id.HasVersion() {
		return false, zerr.With(zerr.Wrap(domain.ErrValidation, "source record needs a version"), "id", id.String())
	}

	unlock := s.locks.Lock(id.Key())
	defer unlock()

	final := s.recordPath(id)
	if err := os.MkdirAll(filepath.Dir(final), domain.DirPerm); err != nil {
		return false, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	staging, err := os.MkdirTemp(filepath.Dir(final), "."+id.Version+".tmp-*")
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	if err := WriteRecord(staging, bit); err != nil {
		_ = os.RemoveAll(staging)
		return false, err
	}

	created, err := replaceDir(staging, final)
	if err != nil {
		_ = os.RemoveAll(staging)
		return false, err
	}
	return created, nil
}

// Load reads the record of id, resolving latest first.
func (s *Source) Load(id domain.BitID) (*domain.Bit, error) {
	resolved, err := s.ResolveVersion(id)
	if err != nil {
		return nil, err
	}

	bit, err := ReadRecord(s.recordPath(resolved))
	if err != nil {
		if errors.Is(err, domain.ErrBitNotFound) {
			return nil, zerr.With(zerr.Wrap(domain.ErrBitNotFound, "no source record"), "id", resolved.String())
		}
		return nil, err
	}
	return bit, nil
}

// Has reports whether a record exists for a concrete id.
func (s *Source) Has(id domain.BitID) bool {
	if !id.HasVersion() {
		_, err := s.ResolveVersion(id)
		return err == nil
	}
	_, err := os.Stat(filepath.Join(s.recordPath(id.Local()), domain.BitJSONName))
	return err == nil
}

// Clean removes the record of id and prunes empty parents.
func (s *Source) Clean(id domain.BitID) error {
	id = id.Local()
	unlock := s.locks.Lock(id.Key())
	defer unlock()

	path := s.recordPath(id)
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove source record"), "id", id.String())
	}
	pruneEmpty(filepath.Dir(path), s.dir)
	return nil
}

// ResolveVersion pins latest or missing versions to the highest stored semver.
// A pinned id is returned unchanged if its record exists.
func (s *Source) ResolveVersion(id domain.BitID) (domain.BitID, error) {
	id = id.Local()
	if id.HasVersion() {
		if _, err := os.Stat(s.recordPath(id)); err != nil {
			return domain.BitID{}, zerr.With(zerr.Wrap(domain.ErrBitNotFound, "version not stored"), "id", id.String())
		}
		return id, nil
	}

	versions, err := readDirNames(filepath.Join(s.dir, id.Box, id.Name, domain.LocalScopeMarker))
	if err != nil {
		return domain.BitID{}, err
	}
	latest, ok := domain.ResolveLatest(versions)
	if !ok {
		return domain.BitID{}, zerr.With(zerr.Wrap(domain.ErrBitNotFound, "no stored versions"), "id", id.String())
	}
	return id.WithVersion(latest), nil
}

// List returns every stored id ordered by box, name and descending version.
func (s *Source) List() (domain.BitIDs, error) {
	var ids domain.BitIDs
	boxes, err := readDirNames(s.dir)
	if err != nil {
		return nil, err
	}
	for _, box := range boxes {
		names, err := readDirNames(filepath.Join(s.dir, box))
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			versions, err := readDirNames(filepath.Join(s.dir, box, name, domain.LocalScopeMarker))
			if err != nil {
				return nil, err
			}
			for _, v := range domain.SortVersions(versions) {
				ids = append(ids, domain.BitID{Box: box, Name: name, Version: v.Original()})
			}
		}
	}
	return ids, nil
}

// readDirNames lists visible subdirectories in name order. A missing directory is empty.
func readDirNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() && !isHidden(e.Name()) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// pruneEmpty removes empty directories from dir up to, but excluding, stop.
func pruneEmpty(dir, stop string) {
	for dir != stop && len(dir) > len(stop) {
		if err := os.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}
