package repository

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/zerr"
)

// External caches bits fetched from remotes under box/name/scope/version.
type External struct {
	dir   string
	locks *keyedMutex
}

// NewExternal creates an External rooted at dir.
func NewExternal(dir string) *External {
	return &External{dir: dir, locks: newKeyedMutex()}
}

func (e *External) recordPath(id domain.BitID) string {
	scope := id.Scope
	if scope == "" {
		scope = domain.LocalScopeMarker
	}
	return filepath.Join(e.dir, id.Box, id.Name, scope, id.Version)
}

// Store writes every bit. Existing copies are overwritten, never rejected.
// The returned ids are those that were not cached before the call.
func (e *External) Store(bits ...*domain.Bit) (domain.BitIDs, error) {
	var added domain.BitIDs
	for _, bit := range bits {
		created, err := e.store(bit)
		if err != nil {
			return added, err
		}
		if created {
			added = append(added, bit.ID())
		}
	}
	return added, nil
}

func (e *External) store(bit *domain.Bit) (bool, error) {
	id := bit.ID()
	if !id.HasVersion() {
		return false, zerr.With(zerr.Wrap(domain.ErrValidation, "external record needs a version"), "id", id.String())
	}

	unlock := e.locks.Lock(id.Key())
	defer unlock()

	final := e.recordPath(id)
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

// Load reads a cached bit and restores its owning scope.
func (e *External) Load(id domain.BitID) (*domain.Bit, error) {
	bit, err := ReadRecord(e.recordPath(id))
	if err != nil {
		if errors.Is(err, domain.ErrBitNotFound) {
			return nil, zerr.With(zerr.Wrap(domain.ErrBitNotFound, "not cached"), "id", id.String())
		}
		return nil, err
	}
	bit.Scope = id.Scope
	return bit, nil
}

// Has reports whether id is cached.
func (e *External) Has(id domain.BitID) bool {
	_, err := os.Stat(filepath.Join(e.recordPath(id), domain.BitJSONName))
	return err == nil
}

// Locate finds a cached copy of a bit addressed without a scope, such as one
// this scope pushed and no longer owns. An unversioned id matches the highest
// cached version. Scopes are tried in name order.
func (e *External) Locate(id domain.BitID) (domain.BitID, bool) {
	id = id.Local()
	scopes, err := readDirNames(filepath.Join(e.dir, id.Box, id.Name))
	if err != nil {
		return domain.BitID{}, false
	}

	owners := make(map[string]string)
	var latest []string
	for _, scope := range scopes {
		if scope == domain.LocalScopeMarker {
			continue
		}
		scoped := id.WithScope(scope)
		if id.HasVersion() {
			if e.Has(scoped) {
				return scoped, true
			}
			continue
		}
		versions, err := readDirNames(filepath.Join(e.dir, id.Box, id.Name, scope))
		if err != nil {
			continue
		}
		if v, ok := domain.ResolveLatest(versions); ok {
			if _, seen := owners[v]; !seen {
				owners[v] = scope
			}
			latest = append(latest, v)
		}
	}

	version, ok := domain.ResolveLatest(latest)
	if !ok {
		return domain.BitID{}, false
	}
	return id.WithScope(owners[version]).WithVersion(version), true
}

// Remove drops cached copies. Missing entries are ignored.
func (e *External) Remove(ids ...domain.BitID) error {
	var errs error
	for _, id := range ids {
		unlock := e.locks.Lock(id.Key())
		path := e.recordPath(id)
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove external record"), "id", id.String()))
		} else {
			pruneEmpty(filepath.Dir(path), e.dir)
		}
		unlock()
	}
	return errs
}
