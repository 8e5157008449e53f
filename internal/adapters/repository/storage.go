// Package repository implements the on-disk layout of a scope.
package repository

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Storage implements ports.Storage for one hidden scope directory.
type Storage struct {
	root     string
	sources  *Source
	external *External
	depMap   *DependencyMap
	cache    *Scratch
	tmp      *Scratch
}

// NewStorage lays out the subtrees of the scope directory at root.
func NewStorage(root string) *Storage {
	return &Storage{
		root:     root,
		sources:  NewSource(filepath.Join(root, domain.SourcesDirName)),
		external: NewExternal(filepath.Join(root, domain.ExternalDirName)),
		depMap:   NewDependencyMap(filepath.Join(root, domain.DependencyMapName)),
		cache:    NewScratch(filepath.Join(root, domain.CacheDirName)),
		tmp:      NewScratch(filepath.Join(root, domain.TmpDirName)),
	}
}

// Root returns the hidden scope directory.
func (s *Storage) Root() string { return s.root }

// Sources returns the authoritative store.
func (s *Storage) Sources() ports.SourceStore { return s.sources }

// External returns the remote cache.
func (s *Storage) External() ports.ExternalStore { return s.external }

// Dependencies returns the dependency map.
func (s *Storage) Dependencies() ports.DependencyStore { return s.depMap }

// Cache returns the cache scratch space.
func (s *Storage) Cache() ports.ScratchStore { return s.cache }

// Tmp returns the temporary scratch space.
func (s *Storage) Tmp() ports.ScratchStore { return s.tmp }

func (s *Storage) scopeJSONPath() string {
	return filepath.Join(s.root, domain.ScopeJSONName)
}

// ReadScopeJSON reads and migrates scope.json.
func (s *Storage) ReadScopeJSON() (domain.ScopeJSON, error) {
	data, err := os.ReadFile(s.scopeJSONPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ScopeJSON{}, zerr.With(zerr.Wrap(domain.ErrScopeNotFound, "missing scope.json"), "path", s.root)
		}
		return domain.ScopeJSON{}, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	return domain.DecodeScopeJSON(data)
}

// WriteScopeJSON replaces scope.json atomically.
func (s *Storage) WriteScopeJSON(desc domain.ScopeJSON) error {
	data, err := desc.Encode()
	if err != nil {
		return err
	}
	return writeFileAtomic(s.scopeJSONPath(), data, domain.FilePerm)
}

// EnsureLayout creates every subtree and an empty dependency map. It is idempotent.
func (s *Storage) EnsureLayout() error {
	for _, dir := range []string{
		filepath.Join(s.root, domain.SourcesDirName),
		filepath.Join(s.root, domain.ExternalDirName),
	} {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", dir)
		}
	}
	if err := s.cache.EnsureDir(); err != nil {
		return err
	}
	if err := s.tmp.EnsureDir(); err != nil {
		return err
	}
	return s.depMap.EnsureFile()
}

// Opener implements ports.StorageOpener on the local filesystem.
type Opener struct{}

// NewOpener creates an Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open returns the storage rooted at root without touching the disk.
func (o *Opener) Open(root string) (ports.Storage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve scope path"), "path", root)
	}
	return NewStorage(abs), nil
}

// Exists reports whether root holds a scope descriptor.
func (o *Opener) Exists(root string) bool {
	info, err := os.Stat(filepath.Join(root, domain.ScopeJSONName))
	return err == nil && !info.IsDir()
}
