package ports

import "go.trai.ch/bit/internal/core/domain"

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks

// SourceStore holds the records of bits owned by the scope.
type SourceStore interface {
	// Set writes the bit's record atomically. It reports whether the record is new.
	Set(bit *domain.Bit) (bool, error)

	// Load reads the record of a concretely versioned id.
	Load(id domain.BitID) (*domain.Bit, error)

	// Has reports whether a record exists for id.
	Has(id domain.BitID) bool

	// Clean removes the record of id.
	Clean(id domain.BitID) error

	// ResolveVersion pins an unversioned or latest id to the highest stored version.
	ResolveVersion(id domain.BitID) (domain.BitID, error)

	// List returns every stored id.
	List() (domain.BitIDs, error)
}

// ExternalStore caches bits whose home is a remote scope.
type ExternalStore interface {
	// Store writes the bits and returns the ids that were not cached before.
	Store(bits ...*domain.Bit) (domain.BitIDs, error)

	// Load reads a cached bit.
	Load(id domain.BitID) (*domain.Bit, error)

	// Has reports whether id is cached.
	Has(id domain.BitID) bool

	// Remove drops the cached copies of ids.
	Remove(ids ...domain.BitID) error

	// Locate finds a cached copy of an id given without a scope and returns it scoped.
	Locate(id domain.BitID) (domain.BitID, bool)
}

// DependencyStore is the persisted dependency map.
type DependencyStore interface {
	// SetBit stages the record of id for the next Write.
	SetBit(id domain.BitID, record domain.DependencyRecord)

	// Get returns the record of id or domain.ErrBitNotInScope.
	Get(id domain.BitID) (domain.DependencyRecord, error)

	// Delete stages the removal of id for the next Write.
	Delete(id domain.BitID)

	// Discard drops any staged change for id.
	Discard(id domain.BitID)

	// Write merges the staged changes of ids, or of every id when none are
	// given, into the file on disk and replaces it atomically.
	Write(ids ...domain.BitID) error
}

// ScratchStore is a disposable working directory.
type ScratchStore interface {
	// Path returns the directory.
	Path() string

	// EnsureDir creates the directory if needed.
	EnsureDir() error

	// Clear removes the directory's content.
	Clear() error

	// MkdirTemp creates a fresh directory inside the scratch space.
	MkdirTemp(pattern string) (string, error)
}

// Storage groups the subtrees and descriptor of one scope on disk.
type Storage interface {
	// Root returns the hidden scope directory.
	Root() string

	Sources() SourceStore
	External() ExternalStore
	Dependencies() DependencyStore
	Cache() ScratchStore
	Tmp() ScratchStore

	// ReadScopeJSON reads the scope descriptor.
	ReadScopeJSON() (domain.ScopeJSON, error)

	// WriteScopeJSON replaces the scope descriptor atomically.
	WriteScopeJSON(s domain.ScopeJSON) error

	// EnsureLayout creates every subtree and an empty dependency map if missing.
	EnsureLayout() error
}

// StorageOpener opens scope storage.
type StorageOpener interface {
	// Open returns the storage whose hidden directory lives at root.
	Open(root string) (Storage, error)

	// Exists reports whether root holds a scope descriptor.
	Exists(root string) bool
}

// ComponentLayout reads and writes bits as plain working directories.
type ComponentLayout interface {
	// WriteDir lays bit's files out in dir, overwriting files of the same name.
	WriteDir(dir string, bit *domain.Bit) error
	// ReadDir loads the bit described by dir's bit.json.
	ReadDir(dir string) (*domain.Bit, error)
	// ReadManifest reads the project manifest in dir or returns domain.ErrConsumerNotFound.
	ReadManifest(dir string) (domain.ConsumerJSON, error)
	// WriteManifest replaces the project manifest in dir atomically.
	WriteManifest(dir string, manifest domain.ConsumerJSON) error
}
