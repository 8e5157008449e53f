// Package scope implements the local component repository and its put/get protocols.
package scope

import (
	"context"
	"errors"
	"path/filepath"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory creates and loads scopes sharing one set of collaborators.
type Factory struct {
	opener  ports.StorageOpener
	layout  ports.ComponentLayout
	network ports.Network
	codec   ports.ArchiveCodec
	indexer ports.Indexer
	config  ports.ConfigLoader
	plugins ports.PluginRegistry
	tracer  ports.Tracer
	logger  ports.Logger
}

// NewFactory creates a new Factory with the given dependencies.
func NewFactory(
	opener ports.StorageOpener,
	layout ports.ComponentLayout,
	network ports.Network,
	codec ports.ArchiveCodec,
	indexer ports.Indexer,
	config ports.ConfigLoader,
	plugins ports.PluginRegistry,
	tracer ports.Tracer,
	logger ports.Logger,
) *Factory {
	return &Factory{
		opener:  opener,
		layout:  layout,
		network: network,
		codec:   codec,
		indexer: indexer,
		config:  config,
		plugins: plugins,
		tracer:  tracer,
		logger:  logger,
	}
}

// Create initializes a scope in path. An empty name defaults to the base name
// of path. Creating over an existing scope keeps its descriptor and content.
func (f *Factory) Create(path, name string) (*Scope, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve scope path"), "path", path)
	}
	storage, err := f.opener.Open(domain.ScopeRoot(abs))
	if err != nil {
		return nil, err
	}
	if err := storage.EnsureLayout(); err != nil {
		return nil, err
	}

	desc, err := storage.ReadScopeJSON()
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrScopeNotFound):
		if name == "" {
			name = filepath.Base(abs)
		}
		desc = domain.NewScopeJSON(name)
		if err := storage.WriteScopeJSON(desc); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return f.newScope(abs, storage, desc), nil
}

// Load opens the scope at path or at the closest ancestor holding one.
func (f *Factory) Load(path string) (*Scope, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve scope path"), "path", path)
	}
	for dir := abs; ; dir = filepath.Dir(dir) {
		if f.opener.Exists(domain.ScopeRoot(dir)) {
			return f.LoadAt(dir)
		}
		if filepath.Dir(dir) == dir {
			return nil, zerr.With(zerr.Wrap(domain.ErrScopeNotFound, "no scope in path or its parents"), "path", abs)
		}
	}
}

// LoadAt opens the scope rooted exactly at path.
func (f *Factory) LoadAt(path string) (*Scope, error) {
	storage, err := f.opener.Open(domain.ScopeRoot(path))
	if err != nil {
		return nil, err
	}
	desc, err := storage.ReadScopeJSON()
	if err != nil {
		return nil, err
	}
	return f.newScope(path, storage, desc), nil
}

// OpenService loads the scope rooted at path for a filesystem transport.
func (f *Factory) OpenService(_ context.Context, path string) (ports.ScopeService, error) {
	s, err := f.LoadAt(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (f *Factory) newScope(path string, storage ports.Storage, desc domain.ScopeJSON) *Scope {
	return &Scope{
		path:    path,
		desc:    desc,
		storage: storage,
		factory: f,
	}
}
