// Package consumer implements the project workspace that creates components
// inline, exports them into its scope and imports published bits.
package consumer

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/core/ports"
	"go.trai.ch/bit/internal/engine/scope"
	"go.trai.ch/zerr"
)

const (
	implTemplate = "module.exports = function () {};\n"
	specTemplate = "// specs for the component\n"
)

// Loader creates and loads consumer projects.
type Loader struct {
	scopes  *scope.Factory
	layout  ports.ComponentLayout
	plugins ports.PluginRegistry
	logger  ports.Logger
}

// NewLoader creates a new Loader with the given dependencies.
func NewLoader(scopes *scope.Factory, layout ports.ComponentLayout, plugins ports.PluginRegistry, logger ports.Logger) *Loader {
	return &Loader{scopes: scopes, layout: layout, plugins: plugins, logger: logger}
}

// Init creates a project in path: a manifest and a scope named after the directory.
func (l *Loader) Init(path string) (*Consumer, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project path"), "path", path)
	}

	_, err = l.layout.ReadManifest(abs)
	switch {
	case err == nil:
		return nil, zerr.With(zerr.Wrap(domain.ErrConsumerExists, "project already initialized"), "path", abs)
	case !errors.Is(err, domain.ErrConsumerNotFound):
		return nil, err
	}

	s, err := l.scopes.Create(abs, "")
	if err != nil {
		return nil, err
	}
	manifest := domain.NewConsumerJSON()
	if err := l.layout.WriteManifest(abs, manifest); err != nil {
		return nil, errors.Join(err, s.Close())
	}
	return l.newConsumer(abs, manifest, s), nil
}

// Load opens the project at path or at the closest ancestor holding both a
// manifest and a scope. A component's own bit.json has no scope next to it.
func (l *Loader) Load(path string) (*Consumer, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project path"), "path", path)
	}

	for dir := abs; ; dir = filepath.Dir(dir) {
		manifest, err := l.layout.ReadManifest(dir)
		switch {
		case err == nil:
			s, err := l.scopes.LoadAt(dir)
			if err == nil {
				return l.newConsumer(dir, manifest, s), nil
			}
			if !errors.Is(err, domain.ErrScopeNotFound) {
				return nil, err
			}
		case !errors.Is(err, domain.ErrConsumerNotFound):
			return nil, err
		}
		if filepath.Dir(dir) == dir {
			return nil, zerr.With(zerr.Wrap(domain.ErrConsumerNotFound, "no project in path or its parents"), "path", abs)
		}
	}
}

func (l *Loader) newConsumer(path string, manifest domain.ConsumerJSON, s *scope.Scope) *Consumer {
	return &Consumer{
		path:     path,
		manifest: manifest,
		scope:    s,
		layout:   l.layout,
		plugins:  l.plugins,
		logger:   l.logger,
	}
}

// Consumer is a project that edits components inline and imports bits into components/.
type Consumer struct {
	path     string
	manifest domain.ConsumerJSON
	scope    *scope.Scope
	layout   ports.ComponentLayout
	plugins  ports.PluginRegistry
	logger   ports.Logger
}

// Path returns the project root.
func (c *Consumer) Path() string {
	return c.path
}

// Scope returns the project's own scope.
func (c *Consumer) Scope() *scope.Scope {
	return c.scope
}

// Manifest returns the project manifest.
func (c *Consumer) Manifest() domain.ConsumerJSON {
	return c.manifest
}

// Close waits for the scope's background work.
func (c *Consumer) Close() error {
	return c.scope.Close()
}

// InlineDir returns the working directory of the inline component box/name.
func (c *Consumer) InlineDir(id domain.BitID) string {
	return filepath.Join(c.path, domain.InlineComponentsDirName, id.Box, id.Name)
}

// ComponentDir returns where an imported bit is written. Bits owned by the
// project's scope land under "@this".
func (c *Consumer) ComponentDir(id domain.BitID) string {
	owner := id.Scope
	if owner == "" || owner == c.scope.Name() {
		owner = domain.LocalScopeMarker
	}
	return filepath.Join(c.path, domain.ComponentsDirName, id.Box, id.Name, owner, id.Version)
}

// Create lays out a new inline component using the manifest's compiler and
// tester. An unversioned id starts at the default version.
func (c *Consumer) Create(id domain.BitID, withSpec bool) (*domain.Bit, error) {
	dir := c.InlineDir(id)
	if _, err := os.Stat(dir); err == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrComponentExists, "inline component exists"), "bit", id.FullName())
	}

	version := domain.DefaultBitVersion
	if id.HasVersion() {
		version = id.Version
	}
	meta := domain.NewBitJSON(id.Box, id.Name, version)
	meta.Compiler = c.manifest.Compiler
	meta.Tester = c.manifest.Tester

	bit := domain.NewBit(meta, []byte(implTemplate), nil)
	if withSpec {
		bit.Spec = []byte(specTemplate)
	} else {
		bit.Meta.Spec = ""
	}
	if err := bit.Validate(); err != nil {
		return nil, err
	}
	if err := c.layout.WriteDir(dir, bit); err != nil {
		return nil, err
	}
	return bit, nil
}

// Remove deletes an inline component.
func (c *Consumer) Remove(id domain.BitID) error {
	dir := c.InlineDir(id)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(domain.ErrBitNotFound, "no inline component"), "bit", id.FullName())
	}
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", dir)
	}
	return nil
}

// ListInline loads every inline component, ordered by box then name.
func (c *Consumer) ListInline() (domain.Bits, error) {
	dirs, err := filepath.Glob(filepath.Join(c.path, domain.InlineComponentsDirName, "*", "*"))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	bits := make(domain.Bits, 0, len(dirs))
	for _, dir := range dirs {
		bit, err := c.layout.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		bits = append(bits, bit)
	}
	return bits, nil
}

// Export publishes an inline component into the project's scope and writes
// it, with its dependency closure, into components/.
func (c *Consumer) Export(ctx context.Context, id domain.BitID) (domain.Bits, error) {
	bit, err := c.layout.ReadDir(c.InlineDir(id))
	if err != nil {
		return nil, err
	}
	bits, err := c.scope.Put(ctx, bit)
	if err != nil {
		return nil, err
	}
	if err := c.write(bits); err != nil {
		return nil, err
	}
	c.logger.Info("exported " + bit.ID().String())
	return bits, nil
}

// Import resolves ids and writes every bit of their closures into
// components/. Without ids the manifest's dependencies are imported.
func (c *Consumer) Import(ctx context.Context, ids domain.BitIDs) (domain.Bits, error) {
	if len(ids) == 0 {
		declared, err := c.manifest.DependencyIDs()
		if err != nil {
			return nil, err
		}
		ids = declared
	}
	if len(ids) == 0 {
		return nil, nil
	}

	bits, err := c.scope.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	if err := c.write(bits); err != nil {
		return nil, err
	}
	return bits, nil
}

// Build runs the compiler plugin declared by the inline component in its
// directory and replaces the component's dist/ with the output.
func (c *Consumer) Build(ctx context.Context, id domain.BitID) (*domain.Bit, error) {
	dir := c.InlineDir(id)
	bit, err := c.layout.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	if bit.Meta.Compiler == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrPluginNotFound, "component declares no compiler"), "bit", id.FullName())
	}
	compiler, err := c.plugins.Lookup(bit.Meta.Compiler)
	if err != nil {
		return nil, err
	}
	artifact, err := compiler.Build(ctx, dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "build failed"), "bit", id.FullName())
	}

	dist := filepath.Join(dir, domain.DistDirName)
	if err := os.RemoveAll(dist); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", dist)
	}
	bit.Dist = artifact.Files
	if err := c.layout.WriteDir(dir, bit); err != nil {
		return nil, err
	}
	c.logger.Info("built " + bit.ID().String())
	return bit, nil
}

// Modify checks a published bit out as an inline component. The copy loses
// its owning scope, so exporting it publishes it into this project's scope.
func (c *Consumer) Modify(ctx context.Context, id domain.BitID) (*domain.Bit, error) {
	dir := c.InlineDir(id)
	if _, err := os.Stat(dir); err == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrComponentExists, "inline component exists"), "bit", id.FullName())
	}

	bit, err := c.scope.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}
	bit = bit.WithScope("")
	bit.Dist = nil
	if err := c.layout.WriteDir(dir, bit); err != nil {
		return nil, err
	}
	return bit, nil
}

// Test runs the tester plugin declared by the inline component in its directory.
func (c *Consumer) Test(ctx context.Context, id domain.BitID) (domain.TestReport, error) {
	dir := c.InlineDir(id)
	bit, err := c.layout.ReadDir(dir)
	if err != nil {
		return domain.TestReport{}, err
	}
	if bit.Meta.Tester == "" {
		return domain.TestReport{}, zerr.With(zerr.Wrap(domain.ErrPluginNotFound, "component declares no tester"), "bit", id.FullName())
	}
	tester, err := c.plugins.Lookup(bit.Meta.Tester)
	if err != nil {
		return domain.TestReport{}, err
	}
	return tester.Test(ctx, dir)
}

// write stages each bit in the scope's tmp directory, then replaces its
// components/ directory with the staged copy. Files left over from an earlier
// import do not survive.
func (c *Consumer) write(bits domain.Bits) error {
	tmp := c.scope.Storage().Tmp()
	if err := tmp.EnsureDir(); err != nil {
		return err
	}

	opts := copy.Options{
		OnSymlink: func(_ string) copy.SymlinkAction {
			return copy.Skip
		},
	}

	for _, bit := range bits {
		staging, err := tmp.MkdirTemp(bit.Meta.Name + "-import-*")
		if err != nil {
			return err
		}
		dest := c.ComponentDir(bit.ID())
		err = c.layout.WriteDir(staging, bit)
		if err == nil {
			err = os.RemoveAll(dest)
		}
		if err == nil {
			err = copy.Copy(staging, dest, opts)
		}
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", dest)
		}
		_ = os.RemoveAll(staging)
		if err != nil {
			return err
		}
	}
	return nil
}
