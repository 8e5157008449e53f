// Package plugin runs compiler and tester plugins declared in the global configuration.
package plugin

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Command runs a declared plugin through an executor.
type Command struct {
	name     string
	spec     domain.PluginCommand
	executor ports.Executor
}

// Build runs the build command in dir and collects dir/dist.
func (c *Command) Build(ctx context.Context, dir string) (domain.Artifact, error) {
	if len(c.spec.Build) == 0 {
		return domain.Artifact{}, zerr.With(zerr.Wrap(domain.ErrPluginNotFound, "plugin has no build command"), "plugin", c.name)
	}

	var out outputBuffer
	err := c.executor.Execute(ctx, domain.Command{
		Args: c.spec.Build,
		Dir:  dir,
		Env:  map[string]string{"BIT_DIST": filepath.Join(dir, domain.DistDirName)},
	}, &out, &out)
	if err != nil {
		return domain.Artifact{}, zerr.With(zerr.With(zerr.Wrap(domain.ErrPluginFailed, err.Error()), "plugin", c.name), "output", out.String())
	}

	files, err := collect(filepath.Join(dir, domain.DistDirName))
	if err != nil {
		return domain.Artifact{}, err
	}
	return domain.Artifact{Files: files}, nil
}

// Test runs the test command in dir. A failing command yields a failed report, not an error.
func (c *Command) Test(ctx context.Context, dir string) (domain.TestReport, error) {
	if len(c.spec.Test) == 0 {
		return domain.TestReport{}, zerr.With(zerr.Wrap(domain.ErrPluginNotFound, "plugin has no test command"), "plugin", c.name)
	}

	var out outputBuffer
	err := c.executor.Execute(ctx, domain.Command{Args: c.spec.Test, Dir: dir}, &out, &out)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.TestReport{}, ctxErr
	}
	return domain.TestReport{Passed: err == nil, Output: out.String()}, nil
}

// outputBuffer interleaves stdout and stderr, which are written from separate goroutines.
type outputBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *outputBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *outputBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func collect(root string) (map[string][]byte, error) {
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	files := make(map[string][]byte)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path) //nolint:gosec // walking plugin output
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = data
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(domain.ErrPluginFailed, err.Error())
	}
	return files, nil
}

// Registry implements ports.PluginRegistry. The configuration is read on first lookup.
type Registry struct {
	loader   ports.ConfigLoader
	executor ports.Executor

	once    sync.Once
	plugins map[string]domain.PluginCommand
	err     error
}

// NewRegistry creates a Registry.
func NewRegistry(loader ports.ConfigLoader, executor ports.Executor) *Registry {
	return &Registry{loader: loader, executor: executor}
}

// Lookup returns the plugin registered under name.
func (r *Registry) Lookup(name string) (ports.Plugin, error) {
	r.once.Do(func() {
		cfg, err := r.loader.LoadGlobal()
		if err != nil {
			r.err = err
			return
		}
		r.plugins = cfg.Plugins
	})
	if r.err != nil {
		return nil, r.err
	}

	spec, ok := r.plugins[name]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrPluginNotFound, "unknown plugin"), "plugin", name)
	}
	return &Command{name: name, spec: spec, executor: r.executor}, nil
}
