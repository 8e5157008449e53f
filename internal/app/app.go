// Package app implements the application layer for bit.
package app

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"go.trai.ch/bit/internal/adapters/network/wire" //nolint:depguard // Wired in app layer
	"go.trai.ch/bit/internal/adapters/telemetry"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/core/ports"
	"go.trai.ch/bit/internal/engine/consumer"
	"go.trai.ch/bit/internal/engine/scope"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	scopes    *scope.Factory
	consumers *consumer.Loader
	config    ports.ConfigLoader
	logger    ports.Logger
	dir       string
}

// New creates a new App instance.
func New(
	scopes *scope.Factory,
	consumers *consumer.Loader,
	config ports.ConfigLoader,
	log ports.Logger,
) *App {
	return &App{
		scopes:    scopes,
		consumers: consumers,
		config:    config,
		logger:    log,
		dir:       ".",
	}
}

// WithDir sets the directory commands resolve the project and scope from.
func (a *App) WithDir(dir string) *App {
	a.dir = dir
	return a
}

// LogOptions configures the logger for one invocation.
type LogOptions struct {
	JSON  bool
	Quiet bool
}

type configurableLogger interface {
	SetJSON(enable bool)
	SetLevel(level slog.Level)
}

// ConfigureLogging applies opts when the logger supports them.
func (a *App) ConfigureLogging(opts LogOptions) {
	l, ok := a.logger.(configurableLogger)
	if !ok {
		return
	}
	l.SetJSON(opts.JSON)
	if opts.Quiet {
		l.SetLevel(slog.LevelWarn)
	}
}

// EnableTracing reports every finished span through the logger. The returned
// function flushes the spans and must be called before exit.
func (a *App) EnableTracing() func(context.Context) error {
	return telemetry.Install(a.logger)
}

// withScope loads the scope enclosing the working directory for the duration of fn.
func (a *App) withScope(fn func(*scope.Scope) error) (err error) {
	s, err := a.scopes.Load(a.dir)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.Close()) }()
	return fn(s)
}

// withConsumer loads the project enclosing the working directory for the duration of fn.
func (a *App) withConsumer(fn func(*consumer.Consumer) error) (err error) {
	c, err := a.consumers.Load(a.dir)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, c.Close()) }()
	return fn(c)
}

// InitOptions configuration for the Init method.
type InitOptions struct {
	// Bare creates a scope without a project manifest.
	Bare bool
	// Name overrides the scope name of a bare scope.
	Name string
}

// Init creates a project, or a bare scope, in path.
func (a *App) Init(_ context.Context, path string, opts InitOptions) (string, error) {
	if opts.Bare {
		s, err := a.scopes.Create(path, opts.Name)
		if err != nil {
			return "", err
		}
		return s.Path(), s.Close()
	}

	c, err := a.consumers.Init(path)
	if err != nil {
		return "", err
	}
	return c.Path(), c.Close()
}

// Create lays out a new inline component.
func (a *App) Create(_ context.Context, rawID string, withSpec bool) (bit *domain.Bit, err error) {
	id, err := domain.ParseBitID(rawID)
	if err != nil {
		return nil, err
	}
	err = a.withConsumer(func(c *consumer.Consumer) error {
		bit, err = c.Create(id, withSpec)
		return err
	})
	return bit, err
}

// Remove deletes an inline component.
func (a *App) Remove(_ context.Context, rawID string) error {
	id, err := domain.ParseBitID(rawID)
	if err != nil {
		return err
	}
	return a.withConsumer(func(c *consumer.Consumer) error {
		return c.Remove(id)
	})
}

// ListInline returns the project's inline components.
func (a *App) ListInline(_ context.Context) (bits domain.Bits, err error) {
	err = a.withConsumer(func(c *consumer.Consumer) error {
		bits, err = c.ListInline()
		return err
	})
	return bits, err
}

// Export publishes an inline component and returns it after its closure.
func (a *App) Export(ctx context.Context, rawID string) (bits domain.Bits, err error) {
	id, err := domain.ParseBitID(rawID)
	if err != nil {
		return nil, err
	}
	err = a.withConsumer(func(c *consumer.Consumer) error {
		bits, err = c.Export(ctx, id)
		return err
	})
	return bits, err
}

// Import writes the closures of rawIDs, or of the manifest's dependencies, into the project.
func (a *App) Import(ctx context.Context, rawIDs []string) (bits domain.Bits, err error) {
	ids, err := domain.ParseBitIDs(rawIDs)
	if err != nil {
		return nil, err
	}
	err = a.withConsumer(func(c *consumer.Consumer) error {
		bits, err = c.Import(ctx, ids)
		return err
	})
	return bits, err
}

// Test runs an inline component's tester.
func (a *App) Test(ctx context.Context, rawID string) (report domain.TestReport, err error) {
	id, err := domain.ParseBitID(rawID)
	if err != nil {
		return domain.TestReport{}, err
	}
	err = a.withConsumer(func(c *consumer.Consumer) error {
		report, err = c.Test(ctx, id)
		return err
	})
	return report, err
}

// Build compiles the inline component rawID in place.
func (a *App) Build(ctx context.Context, rawID string) (bit *domain.Bit, err error) {
	id, err := domain.ParseBitID(rawID)
	if err != nil {
		return nil, err
	}
	err = a.withConsumer(func(c *consumer.Consumer) error {
		bit, err = c.Build(ctx, id)
		return err
	})
	return bit, err
}

// Modify checks the bit rawID out into the project's inline components.
func (a *App) Modify(ctx context.Context, rawID string) (bit *domain.Bit, err error) {
	id, err := domain.ParseBitID(rawID)
	if err != nil {
		return nil, err
	}
	err = a.withConsumer(func(c *consumer.Consumer) error {
		bit, err = c.Modify(ctx, id)
		return err
	})
	return bit, err
}

// Get resolves rawID and returns its dependency closure followed by the bit.
func (a *App) Get(ctx context.Context, rawID string) (bits domain.Bits, err error) {
	id, err := domain.ParseBitID(rawID)
	if err != nil {
		return nil, err
	}
	err = a.withScope(func(s *scope.Scope) error {
		bits, err = s.Get(ctx, id)
		return err
	})
	return bits, err
}

// Show returns the bit addressed by rawID without its dependencies.
func (a *App) Show(ctx context.Context, rawID string) (bit *domain.Bit, err error) {
	id, err := domain.ParseBitID(rawID)
	if err != nil {
		return nil, err
	}
	err = a.withScope(func(s *scope.Scope) error {
		bit, err = s.GetOne(ctx, id)
		return err
	})
	return bit, err
}

// List returns the ids owned by the local scope, or by the remote alias.
func (a *App) List(ctx context.Context, alias string) (ids []string, err error) {
	err = a.withScope(func(s *scope.Scope) error {
		if alias == "" {
			ids, err = s.ListIDs(ctx)
			return err
		}
		remote, err := s.ListRemote(ctx, alias)
		if err != nil {
			return err
		}
		ids = remote.Strings()
		return nil
	})
	return ids, err
}

// Push sends the local closures of rawIDs to the remote alias, or the default remote.
func (a *App) Push(ctx context.Context, rawIDs []string, alias string) (pushed domain.BitIDs, err error) {
	ids, err := domain.ParseBitIDs(rawIDs)
	if err != nil {
		return nil, err
	}
	err = a.withScope(func(s *scope.Scope) error {
		pushed, err = s.Push(ctx, ids, alias)
		return err
	})
	return pushed, err
}

// SearchOptions configuration for the Search method.
type SearchOptions struct {
	// Remote queries the index of this alias instead of the local one.
	Remote string
	// Reindex rebuilds the local index first.
	Reindex bool
}

// Search queries a search index.
func (a *App) Search(ctx context.Context, query string, opts SearchOptions) (results []domain.SearchResult, err error) {
	err = a.withScope(func(s *scope.Scope) error {
		if opts.Reindex {
			if err := s.Reindex(ctx); err != nil {
				return err
			}
		}
		if opts.Remote == "" {
			results, err = s.SearchLocally(ctx, query)
			return err
		}
		results, err = s.Search(ctx, query, opts.Remote)
		return err
	})
	return results, err
}

// Describe reports the identity of the local scope, or of the remote alias.
func (a *App) Describe(ctx context.Context, alias string) (desc domain.ScopeDescription, err error) {
	err = a.withScope(func(s *scope.Scope) error {
		if alias == "" {
			desc = s.Describe()
			return nil
		}
		desc, err = s.DescribeRemote(ctx, alias)
		return err
	})
	return desc, err
}

// Remotes lists the global remotes, or the merged view of the enclosing scope.
func (a *App) Remotes(_ context.Context, global bool) ([]domain.Remote, error) {
	if global {
		cfg, err := a.config.LoadGlobal()
		if err != nil {
			return nil, err
		}
		return cfg.Remotes.List(), nil
	}

	var remotes domain.Remotes
	err := a.withScope(func(s *scope.Scope) error {
		var err error
		remotes, err = s.Remotes()
		return err
	})
	if err != nil {
		return nil, err
	}
	return remotes.List(), nil
}

// AddRemote registers rawAlias in the enclosing scope or in the global configuration.
func (a *App) AddRemote(_ context.Context, rawAlias, host string, global bool) error {
	r := domain.NewRemote(rawAlias, host)
	if !global {
		return a.withScope(func(s *scope.Scope) error {
			return s.AddRemote(r)
		})
	}

	if _, _, err := r.Endpoint(); err != nil {
		return err
	}
	cfg, err := a.config.LoadGlobal()
	if err != nil {
		return err
	}
	if cfg.Remotes == nil {
		cfg.Remotes = domain.Remotes{}
	}
	cfg.Remotes[r.Alias] = r
	return a.config.SaveGlobal(cfg)
}

// RemoveRemote unregisters alias from the enclosing scope or from the global configuration.
func (a *App) RemoveRemote(_ context.Context, alias string, global bool) error {
	if !global {
		return a.withScope(func(s *scope.Scope) error {
			return s.RemoveRemote(alias)
		})
	}

	cfg, err := a.config.LoadGlobal()
	if err != nil {
		return err
	}
	r, err := cfg.Remotes.Get(alias)
	if err != nil {
		return err
	}
	delete(cfg.Remotes, r.Alias)
	if cfg.DefaultRemote == r.Alias {
		cfg.DefaultRemote = ""
	}
	return a.config.SaveGlobal(cfg)
}

// Pack writes rawID's archive into the scope's tmp directory and returns its path.
func (a *App) Pack(ctx context.Context, rawID string) (path string, err error) {
	id, err := domain.ParseBitID(rawID)
	if err != nil {
		return "", err
	}
	err = a.withScope(func(s *scope.Scope) error {
		bit, err := s.GetOne(ctx, id)
		if err != nil {
			return err
		}
		path, err = s.PrepareBitRegistration(bit)
		return err
	})
	return path, err
}

// Upload publishes the archive at path into the enclosing scope.
func (a *App) Upload(ctx context.Context, path string) error {
	contents, err := os.ReadFile(path) //nolint:gosec // path is given by the user
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}
	return a.withScope(func(s *scope.Scope) error {
		return s.Upload(ctx, contents)
	})
}

// Serve exposes the enclosing scope over the wire protocol until ctx is done.
func (a *App) Serve(ctx context.Context, address string) error {
	return a.withScope(func(s *scope.Scope) error {
		return wire.NewServer(s, a.logger).ListenAndServe(ctx, address)
	})
}
