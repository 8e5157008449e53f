package scope

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/core/ports"
	"go.trai.ch/bit/internal/engine/remote"
	"go.trai.ch/zerr"
)

// Scope is a versioned repository of bits on disk.
type Scope struct {
	path    string
	storage ports.Storage
	factory *Factory

	mu   sync.RWMutex
	desc domain.ScopeJSON

	indexing sync.WaitGroup
}

// Name returns the scope name.
func (s *Scope) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.desc.Name
}

// Path returns the directory holding the scope.
func (s *Scope) Path() string {
	return s.path
}

// Storage returns the on-disk subtrees of the scope.
func (s *Scope) Storage() ports.Storage {
	return s.storage
}

// Describe reports the scope's identity.
func (s *Scope) Describe() domain.ScopeDescription {
	return domain.ScopeDescription{Name: s.Name()}
}

// EnsureDir recreates any missing subtree of the scope.
func (s *Scope) EnsureDir() error {
	return s.storage.EnsureLayout()
}

// Remotes merges the global remotes with the ones stored in scope.json.
// The result is recomputed on every call.
func (s *Scope) Remotes() (domain.Remotes, error) {
	remotes, _, err := s.remotes()
	return remotes, err
}

func (s *Scope) remotes() (domain.Remotes, string, error) {
	cfg, err := s.factory.config.LoadGlobal()
	if err != nil {
		return nil, "", err
	}
	s.mu.RLock()
	local := domain.RemotesFromMap(s.desc.Remotes)
	s.mu.RUnlock()
	return domain.MergeRemotes(cfg.Remotes, local), cfg.DefaultRemote, nil
}

// LocalRemotes returns only the remotes stored in scope.json.
func (s *Scope) LocalRemotes() domain.Remotes {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.RemotesFromMap(s.desc.Remotes)
}

// AddRemote stores r in scope.json, replacing any remote with the same alias.
func (s *Scope) AddRemote(r domain.Remote) error {
	if _, _, err := r.Endpoint(); err != nil {
		return err
	}
	return s.updateRemotes(func(remotes domain.Remotes) error {
		remotes[r.Alias] = r
		return nil
	})
}

// RemoveRemote deletes the remote stored under alias from scope.json.
func (s *Scope) RemoveRemote(alias string) error {
	return s.updateRemotes(func(remotes domain.Remotes) error {
		r, err := remotes.Get(alias)
		if err != nil {
			return err
		}
		delete(remotes, r.Alias)
		return nil
	})
}

func (s *Scope) updateRemotes(edit func(domain.Remotes) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	remotes := domain.RemotesFromMap(s.desc.Remotes)
	if err := edit(remotes); err != nil {
		return err
	}
	desc := s.desc
	desc.Remotes = remotes.ToMap()
	if err := s.storage.WriteScopeJSON(desc); err != nil {
		return err
	}
	s.desc = desc
	return nil
}

// connect opens a client to the remote registered under alias. An empty
// alias selects the primary remote, then the configured default.
func (s *Scope) connect(ctx context.Context, alias string) (*remote.Client, error) {
	remotes, fallback, err := s.remotes()
	if err != nil {
		return nil, err
	}
	if alias == "" {
		if primary, ok := remotes.Primary(); ok {
			return remote.Connect(ctx, s.factory.network, s.factory.codec, primary)
		}
		if fallback == "" {
			return nil, zerr.Wrap(domain.ErrRemoteNotFound, "no remote given and no primary remote configured")
		}
		alias = fallback
	}
	r, err := remotes.Get(alias)
	if err != nil {
		return nil, err
	}
	return remote.Connect(ctx, s.factory.network, s.factory.codec, r)
}

// List returns the ids of every bit the scope owns.
func (s *Scope) List(_ context.Context) (domain.BitIDs, error) {
	return s.storage.Sources().List()
}

// ListIDs returns the owned ids prefixed with the local scope marker.
func (s *Scope) ListIDs(ctx context.Context) ([]string, error) {
	ids, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = domain.LocalScopeMarker + "/" + id.Local().String()
	}
	return out, nil
}

// ListRemote returns the ids owned by the remote registered under alias.
func (s *Scope) ListRemote(ctx context.Context, alias string) (domain.BitIDs, error) {
	client, err := s.connect(ctx, alias)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()
	return client.List(ctx)
}

// DescribeRemote reports the identity of the remote registered under alias.
func (s *Scope) DescribeRemote(ctx context.Context, alias string) (domain.ScopeDescription, error) {
	client, err := s.connect(ctx, alias)
	if err != nil {
		return domain.ScopeDescription{}, err
	}
	defer func() { _ = client.Close() }()
	return client.Describe(ctx)
}

// SearchLocally queries the scope's own index.
func (s *Scope) SearchLocally(ctx context.Context, query string) ([]domain.SearchResult, error) {
	return s.factory.indexer.Search(ctx, s.storage.Root(), query)
}

// Search queries the index of the remote registered under alias, or the
// local index when alias is empty.
func (s *Scope) Search(ctx context.Context, query, alias string) ([]domain.SearchResult, error) {
	if alias == "" {
		return s.SearchLocally(ctx, query)
	}
	client, err := s.connect(ctx, alias)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()
	return client.Search(ctx, query)
}

// Reindex rebuilds the search index from every owned bit.
func (s *Scope) Reindex(ctx context.Context) error {
	ids, err := s.storage.Sources().List()
	if err != nil {
		return err
	}
	bits := make([]*domain.Bit, 0, len(ids))
	for _, id := range ids {
		bit, err := s.storage.Sources().Load(id)
		if err != nil {
			return err
		}
		bits = append(bits, bit)
	}
	return s.factory.indexer.IndexAll(ctx, s.storage.Root(), bits)
}

// index hands bit to the indexer in the background. Failures only warn.
func (s *Scope) index(ctx context.Context, bit *domain.Bit) {
	ctx = context.WithoutCancel(ctx)
	s.indexing.Go(func() {
		if err := s.factory.indexer.Index(ctx, s.storage.Root(), bit); err != nil {
			s.factory.logger.Warn(fmt.Sprintf("indexing %s failed: %v", bit.ID(), err))
		}
	})
}

// PrepareBitRegistration packs bit into tmp/<name>_<version>.tar and returns the path.
func (s *Scope) PrepareBitRegistration(bit *domain.Bit) (string, error) {
	contents, err := s.factory.codec.Encode(bit)
	if err != nil {
		return "", err
	}
	tmp := s.storage.Tmp()
	if err := tmp.EnsureDir(); err != nil {
		return "", err
	}
	path := filepath.Join(tmp.Path(), fmt.Sprintf("%s_%s.tar", bit.Meta.Name, bit.Meta.Version))
	if err := os.WriteFile(path, contents, domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return path, nil
}

// Close waits for pending index jobs.
func (s *Scope) Close() error {
	s.indexing.Wait()
	return nil
}
