package network

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/core/ports"
	"go.trai.ch/zerr"
)

// FSTransport talks to a scope on the local filesystem by opening it in-process.
type FSTransport struct {
	path   string
	opener ports.ScopeOpener

	mu  sync.RWMutex
	svc ports.ScopeService
}

// NewFSTransport creates an unconnected transport for the scope at path.
func NewFSTransport(path string, opener ports.ScopeOpener) *FSTransport {
	return &FSTransport{path: path, opener: opener}
}

// Connect loads the remote scope.
func (t *FSTransport) Connect(ctx context.Context) error {
	if t.opener == nil {
		return zerr.With(zerr.Wrap(domain.ErrTransportNotConnected, "no scope opener configured"), "remote", t.path)
	}
	svc, err := t.opener.OpenService(ctx, t.path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open remote scope"), "remote", t.path)
	}
	t.mu.Lock()
	t.svc = svc
	t.mu.Unlock()
	return nil
}

func (t *FSTransport) service() (ports.ScopeService, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.svc == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrTransportNotConnected, "connect before use"), "remote", t.path)
	}
	return t.svc, nil
}

// Push uploads the payload into the remote scope. Any rejection by the
// remote surfaces as domain.ErrRemoteRejected.
func (t *FSTransport) Push(ctx context.Context, payload domain.Payload) error {
	svc, err := t.service()
	if err != nil {
		return err
	}
	if err := svc.Upload(ctx, payload.Contents); err != nil {
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrArchiveFailed) ||
			errors.Is(err, domain.ErrMalformedID) || errors.Is(err, domain.ErrUnsupportedSchema) {
			return zerr.With(zerr.Wrap(domain.ErrRemoteRejected, err.Error()), "remote", t.path)
		}
		return err
	}
	return nil
}

// Fetch returns serialized bits from the remote scope.
func (t *FSTransport) Fetch(ctx context.Context, ids []string, withDependencies bool) ([]domain.Payload, error) {
	svc, err := t.service()
	if err != nil {
		return nil, err
	}
	return svc.Fetch(ctx, ids, withDependencies)
}

// Search queries the remote index.
func (t *FSTransport) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	svc, err := t.service()
	if err != nil {
		return nil, err
	}
	return svc.SearchLocally(ctx, query)
}

// DescribeScope reports the remote identity.
func (t *FSTransport) DescribeScope(_ context.Context) (domain.ScopeDescription, error) {
	svc, err := t.service()
	if err != nil {
		return domain.ScopeDescription{}, err
	}
	return svc.Describe(), nil
}

// List returns the ids the remote owns.
func (t *FSTransport) List(ctx context.Context) ([]string, error) {
	svc, err := t.service()
	if err != nil {
		return nil, err
	}
	return svc.ListIDs(ctx)
}

// Close drops the loaded scope. When the service holds resources it is closed too.
func (t *FSTransport) Close() error {
	t.mu.Lock()
	svc := t.svc
	t.svc = nil
	t.mu.Unlock()

	if c, ok := svc.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
