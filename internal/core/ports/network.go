package ports

import (
	"context"

	"go.trai.ch/bit/internal/core/domain"
)

//go:generate mockgen -source=network.go -destination=mocks/mock_network.go -package=mocks

// Transport is a connection to a remote scope.
//
// Connect must be called first and is idempotent. Every other call made
// before Connect fails with domain.ErrTransportNotConnected.
type Transport interface {
	// Connect establishes readiness.
	Connect(ctx context.Context) error

	// Push uploads one serialized bit. Validation failures on the remote side
	// surface as domain.ErrRemoteRejected.
	Push(ctx context.Context, payload domain.Payload) error

	// Fetch returns serialized bits in request order and fails as a whole with
	// domain.ErrBitNotFound when any id is missing. With withDependencies set,
	// every requested id expands to its dependency closure ending with the bit.
	Fetch(ctx context.Context, ids []string, withDependencies bool) ([]domain.Payload, error)

	// Search queries the remote's index.
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)

	// DescribeScope reports the remote scope's identity.
	DescribeScope(ctx context.Context) (domain.ScopeDescription, error)

	// List returns the ids of every bit the remote owns.
	List(ctx context.Context) ([]string, error)

	// Close releases the connection.
	Close() error
}

// Network creates transports for remotes.
type Network interface {
	// Dial returns an unconnected transport for the remote's host.
	Dial(remote domain.Remote) (Transport, error)
}

// ScopeService is the payload level surface a scope exposes to transports.
type ScopeService interface {
	// Upload decodes and publishes a pushed bit.
	Upload(ctx context.Context, contents []byte) error

	// Fetch serializes the requested bits following the Transport.Fetch contract.
	Fetch(ctx context.Context, ids []string, withDependencies bool) ([]domain.Payload, error)

	// SearchLocally queries the scope's own index.
	SearchLocally(ctx context.Context, query string) ([]domain.SearchResult, error)

	// Describe reports the scope's identity.
	Describe() domain.ScopeDescription

	// ListIDs returns the ids of every bit the scope owns.
	ListIDs(ctx context.Context) ([]string, error)
}

// ScopeOpener opens a scope stored on disk.
type ScopeOpener interface {
	// OpenService loads the scope rooted at path.
	OpenService(ctx context.Context, path string) (ScopeService, error)
}
