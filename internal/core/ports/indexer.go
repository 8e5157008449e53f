package ports

import (
	"context"

	"go.trai.ch/bit/internal/core/domain"
)

// Indexer maintains the search index of a scope.
//
//go:generate mockgen -source=indexer.go -destination=mocks/mock_indexer.go -package=mocks
type Indexer interface {
	// Index adds or replaces the document for bit in the index stored under scopePath.
	Index(ctx context.Context, scopePath string, bit *domain.Bit) error

	// IndexAll rebuilds the index of scopePath from bits.
	IndexAll(ctx context.Context, scopePath string, bits []*domain.Bit) error

	// Search returns the documents matching query, best match first.
	Search(ctx context.Context, scopePath, query string) ([]domain.SearchResult, error)
}
