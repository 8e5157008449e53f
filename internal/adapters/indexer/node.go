package indexer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bit/internal/core/ports"
)

// NodeID is the unique identifier for the indexer Graft node.
const NodeID graft.ID = "adapter.indexer"

func init() {
	graft.Register(graft.Node[ports.Indexer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Indexer, error) {
			return New(), nil
		},
	})
}
