package repository

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bit/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the storage opener Graft node.
	NodeID graft.ID = "adapter.repository"
	// LayoutNodeID is the unique identifier for the component layout Graft node.
	LayoutNodeID graft.ID = "adapter.repository.layout"
)

func init() {
	graft.Register(graft.Node[ports.StorageOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StorageOpener, error) {
			return NewOpener(), nil
		},
	})

	graft.Register(graft.Node[ports.ComponentLayout]{
		ID:        LayoutNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ComponentLayout, error) {
			return NewLayout(), nil
		},
	})
}
