package network

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the network Graft node.
const NodeID graft.ID = "adapter.network"

func init() {
	graft.Register(graft.Node[*Dialer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Dialer, error) {
			return NewDialer(), nil
		},
	})
}
