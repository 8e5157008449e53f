package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bit/internal/core/ports"
)

// NodeID is the unique identifier for the archive codec Graft node.
const NodeID graft.ID = "adapter.archive"

func init() {
	graft.Register(graft.Node[ports.ArchiveCodec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArchiveCodec, error) {
			return NewTarCodec(), nil
		},
	})
}
