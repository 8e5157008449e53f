package plugin

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bit/internal/adapters/config"
	"go.trai.ch/bit/internal/adapters/shell"
	"go.trai.ch/bit/internal/core/ports"
)

// NodeID is the unique identifier for the plugin registry Graft node.
const NodeID graft.ID = "adapter.plugin"

func init() {
	graft.Register(graft.Node[ports.PluginRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.PluginRegistry, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(loader, executor), nil
		},
	})
}
