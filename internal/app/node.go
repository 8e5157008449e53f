package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bit/internal/adapters/archive"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bit/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/bit/internal/adapters/indexer"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bit/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/bit/internal/adapters/network"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bit/internal/adapters/plugin"     //nolint:depguard // Wired in app layer
	"go.trai.ch/bit/internal/adapters/repository" //nolint:depguard // Wired in app layer
	"go.trai.ch/bit/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/bit/internal/core/ports"
	"go.trai.ch/bit/internal/engine/consumer"
	"go.trai.ch/bit/internal/engine/scope"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			repository.NodeID,
			repository.LayoutNodeID,
			network.NodeID,
			archive.NodeID,
			indexer.NodeID,
			config.NodeID,
			plugin.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	opener, err := graft.Dep[ports.StorageOpener](ctx)
	if err != nil {
		return nil, err
	}
	layout, err := graft.Dep[ports.ComponentLayout](ctx)
	if err != nil {
		return nil, err
	}
	dialer, err := graft.Dep[*network.Dialer](ctx)
	if err != nil {
		return nil, err
	}
	codec, err := graft.Dep[ports.ArchiveCodec](ctx)
	if err != nil {
		return nil, err
	}
	idx, err := graft.Dep[ports.Indexer](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	plugins, err := graft.Dep[ports.PluginRegistry](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	scopes := scope.NewFactory(opener, layout, dialer, codec, idx, loader, plugins, tracer, log)
	// file:// remotes open scopes through the factory that dials them.
	dialer.SetOpener(scopes)

	return New(scopes, consumer.NewLoader(scopes, layout, plugins, log), loader, log), nil
}
