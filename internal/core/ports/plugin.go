package ports

import (
	"context"

	"go.trai.ch/bit/internal/core/domain"
)

//go:generate mockgen -source=plugin.go -destination=mocks/mock_plugin.go -package=mocks

// Plugin builds and tests a bit laid out in a directory.
type Plugin interface {
	// Build compiles the bit in dir and returns its output files.
	Build(ctx context.Context, dir string) (domain.Artifact, error)

	// Test runs the bit's spec in dir.
	Test(ctx context.Context, dir string) (domain.TestReport, error)
}

// PluginRegistry resolves compiler and tester names to plugins.
type PluginRegistry interface {
	// Lookup returns the plugin registered under name, or domain.ErrPluginNotFound.
	Lookup(name string) (Plugin, error)
}
