// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bit/internal/adapters/archive"
	_ "go.trai.ch/bit/internal/adapters/config"
	_ "go.trai.ch/bit/internal/adapters/indexer"
	_ "go.trai.ch/bit/internal/adapters/logger"
	_ "go.trai.ch/bit/internal/adapters/network"
	_ "go.trai.ch/bit/internal/adapters/plugin"
	_ "go.trai.ch/bit/internal/adapters/repository"
	_ "go.trai.ch/bit/internal/adapters/shell"
	_ "go.trai.ch/bit/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/bit/internal/app"
)
