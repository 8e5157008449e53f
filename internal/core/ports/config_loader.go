package ports

import "go.trai.ch/bit/internal/core/domain"

// ConfigLoader reads and writes the process wide configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// LoadGlobal returns the global configuration. A missing file yields an empty configuration.
	LoadGlobal() (*domain.GlobalConfig, error)

	// SaveGlobal persists the global configuration.
	SaveGlobal(cfg *domain.GlobalConfig) error
}
