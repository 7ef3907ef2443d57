package ports

import "go.trai.ch/texpkg/internal/core/domain"

// ConfigLoader defines the interface for loading the run configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns it with every default applied.
	Load(path string) (*domain.Config, error)
}
