package ports

import "go.trai.ch/xmk/internal/core/domain"

// ConfigLoader defines the interface for loading the xmk configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory.
	Load(cwd string) (*domain.Config, error)
}
