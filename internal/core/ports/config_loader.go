package ports

import "go.trai.ch/clasp/internal/core/domain"

// ConfigLoader loads the workspace dependency declaration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the declaration from the given working directory and
	// returns the configuration to resolve.
	Load(cwd string) (*domain.Configuration, error)
}
