package ports

import "go.trai.ch/prism/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration starting at the given working directory and
	// returns the securities, portfolios, functions and views it declares.
	Load(cwd string) (*domain.Catalog, error)

	// DiscoverRoot walks up from cwd to find the directory containing prism.yaml.
	DiscoverRoot(cwd string) (string, error)
}
