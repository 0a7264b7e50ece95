//go:build wireinject
// +build wireinject

package app

import (
	"github.com/amaumene/seasonsync/internal/config"
	"github.com/google/wire"
)

// Initialize builds the application graph from the configuration
func Initialize(cfg *config.Config) (*App, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
