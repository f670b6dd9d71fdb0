//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/witnet/witnet-evm/internal/adapters"
	"github.com/witnet/witnet-evm/internal/config"
	"github.com/witnet/witnet-evm/internal/logging"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDiscoverArtifacts,
		usecase.NewListNetworks,
		usecase.NewEncodeReport,
		usecase.NewEncodeRadonAsset,
		usecase.NewInspectQuery,

		// App
		NewApp,
	)
	return nil, nil
}
