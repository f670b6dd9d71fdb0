package app

import (
	"github.com/witnet/witnet-evm/internal/domain/config"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	DiscoverArtifacts *usecase.DiscoverArtifacts
	ListNetworks      *usecase.ListNetworks
	EncodeReport      *usecase.EncodeReport
	EncodeRadonAsset  *usecase.EncodeRadonAsset
	InspectQuery      *usecase.InspectQuery
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	discoverArtifacts *usecase.DiscoverArtifacts,
	listNetworks *usecase.ListNetworks,
	encodeReport *usecase.EncodeReport,
	encodeRadonAsset *usecase.EncodeRadonAsset,
	inspectQuery *usecase.InspectQuery,
) (*App, error) {
	return &App{
		Config:            cfg,
		DiscoverArtifacts: discoverArtifacts,
		ListNetworks:      listNetworks,
		EncodeReport:      encodeReport,
		EncodeRadonAsset:  encodeRadonAsset,
		InspectQuery:      inspectQuery,
	}, nil
}
