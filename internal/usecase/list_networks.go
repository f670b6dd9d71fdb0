package usecase

import (
	"context"
	"strings"

	"github.com/witnet/witnet-evm/internal/domain"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Mainnets and Testnets restrict the listing; both unset lists everything
	Mainnets bool
	Testnets bool

	// Filter keeps networks whose name contains it, ignoring case
	Filter string
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []domain.NetworkConfig
}

// ListNetworks is a use case for listing supported networks
type ListNetworks struct {
	resolver NetworkResolver
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver) *ListNetworks {
	return &ListNetworks{
		resolver: resolver,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	all := uc.resolver.Networks()
	filter := strings.ToLower(params.Filter)

	networks := make([]domain.NetworkConfig, 0, len(all))
	for _, network := range all {
		if params.Mainnets != params.Testnets && network.Mainnet != params.Mainnets {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(network.Name), filter) {
			continue
		}
		networks = append(networks, network)
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}
