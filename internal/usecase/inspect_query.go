package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/witnet/witnet-evm/internal/domain"
)

// InspectQueryParams contains parameters for inspecting a WitOracle query
type InspectQueryParams struct {
	QueryID *big.Int
}

// InspectQueryResult contains the status of a query
type InspectQueryResult struct {
	Network   string
	WitOracle common.Address
	// Registry is the zero address when the oracle does not report one
	Registry common.Address
	QueryID  *big.Int
	Status   domain.QueryStatus
}

// InspectQuery reads the status of a query from the WitOracle of the
// connected network
type InspectQuery struct {
	client    ChainClient
	networks  NetworkResolver
	addresses AddressBookRepository
	wrappers  WrapperFactory
	log       *slog.Logger
}

// NewInspectQuery creates a new InspectQuery use case
func NewInspectQuery(
	client ChainClient,
	networks NetworkResolver,
	addresses AddressBookRepository,
	wrappers WrapperFactory,
	log *slog.Logger,
) *InspectQuery {
	return &InspectQuery{
		client:    client,
		networks:  networks,
		addresses: addresses,
		wrappers:  wrappers,
		log:       log,
	}
}

// Run executes the use case
func (uc *InspectQuery) Run(ctx context.Context, params InspectQueryParams) (*InspectQueryResult, error) {
	if params.QueryID == nil || params.QueryID.Sign() < 0 {
		return nil, fmt.Errorf("invalid query id: %v", params.QueryID)
	}

	chainID, err := uc.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	network, ok := uc.networks.ResolveNetworkByChainID(chainID)
	if !ok {
		return nil, domain.UnsupportedChainErr{ChainID: chainID}
	}

	book, err := uc.addresses.Load(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("failed to load addresses of %s: %w", network, err)
	}

	wrapper, err := uc.wrappers.Bind(network, book, domain.WitOracle)
	if err != nil {
		return nil, err
	}

	oracle, ok := wrapper.(QueryStatusReader)
	if !ok {
		return nil, domain.ArtifactUnavailableErr{Network: network, Artifact: domain.WitOracle}
	}

	status, err := oracle.QueryStatus(ctx, params.QueryID)
	if err != nil {
		return nil, fmt.Errorf("failed to read status of query %s: %w", params.QueryID, err)
	}

	result := &InspectQueryResult{
		Network:   network,
		WitOracle: wrapper.Address(),
		QueryID:   params.QueryID,
		Status:    status,
	}

	if reader, ok := wrapper.(RadonRegistryReader); ok {
		registry, err := reader.Registry(ctx)
		if err != nil {
			uc.log.Debug("failed to read radon registry", "network", network, "error", err)
		} else {
			result.Registry = registry
		}
	}

	return result, nil
}
