// Package contracts provides typed, read-only wrappers over the live
// framework contracts.
package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// Wrapper is implemented by every live framework wrapper
type Wrapper = usecase.ArtifactWrapper

var (
	_ usecase.QueryStatusReader   = (*WitOracle)(nil)
	_ usecase.RadonRegistryReader = (*WitOracle)(nil)
)

// artifact holds what every wrapper needs to issue calls
type artifact struct {
	key     string
	address common.Address
	abi     *abi.ABI
	caller  usecase.ContractCaller
}

func (a *artifact) Key() string             { return a.key }
func (a *artifact) Address() common.Address { return a.address }

// Class returns the implementation class reported by the contract
func (a *artifact) Class(ctx context.Context) (string, error) {
	return usecase.CallOne[string](ctx, a.caller, a.address, a.abi, "class")
}

// Version returns the version tag reported by the contract
func (a *artifact) Version(ctx context.Context) (string, error) {
	return usecase.CallOne[string](ctx, a.caller, a.address, a.abi, "version")
}

// WitOracle wraps the oracle entry point
type WitOracle struct {
	artifact
}

// QueryStatus returns the lifecycle stage of a query
func (w *WitOracle) QueryStatus(ctx context.Context, queryID *big.Int) (domain.QueryStatus, error) {
	status, err := usecase.CallOne[uint8](ctx, w.caller, w.address, w.abi, "getQueryStatus", queryID)
	if err != nil {
		return domain.QueryStatusVoid, err
	}
	return domain.DecodeQueryStatus(status), nil
}

// Registry returns the address of the Radon registry bound to the oracle
func (w *WitOracle) Registry(ctx context.Context) (common.Address, error) {
	return usecase.CallOne[common.Address](ctx, w.caller, w.address, w.abi, "registry")
}

// WitOracleRadonRegistry wraps the registry of verified Radon requests
type WitOracleRadonRegistry struct {
	artifact
}

// LookupRadonRequestBytecode returns the serialized Radon request behind radHash
func (w *WitOracleRadonRegistry) LookupRadonRequestBytecode(ctx context.Context, radHash [32]byte) ([]byte, error) {
	return usecase.CallOne[[]byte](ctx, w.caller, w.address, w.abi, "bytecodeOf", radHash)
}

// WitOracleRadonRequestFactory wraps the factory of request templates and modals
type WitOracleRadonRequestFactory struct {
	artifact
}

// WitPriceFeeds wraps the price feeds router. Legacy deployments answer
// LookupCaption only.
type WitPriceFeeds struct {
	artifact
	legacy bool
}

// Legacy reports whether the wrapper targets the legacy price feeds contract
func (w *WitPriceFeeds) Legacy() bool { return w.legacy }

// LookupCaption returns the caption of a feed, e.g. "Price-BTC/USD-6"
func (w *WitPriceFeeds) LookupCaption(ctx context.Context, feedID [4]byte) (string, error) {
	return usecase.CallOne[string](ctx, w.caller, w.address, w.abi, "lookupCaption", feedID)
}

// LookupPriceFeedMapper returns how a routed feed is computed from its dependencies
func (w *WitPriceFeeds) LookupPriceFeedMapper(ctx context.Context, feedID [4]byte) (*domain.PriceFeedMapper, error) {
	if w.legacy {
		return nil, fmt.Errorf("%s does not support price feed mappers", w.key)
	}

	values, err := w.caller.Call(ctx, w.address, w.abi, "lookupPriceFeedMapper", feedID)
	if err != nil {
		return nil, err
	}
	if len(values) != 2 {
		return nil, fmt.Errorf("lookupPriceFeedMapper returned %d values, expected 2", len(values))
	}

	algorithm, ok := values[0].(uint8)
	if !ok {
		return nil, fmt.Errorf("unexpected mapping algorithm type %T", values[0])
	}
	dependencies, ok := values[1].([]string)
	if !ok {
		return nil, fmt.Errorf("unexpected dependencies type %T", values[1])
	}

	return &domain.PriceFeedMapper{
		Algorithm:    domain.DecodePriceFeedMappingAlgorithm(algorithm),
		Dependencies: dependencies,
	}, nil
}

// WitRandomness wraps any randomness provider version
type WitRandomness struct {
	artifact
}

// IsRandomized reports whether randomness was already solved for block
func (w *WitRandomness) IsRandomized(ctx context.Context, block *big.Int) (bool, error) {
	return usecase.CallOne[bool](ctx, w.caller, w.address, w.abi, "isRandomized", block)
}
