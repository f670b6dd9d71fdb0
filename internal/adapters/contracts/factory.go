package contracts

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// legacyRandomnessABI serves randomness keys with no bundled ABI of their own
const legacyRandomnessABI = domain.WitRandomnessV2

// Factory builds wrappers from the bundled ABIs. It never touches the network.
type Factory struct {
	catalog usecase.ArtifactCatalog
	caller  usecase.ContractCaller
}

var _ usecase.WrapperFactory = (*Factory)(nil)

// NewFactory creates a new wrapper factory
func NewFactory(catalog usecase.ArtifactCatalog, caller usecase.ContractCaller) *Factory {
	return &Factory{catalog: catalog, caller: caller}
}

// NewWrapper returns the wrapper of key at address, or false when key has no
// wrapper or no ABI.
func (f *Factory) NewWrapper(key string, address common.Address) (any, bool) {
	abiName := key
	if domain.IsRandomnessArtifact(key) {
		if _, ok := f.catalog.ABI(key); !ok {
			abiName = legacyRandomnessABI
		}
	}

	contractABI, ok := f.catalog.ABI(abiName)
	if !ok {
		return nil, false
	}
	base := artifact{key: key, address: address, abi: contractABI, caller: f.caller}

	switch {
	case key == domain.WitOracle:
		return &WitOracle{artifact: base}, true
	case key == domain.WitOracleRadonRegistry:
		return &WitOracleRadonRegistry{artifact: base}, true
	case key == domain.WitOracleRadonRequestFactory:
		return &WitOracleRadonRequestFactory{artifact: base}, true
	case key == domain.WitPriceFeeds:
		return &WitPriceFeeds{artifact: base}, true
	case key == domain.WitPriceFeedsLegacy:
		return &WitPriceFeeds{artifact: base, legacy: true}, true
	case domain.IsRandomnessArtifact(key):
		return &WitRandomness{artifact: base}, true
	}

	return nil, false
}

// Bind returns the wrapper of key on network using the given address book,
// failing with domain.ArtifactUnavailableErr when the key has no usable
// address or no wrapper.
func (f *Factory) Bind(network string, book domain.AddressBook, key string) (Wrapper, error) {
	unavailable := domain.ArtifactUnavailableErr{Network: network, Artifact: key}

	hex, ok := book.Core()[key]
	if !ok || !common.IsHexAddress(hex) {
		return nil, unavailable
	}
	address := common.HexToAddress(hex)
	if address == (common.Address{}) {
		return nil, unavailable
	}

	wrapper, ok := f.NewWrapper(key, address)
	if !ok {
		return nil, unavailable
	}

	return wrapper.(Wrapper), nil
}
