package adapters

import (
	"github.com/google/wire"
	abiadapter "github.com/witnet/witnet-evm/internal/adapters/abi"
	"github.com/witnet/witnet-evm/internal/adapters/blockchain"
	"github.com/witnet/witnet-evm/internal/adapters/contracts"
	"github.com/witnet/witnet-evm/internal/adapters/fs"
	"github.com/witnet/witnet-evm/internal/adapters/network"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewAddressBookStore,
	wire.Bind(new(usecase.AddressBookRepository), new(*fs.AddressBookStore)),

	fs.NewRadonAssetsStore,
	wire.Bind(new(usecase.RadonAssetsRepository), new(*fs.RadonAssetsStore)),
)

// NetworkSet provides the bundled supported networks table
var NetworkSet = wire.NewSet(
	network.NewBundledResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*network.Resolver)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewClient,
	wire.Bind(new(usecase.ChainClient), new(*blockchain.Client)),
)

// ABISet provides the artifact catalog, the contract caller and the encoders
var ABISet = wire.NewSet(
	abiadapter.NewBundledRegistry,
	wire.Bind(new(usecase.ArtifactCatalog), new(*abiadapter.Registry)),

	abiadapter.NewCaller,
	wire.Bind(new(usecase.ContractCaller), new(*abiadapter.Caller)),

	abiadapter.NewReportEncoder,
	wire.Bind(new(usecase.ReportEncoder), new(*abiadapter.ReportEncoder)),

	abiadapter.NewRadonEncoder,
	wire.Bind(new(usecase.RadonEncoder), new(*abiadapter.RadonEncoder)),
)

// ContractsSet provides the framework contract wrappers
var ContractsSet = wire.NewSet(
	contracts.NewFactory,
	wire.Bind(new(usecase.WrapperFactory), new(*contracts.Factory)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	NetworkSet,
	BlockchainSet,
	ABISet,
	ContractsSet,
)
