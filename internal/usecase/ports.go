package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/domain/radon"
)

// ChainClient is a live connection to an EVM JSON-RPC node
type ChainClient interface {
	ChainID(ctx context.Context) (uint64, error)
	CodeAt(ctx context.Context, address common.Address) ([]byte, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg) ([]byte, error)
	// Signer returns the first account exposed by the node, or the zero address.
	Signer(ctx context.Context) (common.Address, error)
}

// NetworkResolver answers questions about the supported networks table
type NetworkResolver interface {
	ResolveNetworkByChainID(chainID uint64) (string, bool)
	IsNetworkSupported(name string) bool
	IsNetworkMainnet(name string) bool
	NetworkSymbol(name string) string
	Networks() []domain.NetworkConfig
}

// AddressBookRepository loads the merged artifact addresses of a network
type AddressBookRepository interface {
	Load(ctx context.Context, network string) (domain.AddressBook, error)
}

// RadonAssetsRepository lists the Radon templates and modals declared by the
// local project. Exists is false when no assets file is configured.
type RadonAssetsRepository interface {
	Exists() bool
	TemplateNames(ctx context.Context) (map[string]bool, error)
	ModalNames(ctx context.Context) (map[string]bool, error)
}

// ArtifactCatalog knows the bundled ABIs and the base -> implementation
// settings of every network.
type ArtifactCatalog interface {
	ABI(name string) (*abi.ABI, bool)
	BaseClass(network, key string) string
}

// ContractCaller performs read-only contract calls
type ContractCaller interface {
	Call(ctx context.Context, address common.Address, contractABI *abi.ABI, method string, args ...any) ([]any, error)
}

// ArtifactWrapper is a live framework contract bound to its address
type ArtifactWrapper interface {
	Key() string
	Address() common.Address
}

// QueryStatusReader is implemented by WitOracle wrappers
type QueryStatusReader interface {
	QueryStatus(ctx context.Context, queryID *big.Int) (domain.QueryStatus, error)
}

// RadonRegistryReader is implemented by wrappers bound to a Radon registry
type RadonRegistryReader interface {
	Registry(ctx context.Context) (common.Address, error)
}

// WrapperFactory builds live wrappers for the framework roles it knows.
// Construction must not touch the network.
type WrapperFactory interface {
	NewWrapper(key string, address common.Address) (any, bool)
	Bind(network string, book domain.AddressBook, key string) (ArtifactWrapper, error)
}

// ReportEncoder encodes data push reports for on-chain submission
type ReportEncoder interface {
	EncodeReportTuple(report *domain.DataPushReport) domain.ReportTuple
	EncodeReportMessage(report *domain.DataPushReport) ([]byte, error)
	EncodeReportDigest(report *domain.DataPushReport) (common.Hash, error)
	EncodeQueryParams(params domain.QueryParams) domain.QueryParamsTuple
}

// RadonEncoder maps Radon assets onto their ABI tuple shapes
type RadonEncoder interface {
	EncodeRadonAsset(asset radon.Asset) (any, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}
