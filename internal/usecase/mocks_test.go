package usecase_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	abiadapter "github.com/witnet/witnet-evm/internal/adapters/abi"
	"github.com/witnet/witnet-evm/internal/adapters/network"
	"github.com/witnet/witnet-evm/internal/assets"
	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// MockChainClient is a mock implementation of ChainClient
type MockChainClient struct {
	mock.Mock
}

func (m *MockChainClient) ChainID(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockChainClient) CodeAt(ctx context.Context, address common.Address) ([]byte, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockChainClient) CallContract(ctx context.Context, msg ethereum.CallMsg) ([]byte, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockChainClient) Signer(ctx context.Context) (common.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).(common.Address), args.Error(1)
}

// MockContractCaller is a mock implementation of ContractCaller, matched on
// address and method
type MockContractCaller struct {
	mock.Mock
}

func (m *MockContractCaller) Call(ctx context.Context, address common.Address, contractABI *abi.ABI, method string, args ...any) ([]any, error) {
	ret := m.Called(address, method)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]any), ret.Error(1)
}

// fakeAddressBook serves a fixed address book per network
type fakeAddressBook struct {
	books map[string]domain.AddressBook
	err   error
	loads int
}

func (f *fakeAddressBook) Load(ctx context.Context, network string) (domain.AddressBook, error) {
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	if book, ok := f.books[network]; ok {
		return book, nil
	}
	return domain.AddressBook{}, nil
}

// fakeRadonAssets declares a fixed set of templates and modals
type fakeRadonAssets struct {
	exists    bool
	templates map[string]bool
	modals    map[string]bool
}

func (f *fakeRadonAssets) Exists() bool { return f.exists }

func (f *fakeRadonAssets) TemplateNames(context.Context) (map[string]bool, error) {
	return f.templates, nil
}

func (f *fakeRadonAssets) ModalNames(context.Context) (map[string]bool, error) {
	return f.modals, nil
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}
func (m *MockProgressSink) Info(string)  {}
func (m *MockProgressSink) Error(string) {}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixtureNetworks() *network.Resolver {
	return network.NewResolver([]domain.NetworkConfig{
		{Name: "ethereum", NetworkID: json.Number("1"), Mainnet: true, Symbol: "ETH"},
		{Name: "polygon:amoy", NetworkID: json.Number("80002"), Symbol: "POL"},
	})
}

func fixtureRegistry(t *testing.T, settings abiadapter.ArtifactSettings) *abiadapter.Registry {
	t.Helper()
	abis, err := abiadapter.LoadABIs(assets.ABIs, assets.ABIDir)
	require.NoError(t, err)
	return abiadapter.NewRegistry(abis, settings)
}
