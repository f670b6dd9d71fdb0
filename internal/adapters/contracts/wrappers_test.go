package contracts

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	abiadapter "github.com/witnet/witnet-evm/internal/adapters/abi"
	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/usecase"
)

type mockCaller struct {
	mock.Mock
}

func (m *mockCaller) Call(ctx context.Context, address common.Address, contractABI *abi.ABI, method string, args ...any) ([]any, error) {
	ret := m.Called(address, method, args)
	values, _ := ret.Get(0).([]any)
	return values, ret.Error(1)
}

func newTestFactory(t *testing.T) (*Factory, *mockCaller) {
	t.Helper()
	registry, err := abiadapter.NewBundledRegistry()
	require.NoError(t, err)
	caller := &mockCaller{}
	return NewFactory(registry, caller), caller
}

var testAddress = common.HexToAddress("0x77703aE126B971c9946d562F41Dd47071dA00777")

func TestFactoryNewWrapper(t *testing.T) {
	factory, caller := newTestFactory(t)

	tests := []struct {
		key  string
		want any
	}{
		{key: domain.WitOracle, want: &WitOracle{}},
		{key: domain.WitOracleRadonRegistry, want: &WitOracleRadonRegistry{}},
		{key: domain.WitOracleRadonRequestFactory, want: &WitOracleRadonRequestFactory{}},
		{key: domain.WitPriceFeeds, want: &WitPriceFeeds{}},
		{key: domain.WitPriceFeedsLegacy, want: &WitPriceFeeds{}},
		{key: domain.WitRandomnessV2, want: &WitRandomness{}},
		{key: domain.WitRandomnessV3, want: &WitRandomness{}},
		{key: "WitnetRandomness", want: &WitRandomness{}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			wrapper, ok := factory.NewWrapper(tt.key, testAddress)
			require.True(t, ok)
			assert.IsType(t, tt.want, wrapper)
			assert.Equal(t, tt.key, wrapper.(Wrapper).Key())
			assert.Equal(t, testAddress, wrapper.(Wrapper).Address())
		})
	}

	t.Run("unknown key", func(t *testing.T) {
		wrapper, ok := factory.NewWrapper("WitOracleRadonRequestTemplate", testAddress)
		assert.False(t, ok)
		assert.Nil(t, wrapper)
	})

	t.Run("legacy flag", func(t *testing.T) {
		wrapper, _ := factory.NewWrapper(domain.WitPriceFeedsLegacy, testAddress)
		assert.True(t, wrapper.(*WitPriceFeeds).Legacy())
	})

	caller.AssertNotCalled(t, "Call", mock.Anything, mock.Anything, mock.Anything)
}

func TestFactoryBind(t *testing.T) {
	factory, _ := newTestFactory(t)
	book := domain.AddressBook{
		domain.NamespaceCore: {
			domain.WitOracle:             testAddress.Hex(),
			domain.WitPriceFeedsLegacy:   "0x0000000000000000000000000000000000000000",
			domain.WitPriceFeeds:         "not-an-address",
			"WitOracleRadonRequestModal": testAddress.Hex(),
		},
	}

	wrapper, err := factory.Bind("ethereum:mainnet", book, domain.WitOracle)
	require.NoError(t, err)
	assert.IsType(t, &WitOracle{}, wrapper)

	for _, key := range []string{domain.WitPriceFeedsLegacy, domain.WitPriceFeeds, domain.WitRandomnessV3, "WitOracleRadonRequestModal"} {
		t.Run(key, func(t *testing.T) {
			_, err := factory.Bind("ethereum:mainnet", book, key)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrArtifactUnavailable))
			assert.EqualError(t, err, "EVM network ethereum:mainnet => artifact is not available: "+key)
		})
	}
}

func TestWitOracleQueryStatus(t *testing.T) {
	factory, caller := newTestFactory(t)
	wrapper, _ := factory.NewWrapper(domain.WitOracle, testAddress)
	oracle := wrapper.(*WitOracle)
	ctx := context.Background()

	caller.On("Call", testAddress, "getQueryStatus", []any{big.NewInt(7)}).Return([]any{uint8(3)}, nil).Once()
	status, err := oracle.QueryStatus(ctx, big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, domain.QueryStatusFinalized, status)

	caller.On("Call", testAddress, "getQueryStatus", []any{big.NewInt(8)}).Return(nil, errors.New("reverted")).Once()
	status, err = oracle.QueryStatus(ctx, big.NewInt(8))
	assert.Error(t, err)
	assert.Equal(t, domain.QueryStatusVoid, status)

	caller.AssertExpectations(t)
}

func TestWitOracleRegistry(t *testing.T) {
	registryAddress := common.HexToAddress("0x000B61Fe075F545fd37767f40391658275900000")

	tests := []struct {
		name    string
		values  []any
		err     error
		want    common.Address
		wantErr bool
	}{
		{name: "bound registry", values: []any{registryAddress}, want: registryAddress},
		{name: "reverted", err: errors.New("execution reverted"), wantErr: true},
		{name: "unexpected type", values: []any{"0x01"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, caller := newTestFactory(t)
			wrapper, _ := factory.NewWrapper(domain.WitOracle, testAddress)

			caller.On("Call", testAddress, "registry", []any(nil)).Return(tt.values, tt.err)

			got, err := wrapper.(usecase.RadonRegistryReader).Registry(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			caller.AssertExpectations(t)
		})
	}
}

func TestWitOracleRadonRegistryLookup(t *testing.T) {
	factory, caller := newTestFactory(t)
	wrapper, _ := factory.NewWrapper(domain.WitOracleRadonRegistry, testAddress)
	registry := wrapper.(*WitOracleRadonRegistry)

	radHash := [32]byte{0x01}
	caller.On("Call", testAddress, "bytecodeOf", []any{radHash}).Return([]any{[]byte{0x0a, 0x0b}}, nil)

	bytecode, err := registry.LookupRadonRequestBytecode(context.Background(), radHash)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0x0b}, bytecode)
}

func TestWitPriceFeedsLookupPriceFeedMapper(t *testing.T) {
	factory, caller := newTestFactory(t)
	ctx := context.Background()
	feedID := [4]byte{0xde, 0xad, 0xbe, 0xef}

	wrapper, _ := factory.NewWrapper(domain.WitPriceFeeds, testAddress)
	feeds := wrapper.(*WitPriceFeeds)

	caller.On("Call", testAddress, "lookupPriceFeedMapper", []any{feedID}).
		Return([]any{uint8(3), []string{"Price-BTC/USD-6", "Price-USD/EUR-6"}}, nil).Once()

	mapper, err := feeds.LookupPriceFeedMapper(ctx, feedID)
	require.NoError(t, err)
	assert.Equal(t, domain.MappingProduct, mapper.Algorithm)
	assert.Equal(t, []string{"Price-BTC/USD-6", "Price-USD/EUR-6"}, mapper.Dependencies)

	caller.On("Call", testAddress, "lookupPriceFeedMapper", []any{feedID}).
		Return([]any{uint8(9)}, nil).Once()
	_, err = feeds.LookupPriceFeedMapper(ctx, feedID)
	assert.Error(t, err)

	legacyWrapper, _ := factory.NewWrapper(domain.WitPriceFeedsLegacy, testAddress)
	_, err = legacyWrapper.(*WitPriceFeeds).LookupPriceFeedMapper(ctx, feedID)
	assert.Error(t, err)

	caller.On("Call", testAddress, "lookupCaption", []any{feedID}).Return([]any{"Price-BTC/USD-6"}, nil).Once()
	caption, err := legacyWrapper.(*WitPriceFeeds).LookupCaption(ctx, feedID)
	require.NoError(t, err)
	assert.Equal(t, "Price-BTC/USD-6", caption)
}

func TestWitRandomnessIsRandomized(t *testing.T) {
	factory, caller := newTestFactory(t)
	wrapper, _ := factory.NewWrapper(domain.WitRandomnessV3, testAddress)
	randomness := wrapper.(*WitRandomness)

	caller.On("Call", testAddress, "isRandomized", []any{big.NewInt(100)}).Return([]any{true}, nil)

	randomized, err := randomness.IsRandomized(context.Background(), big.NewInt(100))
	require.NoError(t, err)
	assert.True(t, randomized)
}

func TestArtifactIntrospection(t *testing.T) {
	factory, caller := newTestFactory(t)
	wrapper, _ := factory.NewWrapper(domain.WitOracle, testAddress)
	oracle := wrapper.(*WitOracle)
	ctx := context.Background()

	caller.On("Call", testAddress, "class", []any(nil)).Return([]any{"WitOracleTrustableDefault"}, nil)
	caller.On("Call", testAddress, "version", []any(nil)).Return([]any{"2.0.16"}, nil)

	class, err := oracle.Class(ctx)
	require.NoError(t, err)
	assert.Equal(t, "WitOracleTrustableDefault", class)

	version, err := oracle.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2.0.16", version)
}
