package render

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/domain/radon"
	"github.com/witnet/witnet-evm/internal/usecase"
)

func TestReportRenderer(t *testing.T) {
	tuple := domain.ReportTuple{
		DrTxHash:        "0xdeadbeef",
		QueryRadHash:    "0xcafe",
		QueryParams:     domain.QueryParamsTuple{Witnesses: 3, UnitaryReward: 100},
		ResultTimestamp: 12345,
		ResultCborBytes: "0x01",
	}

	t.Run("tuple only", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewReportRenderer(&buf, false).Render(&usecase.EncodeReportResult{Tuple: tuple}))
		assert.Equal(t, "Tuple:  [\"0xdeadbeef\",\"0xcafe\",[0,3,100],12345,\"0x01\"]\n", buf.String())
	})

	t.Run("with message and digest", func(t *testing.T) {
		digest := common.HexToHash("0xabcdef")
		var buf bytes.Buffer
		require.NoError(t, NewReportRenderer(&buf, false).Render(&usecase.EncodeReportResult{
			Tuple:   tuple,
			Message: hexutil.Bytes{0x01, 0x02},
			Digest:  digest,
		}))
		assert.Contains(t, buf.String(), "Message: 0x0102\n")
		assert.Contains(t, buf.String(), "Digest:  "+digest.Hex()+"\n")
	})
}

func TestRadonRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := NewRadonRenderer(&buf).Render(&usecase.EncodeRadonAssetResult{
		Kind:    radon.KindScript,
		Encoded: hexutil.Bytes(radon.EmptyScriptBytecode),
	})
	require.NoError(t, err)
	assert.Equal(t, "\"0x80\"\n", buf.String())
}

func TestQueryRenderer(t *testing.T) {
	oracle := common.HexToAddress("0x77703aE126B971c9946d562F41Dd47071dA00777")
	registry := common.HexToAddress("0x000B61Fe075F545fd37767f40391658275900000")

	tests := []struct {
		name     string
		registry common.Address
		wantReg  bool
	}{
		{name: "with registry", registry: registry, wantReg: true},
		{name: "without registry", wantReg: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := NewQueryRenderer(&buf, false).Render(&usecase.InspectQueryResult{
				Network:   "ethereum:mainnet",
				WitOracle: oracle,
				Registry:  tt.registry,
				QueryID:   big.NewInt(42),
				Status:    domain.QueryStatusFinalized,
			})
			require.NoError(t, err)

			out := buf.String()
			assert.Contains(t, out, "Network:   ethereum:mainnet\n")
			assert.Contains(t, out, "Query:     #42\n")
			assert.Contains(t, out, "Status:    Finalized\n")
			if tt.wantReg {
				assert.Contains(t, out, "Registry:  "+registry.Hex()+"\n")
			} else {
				assert.NotContains(t, out, "Registry:")
			}
		})
	}
}
