package abi

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/domain/radon"
)

type notAnAsset struct{ radon.Script }

func TestEncodeRadonAsset(t *testing.T) {
	encoder := NewRadonEncoder()

	priceScript := &radon.Script{Ops: []radon.Operator{
		{Opcode: 0x77, Args: []any{"price"}},
		{Opcode: 0x72},
	}}
	priceBytecode := hexutil.Bytes{0x82, 0x82, 0x18, 0x77, 0x65, 'p', 'r', 'i', 'c', 'e', 0x18, 0x72}

	tests := []struct {
		name  string
		asset radon.Asset
		want  any
	}{
		{
			name: "retrieval with script",
			asset: radon.Retrieval{
				Method:  radon.MethodHTTPPost,
				URL:     "https://api.example.com/price",
				Body:    `{"pair":"BTC/USD"}`,
				Headers: []radon.Header{{"Accept", "application/json"}, {"X-Key", "k"}},
				Script:  priceScript,
			},
			want: RetrievalTuple{
				Method:  3,
				URL:     "https://api.example.com/price",
				Body:    `{"pair":"BTC/USD"}`,
				Headers: [][2]string{{"Accept", "application/json"}, {"X-Key", "k"}},
				Script:  priceBytecode,
			},
		},
		{
			name:  "retrieval without script",
			asset: radon.Retrieval{Method: radon.MethodRNG},
			want: RetrievalTuple{
				Method:  2,
				Headers: [][2]string{},
				Script:  hexutil.Bytes{0x80},
			},
		},
		{
			name:  "retrieval pointer",
			asset: &radon.Retrieval{Method: radon.MethodHTTPGet, URL: "https://x"},
			want: RetrievalTuple{
				Method:  1,
				URL:     "https://x",
				Headers: [][2]string{},
				Script:  hexutil.Bytes{0x80},
			},
		},
		{
			name:  "script",
			asset: *priceScript,
			want:  priceBytecode,
		},
		{
			name:  "empty script",
			asset: radon.Script{},
			want:  hexutil.Bytes{0x80},
		},
		{
			name: "reducer",
			asset: radon.Reducer{
				Opcode:  radon.ReduceAverageMedian,
				Filters: []radon.Filter{{Opcode: radon.FilterDeviationStandard, Args: int64(3)}},
			},
			want: ReducerTuple{
				Opcode:  0x05,
				Filters: []FilterTuple{{Opcode: 0x05, Args: hexutil.Bytes{0x03}}},
			},
		},
		{
			name:  "reducer without filters",
			asset: radon.Reducer{Opcode: radon.ReduceMode},
			want:  ReducerTuple{Opcode: 0x02, Filters: []FilterTuple{}},
		},
		{
			name:  "filter with float args",
			asset: radon.Filter{Opcode: radon.FilterDeviationStandard, Args: 1.5},
			want: FilterTuple{
				Opcode: 0x05,
				Args:   hexutil.Bytes{0xfa, 0x3f, 0xc0, 0x00, 0x00},
			},
		},
		{
			name:  "filter with double precision args",
			asset: radon.Filter{Opcode: radon.FilterDeviationStandard, Args: 0.1},
			want: FilterTuple{
				Opcode: 0x05,
				Args:   hexutil.Bytes{0xfb, 0x3f, 0xb9, 0x99, 0x99, 0x99, 0x99, 0x99, 0x9a},
			},
		},
		{
			name:  "filter with zero args",
			asset: radon.Filter{Opcode: radon.FilterDeviationStandard, Args: int64(0)},
			want:  FilterTuple{Opcode: 0x05, Args: hexutil.Bytes{}},
		},
		{
			name:  "filter with empty string args",
			asset: radon.Filter{Opcode: radon.FilterDeviationStandard, Args: ""},
			want:  FilterTuple{Opcode: 0x05, Args: hexutil.Bytes{}},
		},
		{
			name:  "filter with false args",
			asset: radon.Filter{Opcode: radon.FilterDeviationStandard, Args: false},
			want:  FilterTuple{Opcode: 0x05, Args: hexutil.Bytes{}},
		},
		{
			name:  "filter without args",
			asset: radon.Filter{Opcode: radon.FilterMode},
			want:  FilterTuple{Opcode: 0x08, Args: hexutil.Bytes{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encoder.EncodeRadonAsset(tt.asset)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeParsedFilterArgs(t *testing.T) {
	encoder := NewRadonEncoder()

	tests := []struct {
		name string
		json string
		want hexutil.Bytes
	}{
		{name: "single precision", json: `{"kind":"filter","opcode":5,"args":1.5}`, want: hexutil.Bytes{0xfa, 0x3f, 0xc0, 0x00, 0x00}},
		{name: "another single precision", json: `{"kind":"filter","opcode":5,"args":2.5}`, want: hexutil.Bytes{0xfa, 0x40, 0x20, 0x00, 0x00}},
		{name: "integer", json: `{"kind":"filter","opcode":5,"args":3}`, want: hexutil.Bytes{0x03}},
		{name: "zero", json: `{"kind":"filter","opcode":5,"args":0}`, want: hexutil.Bytes{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset, err := radon.ParseAsset([]byte(tt.json))
			require.NoError(t, err)

			got, err := encoder.EncodeRadonAsset(asset)
			require.NoError(t, err)

			tuple, ok := got.(FilterTuple)
			require.True(t, ok)
			assert.Equal(t, tt.want, tuple.Args)
		})
	}
}

func TestEncodeRadonAssetRejectsOthers(t *testing.T) {
	encoder := NewRadonEncoder()

	assets := map[string]radon.Asset{
		"nil":                nil,
		"nil pointer":        (*radon.Reducer)(nil),
		"embedding type":     notAnAsset{},
		"nil filter pointer": (*radon.Filter)(nil),
	}

	for name, asset := range assets {
		t.Run(name, func(t *testing.T) {
			got, err := encoder.EncodeRadonAsset(asset)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, domain.ErrNotRadonAsset))

			var notRadon domain.NotRadonAssetErr
			assert.True(t, errors.As(err, &notRadon))
		})
	}
}

func TestRadonTuplesMarshalJSON(t *testing.T) {
	encoder := NewRadonEncoder()

	encoded, err := encoder.EncodeRadonAsset(radon.Reducer{
		Opcode:  radon.ReduceAverageMean,
		Filters: []radon.Filter{{Opcode: radon.FilterMode}},
	})
	require.NoError(t, err)

	data, err := json.Marshal(encoded)
	require.NoError(t, err)
	assert.JSONEq(t, `[3,[[8,"0x"]]]`, string(data))

	encoded, err = encoder.EncodeRadonAsset(radon.Retrieval{
		Method:  radon.MethodHTTPGet,
		URL:     "https://x",
		Headers: []radon.Header{{"a", "b"}},
	})
	require.NoError(t, err)

	data, err = json.Marshal(encoded)
	require.NoError(t, err)
	assert.JSONEq(t, `[1,"https://x","",[["a","b"]],"0x80"]`, string(data))
}
