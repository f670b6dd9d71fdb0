package abi

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/domain/radon"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// RetrievalTuple is the ABI shape of a Radon retrieval:
// (uint8 method, string url, string body, string[2][] headers, bytes script)
type RetrievalTuple struct {
	Method  uint8
	URL     string
	Body    string
	Headers [][2]string
	Script  hexutil.Bytes
}

// MarshalJSON renders the tuple as a positional array
func (t RetrievalTuple) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.Method, t.URL, t.Body, t.Headers, t.Script})
}

// FilterTuple is the ABI shape of a Radon filter: (uint8 opcode, bytes args)
type FilterTuple struct {
	Opcode uint8
	Args   hexutil.Bytes
}

// MarshalJSON renders the tuple as a positional array
func (t FilterTuple) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.Opcode, t.Args})
}

// ReducerTuple is the ABI shape of a Radon reducer: (uint8 opcode, (uint8,bytes)[] filters)
type ReducerTuple struct {
	Opcode  uint8
	Filters []FilterTuple
}

// MarshalJSON renders the tuple as a positional array
func (t ReducerTuple) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.Opcode, t.Filters})
}

// RadonEncoder maps Radon assets onto their ABI tuple shapes
type RadonEncoder struct{}

var _ usecase.RadonEncoder = (*RadonEncoder)(nil)

// NewRadonEncoder creates a new RadonEncoder
func NewRadonEncoder() *RadonEncoder {
	return &RadonEncoder{}
}

// EncodeRadonAsset returns a RetrievalTuple, a ReducerTuple, a FilterTuple or,
// for scripts, the script bytecode. Anything else is rejected with
// domain.ErrNotRadonAsset.
func (e *RadonEncoder) EncodeRadonAsset(asset radon.Asset) (any, error) {
	switch v := asset.(type) {
	case radon.Retrieval:
		return encodeRetrieval(v)
	case *radon.Retrieval:
		if v != nil {
			return encodeRetrieval(*v)
		}
	case radon.Script:
		return encodeScript(v)
	case *radon.Script:
		if v != nil {
			return encodeScript(*v)
		}
	case radon.Reducer:
		return encodeReducer(v)
	case *radon.Reducer:
		if v != nil {
			return encodeReducer(*v)
		}
	case radon.Filter:
		return encodeFilter(v)
	case *radon.Filter:
		if v != nil {
			return encodeFilter(*v)
		}
	}
	return nil, domain.NotRadonAssetErr{Value: asset}
}

func encodeRetrieval(r radon.Retrieval) (RetrievalTuple, error) {
	tuple := RetrievalTuple{
		Method:  uint8(r.Method),
		URL:     r.URL,
		Body:    r.Body,
		Headers: make([][2]string, 0, len(r.Headers)),
		Script:  append(hexutil.Bytes{}, radon.EmptyScriptBytecode...),
	}

	for _, header := range r.Headers {
		tuple.Headers = append(tuple.Headers, [2]string(header))
	}

	if r.Script != nil {
		bytecode, err := encodeScript(*r.Script)
		if err != nil {
			return RetrievalTuple{}, err
		}
		tuple.Script = bytecode
	}

	return tuple, nil
}

func encodeScript(s radon.Script) (hexutil.Bytes, error) {
	bytecode, err := s.Bytecode()
	if err != nil {
		return nil, err
	}
	return bytecode, nil
}

func encodeReducer(r radon.Reducer) (ReducerTuple, error) {
	tuple := ReducerTuple{
		Opcode:  r.Opcode,
		Filters: make([]FilterTuple, 0, len(r.Filters)),
	}

	for i, filter := range r.Filters {
		encoded, err := encodeFilter(filter)
		if err != nil {
			return ReducerTuple{}, fmt.Errorf("filter %d: %w", i, err)
		}
		tuple.Filters = append(tuple.Filters, encoded)
	}

	return tuple, nil
}

func encodeFilter(f radon.Filter) (FilterTuple, error) {
	tuple := FilterTuple{Opcode: f.Opcode, Args: hexutil.Bytes{}}
	if isFalsy(f.Args) {
		return tuple, nil
	}

	args, err := radon.EncodeCBOR(f.Args)
	if err != nil {
		return FilterTuple{}, fmt.Errorf("failed to encode filter args: %w", err)
	}
	tuple.Args = args

	return tuple, nil
}

// isFalsy reports whether filter args carry no value. Zero, empty string and
// false are dropped rather than encoded.
func isFalsy(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case bool:
		return !value
	case string:
		return value == ""
	case float64:
		return value == 0 || math.IsNaN(value)
	case float32:
		return value == 0 || math.IsNaN(float64(value))
	case int:
		return value == 0
	case int8:
		return value == 0
	case int16:
		return value == 0
	case int32:
		return value == 0
	case int64:
		return value == 0
	case uint:
		return value == 0
	case uint8:
		return value == 0
	case uint16:
		return value == 0
	case uint32:
		return value == 0
	case uint64:
		return value == 0
	default:
		return false
	}
}
