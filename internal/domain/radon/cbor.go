package radon

import (
	"math"

	"github.com/fxamacker/cbor/v2"
)

// encMode writes non-finite floats as half precision, matching the bytecode
// produced by the Witnet toolkit.
var encMode = mustEncMode(cbor.EncOptions{
	NaNConvert: cbor.NaNConvert7e00,
	InfConvert: cbor.InfConvertFloat16,
})

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	mode, err := opts.EncMode()
	if err != nil {
		panic(err)
	}
	return mode
}

// EncodeCBOR serializes a Radon value. Floats are narrowed the way a
// JavaScript number would be: integral values become integers and values
// that survive a float32 round trip are written in single precision.
func EncodeCBOR(v any) ([]byte, error) {
	return encMode.Marshal(compactNumbers(v))
}

func compactNumbers(v any) any {
	switch value := v.(type) {
	case float64:
		return compactFloat(value)
	case float32:
		return compactFloat(float64(value))
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = compactNumbers(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, item := range value {
			out[k] = compactNumbers(item)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(value))
		for k, item := range value {
			out[k] = compactNumbers(item)
		}
		return out
	default:
		return v
	}
}

func compactFloat(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 && !(f == 0 && math.Signbit(f)) {
		return int64(f)
	}
	if float64(float32(f)) == f {
		return float32(f)
	}
	return f
}
