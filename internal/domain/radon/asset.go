// Package radon models the Radon assets that make up a Witnet data request:
// retrievals, scripts, reducers and filters.
package radon

import (
	"fmt"
	"strings"
)

// Asset is implemented by the four Radon asset kinds only.
type Asset interface {
	radonAsset()
}

// RetrievalMethod identifies how a data source is queried
type RetrievalMethod uint8

const (
	MethodUnknown  RetrievalMethod = 0
	MethodHTTPGet  RetrievalMethod = 1
	MethodRNG      RetrievalMethod = 2
	MethodHTTPPost RetrievalMethod = 3
	MethodHTTPHead RetrievalMethod = 4
)

var methodNames = map[string]RetrievalMethod{
	"http-get":  MethodHTTPGet,
	"rng":       MethodRNG,
	"http-post": MethodHTTPPost,
	"http-head": MethodHTTPHead,
}

// ParseRetrievalMethod accepts names like "HTTP-GET" or "http-post".
func ParseRetrievalMethod(name string) (RetrievalMethod, error) {
	for key, method := range methodNames {
		if strings.EqualFold(key, name) {
			return method, nil
		}
	}
	return MethodUnknown, fmt.Errorf("unknown retrieval method: %s", name)
}

func (m RetrievalMethod) String() string {
	for name, method := range methodNames {
		if method == m {
			return name
		}
	}
	return "unknown"
}

// Reducer opcodes
const (
	ReduceMode               uint8 = 0x02
	ReduceAverageMean        uint8 = 0x03
	ReduceAverageMedian      uint8 = 0x05
	ReduceDeviationStandard  uint8 = 0x07
	ReduceConcatenateAndHash uint8 = 0x0B
)

// Filter opcodes
const (
	FilterDeviationStandard uint8 = 0x05
	FilterMode              uint8 = 0x08
)

// Header is a single HTTP header of a retrieval, kept as an ordered pair.
type Header [2]string

// Retrieval is a data source: how and where to fetch, and the script applied to the response.
type Retrieval struct {
	Method  RetrievalMethod
	URL     string
	Body    string
	Headers []Header
	Script  *Script
}

// Reducer aggregates values after applying its filters.
type Reducer struct {
	Opcode  uint8
	Filters []Filter
}

// Filter drops values not satisfying its predicate.
type Filter struct {
	Opcode uint8
	Args   any
}

func (Retrieval) radonAsset() {}
func (Script) radonAsset()    {}
func (Reducer) radonAsset()   {}
func (Filter) radonAsset()    {}

// KindOf names the kind of asset, or returns "" for anything else
func KindOf(asset Asset) string {
	switch asset.(type) {
	case Retrieval, *Retrieval:
		return KindRetrieval
	case Script, *Script:
		return KindScript
	case Reducer, *Reducer:
		return KindReducer
	case Filter, *Filter:
		return KindFilter
	default:
		return ""
	}
}
