package abi

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// absentHex is what an absent hex field turns into once prefixed. Contracts
// reject it, so messages built from incomplete reports fail to encode.
const absentHex = "0xundefined"

var (
	bytes32Type, _ = abi.NewType("bytes32", "", nil)
	uint64Type, _  = abi.NewType("uint64", "", nil)
	bytesType, _   = abi.NewType("bytes", "", nil)

	queryParamsType, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "resultMaxSize", Type: "uint16"},
		{Name: "witnesses", Type: "uint16"},
		{Name: "unitaryReward", Type: "uint64"},
	})

	// (bytes32 drTxHash, bytes32 queryRadHash, (uint16,uint16,uint64) queryParams,
	//  uint64 resultTimestamp, bytes resultCborBytes)
	reportMessageArgs = abi.Arguments{
		{Name: "drTxHash", Type: bytes32Type},
		{Name: "queryRadHash", Type: bytes32Type},
		{Name: "queryParams", Type: queryParamsType},
		{Name: "resultTimestamp", Type: uint64Type},
		{Name: "resultCborBytes", Type: bytesType},
	}
)

// queryParamsABI mirrors the queryParams tuple for packing
type queryParamsABI struct {
	ResultMaxSize uint16
	Witnesses     uint16
	UnitaryReward uint64
}

// ReportEncoder encodes data push reports. It holds no state.
type ReportEncoder struct{}

var _ usecase.ReportEncoder = (*ReportEncoder)(nil)

// NewReportEncoder creates a new ReportEncoder
func NewReportEncoder() *ReportEncoder {
	return &ReportEncoder{}
}

// EncodeReportTuple maps a report onto its positional tuple. It never fails:
// missing numbers default to zero and missing hex values to "0xundefined".
func (e *ReportEncoder) EncodeReportTuple(report *domain.DataPushReport) domain.ReportTuple {
	if report == nil {
		report = &domain.DataPushReport{}
	}

	tuple := domain.ReportTuple{
		DrTxHash:        prefixHex(report.Hash),
		QueryRadHash:    absentHex,
		ResultCborBytes: absentHex,
	}

	if report.Query != nil {
		tuple.QueryRadHash = prefixHex(report.Query.RadHash)
		tuple.QueryParams = e.EncodeQueryParams(domain.QueryParams{
			Witnesses:     report.Query.Witnesses,
			UnitaryReward: report.Query.UnitaryReward,
		})
	}

	if report.Result != nil {
		tuple.ResultTimestamp = report.Result.Timestamp
		tuple.ResultCborBytes = prefixHex(report.Result.CborBytes)
	}

	return tuple
}

// EncodeQueryParams orders query params as (resultMaxSize, witnesses, unitaryReward).
// resultMaxSize is always zero.
func (e *ReportEncoder) EncodeQueryParams(params domain.QueryParams) domain.QueryParamsTuple {
	return domain.QueryParamsTuple{
		ResultMaxSize: 0,
		Witnesses:     params.Witnesses,
		UnitaryReward: params.UnitaryReward,
	}
}

// EncodeReportMessage ABI-encodes the report tuple
func (e *ReportEncoder) EncodeReportMessage(report *domain.DataPushReport) ([]byte, error) {
	tuple := e.EncodeReportTuple(report)

	drTxHash, err := decodeBytes32("drTxHash", tuple.DrTxHash)
	if err != nil {
		return nil, err
	}
	radHash, err := decodeBytes32("queryRadHash", tuple.QueryRadHash)
	if err != nil {
		return nil, err
	}
	cborBytes, err := hexutil.Decode(tuple.ResultCborBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to decode resultCborBytes %q: %w", tuple.ResultCborBytes, err)
	}

	encoded, err := reportMessageArgs.Pack(
		drTxHash,
		radHash,
		queryParamsABI{
			ResultMaxSize: tuple.QueryParams.ResultMaxSize,
			Witnesses:     tuple.QueryParams.Witnesses,
			UnitaryReward: tuple.QueryParams.UnitaryReward,
		},
		tuple.ResultTimestamp,
		cborBytes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report message: %w", err)
	}

	return encoded, nil
}

// EncodeReportDigest returns the keccak256 hash of the report message
func (e *ReportEncoder) EncodeReportDigest(report *domain.DataPushReport) (common.Hash, error) {
	message, err := e.EncodeReportMessage(report)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(message), nil
}

func prefixHex(value *string) string {
	if value == nil {
		return absentHex
	}
	return "0x" + *value
}

func decodeBytes32(field, value string) ([32]byte, error) {
	var out [32]byte

	data, err := hexutil.Decode(value)
	if err != nil {
		return out, fmt.Errorf("failed to decode %s %q: %w", field, value, err)
	}
	if len(data) != len(out) {
		return out, fmt.Errorf("invalid %s length: expected 32 bytes, got %d", field, len(data))
	}

	copy(out[:], data)
	return out, nil
}
