package usecase

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/witnet/witnet-evm/internal/domain"
)

// EncodeReportParams contains parameters for encoding a data push report
type EncodeReportParams struct {
	Report *domain.DataPushReport
}

// EncodeReportResult contains the tuple, message and digest of a report.
// Message and Digest are unset when the tuple cannot be ABI-encoded.
type EncodeReportResult struct {
	Tuple   domain.ReportTuple
	Message hexutil.Bytes
	Digest  common.Hash
}

// EncodeReport encodes a data push report for on-chain submission
type EncodeReport struct {
	encoder ReportEncoder
}

// NewEncodeReport creates a new EncodeReport use case
func NewEncodeReport(encoder ReportEncoder) *EncodeReport {
	return &EncodeReport{encoder: encoder}
}

// Run executes the use case. The tuple is always returned; an encoding
// failure is returned alongside it.
func (uc *EncodeReport) Run(ctx context.Context, params EncodeReportParams) (*EncodeReportResult, error) {
	if params.Report == nil {
		return nil, errors.New("no report to encode")
	}

	result := &EncodeReportResult{
		Tuple: uc.encoder.EncodeReportTuple(params.Report),
	}

	message, err := uc.encoder.EncodeReportMessage(params.Report)
	if err != nil {
		return result, err
	}
	result.Message = message

	digest, err := uc.encoder.EncodeReportDigest(params.Report)
	if err != nil {
		return result, err
	}
	result.Digest = digest

	return result, nil
}
