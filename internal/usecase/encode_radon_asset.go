package usecase

import (
	"context"

	"github.com/witnet/witnet-evm/internal/domain/radon"
)

// EncodeRadonAssetParams contains parameters for encoding a Radon asset
type EncodeRadonAssetParams struct {
	Asset radon.Asset
}

// EncodeRadonAssetResult contains the ABI tuple of the asset
type EncodeRadonAssetResult struct {
	Kind    string
	Encoded any
}

// EncodeRadonAsset maps a Radon asset onto its ABI tuple shape
type EncodeRadonAsset struct {
	encoder RadonEncoder
}

// NewEncodeRadonAsset creates a new EncodeRadonAsset use case
func NewEncodeRadonAsset(encoder RadonEncoder) *EncodeRadonAsset {
	return &EncodeRadonAsset{encoder: encoder}
}

// Run executes the use case
func (uc *EncodeRadonAsset) Run(ctx context.Context, params EncodeRadonAssetParams) (*EncodeRadonAssetResult, error) {
	encoded, err := uc.encoder.EncodeRadonAsset(params.Asset)
	if err != nil {
		return nil, err
	}

	return &EncodeRadonAssetResult{
		Kind:    radon.KindOf(params.Asset),
		Encoded: encoded,
	}, nil
}
