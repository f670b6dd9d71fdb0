package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrRPCUnreachable is returned when the ETH/RPC gateway cannot be reached
	ErrRPCUnreachable = errors.New("unable to connect to local ETH/RPC gateway")

	// ErrUnsupportedChain is returned when a chain ID maps to no supported network
	ErrUnsupportedChain = errors.New("unsupported EVM chain")

	// ErrNotRadonAsset is returned when encoding a value that is not a Radon asset
	ErrNotRadonAsset = errors.New("not a Radon asset")

	// ErrArtifactUnavailable is returned when an artifact has no ABI or no address
	ErrArtifactUnavailable = errors.New("artifact is not available")
)

// UnsupportedChainErr reports a chain id absent from the supported networks table.
type UnsupportedChainErr struct {
	ChainID uint64
}

func (e UnsupportedChainErr) Error() string {
	return fmt.Sprintf("connected to unsupported EVM chain id: %d", e.ChainID)
}

func (e UnsupportedChainErr) Unwrap() error {
	return ErrUnsupportedChain
}

type ArtifactUnavailableErr struct {
	Network  string
	Artifact string
}

func (e ArtifactUnavailableErr) Error() string {
	return fmt.Sprintf("EVM network %s => artifact is not available: %s", e.Network, e.Artifact)
}

func (e ArtifactUnavailableErr) Unwrap() error {
	return ErrArtifactUnavailable
}

// NotRadonAssetErr carries the offending value of a failed Radon encoding.
type NotRadonAssetErr struct {
	Value any
}

func (e NotRadonAssetErr) Error() string {
	return fmt.Sprintf("not a Radon asset: %v", e.Value)
}

func (e NotRadonAssetErr) Unwrap() error {
	return ErrNotRadonAsset
}
