package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into adapters and use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string // <project>/witnet

	// Execution settings
	Debug   bool
	Timeout time.Duration

	// Connection settings
	RPCURL string

	// Local files, empty when not present
	AddressesFile string
	AssetsFile    string

	// Config source tracking
	ConfigSource string // "witnet.toml" or "defaults"

	// Resolved configurations
	WitFile *WitFileConfig
}
