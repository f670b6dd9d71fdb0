package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Framework roles recognized by the artifact discovery
const (
	WitOracle                    = "WitOracle"
	WitOracleRadonRegistry       = "WitOracleRadonRegistry"
	WitOracleRadonRequestFactory = "WitOracleRadonRequestFactory"
	WitPriceFeeds                = "WitPriceFeeds"
	WitPriceFeedsLegacy          = "WitPriceFeedsLegacy"
	WitRandomnessV2              = "WitRandomnessV2"
	WitRandomnessV3              = "WitRandomnessV3"

	WitOracleRadonRequestModal    = "WitOracleRadonRequestModal"
	WitOracleRadonRequestTemplate = "WitOracleRadonRequestTemplate"
)

// TargetArtifacts is the whitelist of roles reported by the discovery.
var TargetArtifacts = []string{
	WitOracle,
	WitOracleRadonRegistry,
	WitOracleRadonRequestFactory,
	WitPriceFeeds,
	WitPriceFeedsLegacy,
	WitRandomnessV2,
	WitRandomnessV3,
}

// ExcludedBases lists base classes never reported, even when deployed.
var ExcludedBases = []string{
	WitOracleRadonRequestModal,
	WitOracleRadonRequestTemplate,
}

// IsTargetArtifact reports whether key is on the whitelist.
func IsTargetArtifact(key string) bool {
	for _, target := range TargetArtifacts {
		if target == key {
			return true
		}
	}
	return false
}

// IsExcludedBase reports whether base is on the exclusion list.
func IsExcludedBase(base string) bool {
	for _, excluded := range ExcludedBases {
		if excluded == base {
			return true
		}
	}
	return false
}

// IsRandomnessArtifact matches every randomness variant, current and legacy naming.
func IsRandomnessArtifact(key string) bool {
	return strings.HasPrefix(key, "WitRandomness") || strings.HasPrefix(key, "WitnetRandomness")
}

// ArtifactRecord is one framework contract found live on chain.
type ArtifactRecord struct {
	Key          string         `json:"key"`
	Address      common.Address `json:"address"`
	Class        string         `json:"class,omitempty"`
	InterfaceID  string         `json:"interfaceId,omitempty"`
	IsUpgradable bool           `json:"isUpgradable"`
	Version      string         `json:"version,omitempty"`
	SemVer       string         `json:"semVer,omitempty"`
	GitHash      string         `json:"gitHash,omitempty"`

	// Runtime fields (not serialized)
	Wrapper any `json:"-"`
}

const (
	semVerLength    = 5
	gitHashOffset   = 14
	gitHashLength   = 7
	minTaggedLength = gitHashOffset + gitHashLength
)

// ParseVersionTag splits a contract version string into its semver prefix and git hash.
func ParseVersionTag(version string) (semVer string, gitHash string) {
	if version == "" {
		return "", ""
	}
	semVer = version
	if len(semVer) > semVerLength {
		semVer = semVer[:semVerLength]
	}
	if len(version) >= minTaggedLength {
		gitHash = version[gitHashOffset:minTaggedLength]
	}
	return semVer, gitHash
}

// SetVersion stores the raw version and its derived fields.
func (r *ArtifactRecord) SetVersion(version string) {
	r.Version = version
	r.SemVer, r.GitHash = ParseVersionTag(version)
}

// TemplateRecord is a Radon request template or modal address entry.
type TemplateRecord struct {
	Key     string         `json:"key"`
	Address common.Address `json:"address"`
}
