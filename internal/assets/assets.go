// Package assets bundles the static framework tables shipped with the binary.
package assets

import (
	"embed"
)

// NetworksJSON is the ordered table of supported EVM networks.
//
//go:embed networks.json
var NetworksJSON []byte

// AddressesJSON maps network name to namespaced artifact addresses.
// The "default" entry applies to every network.
//
//go:embed addresses.json
var AddressesJSON []byte

// ArtifactsJSON maps network name to base artifact -> implementation class.
//
//go:embed artifacts.json
var ArtifactsJSON []byte

// ABIs holds one ABI definition per framework artifact, named <Artifact>.json.
//
//go:embed abis/*.json
var ABIs embed.FS

// ABIDir is the directory of ABIs within the embedded filesystem
const ABIDir = "abis"

// DefaultNetwork is the key of the entries shared by all networks.
const DefaultNetwork = "default"
