package domain

import "encoding/json"

// DefaultNetworkSymbol is reported for networks missing from the supported table.
const DefaultNetworkSymbol = "ETH"

// NetworkConfig describes one supported EVM network.
// NetworkID keeps the table's literal so that chain ids are matched on their
// string representation, whether the table stores them quoted or not.
type NetworkConfig struct {
	Name      string      `json:"name"`
	NetworkID json.Number `json:"network_id"`
	Mainnet   bool        `json:"mainnet"`
	Symbol    string      `json:"symbol"`
}

// AddressBook maps namespace ("core", "templates", "modals", ...) to key/address pairs.
// Nested namespaces are flattened by the loader, the innermost key wins.
type AddressBook map[string]map[string]string

// Core returns the core namespace of the address book, never nil.
func (b AddressBook) Core() map[string]string {
	if core, ok := b[NamespaceCore]; ok && core != nil {
		return core
	}
	return map[string]string{}
}

const (
	NamespaceCore      = "core"
	NamespaceTemplates = "templates"
	NamespaceModals    = "modals"
)
