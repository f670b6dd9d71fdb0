package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/witnet/witnet-evm/internal/assets"
	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// Resolver answers questions about the supported networks table
type Resolver struct {
	networks []domain.NetworkConfig
	byName   map[string]*domain.NetworkConfig // lowercased name -> network
}

var _ usecase.NetworkResolver = (*Resolver)(nil)

// NewResolver creates a resolver over the given table. Order is preserved:
// when several entries share a chain id the first one wins.
func NewResolver(networks []domain.NetworkConfig) *Resolver {
	r := &Resolver{
		networks: make([]domain.NetworkConfig, len(networks)),
		byName:   make(map[string]*domain.NetworkConfig, len(networks)),
	}
	copy(r.networks, networks)

	for i := range r.networks {
		name := strings.ToLower(r.networks[i].Name)
		if _, exists := r.byName[name]; !exists {
			r.byName[name] = &r.networks[i]
		}
	}

	return r
}

// NewBundledResolver creates a resolver over the embedded networks table
func NewBundledResolver() (*Resolver, error) {
	networks, err := ParseNetworks(assets.NetworksJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to load bundled networks: %w", err)
	}
	return NewResolver(networks), nil
}

// ParseNetworks decodes a JSON array of network entries
func ParseNetworks(data []byte) ([]domain.NetworkConfig, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var networks []domain.NetworkConfig
	if err := decoder.Decode(&networks); err != nil {
		return nil, fmt.Errorf("failed to parse networks table: %w", err)
	}

	for i, network := range networks {
		if network.Name == "" {
			return nil, fmt.Errorf("network entry %d has no name", i)
		}
	}

	return networks, nil
}

// ResolveNetworkByChainID returns the name of the first network whose
// network_id has the same string representation as chainID.
func (r *Resolver) ResolveNetworkByChainID(chainID uint64) (string, bool) {
	want := strconv.FormatUint(chainID, 10)
	for _, network := range r.networks {
		if network.NetworkID.String() == want {
			return network.Name, true
		}
	}
	return "", false
}

// IsNetworkSupported reports whether name is in the table (case-insensitive)
func (r *Resolver) IsNetworkSupported(name string) bool {
	_, ok := r.byName[strings.ToLower(name)]
	return ok
}

// IsNetworkMainnet reports whether name is a supported mainnet
func (r *Resolver) IsNetworkMainnet(name string) bool {
	if network, ok := r.byName[strings.ToLower(name)]; ok {
		return network.Mainnet
	}
	return false
}

// NetworkSymbol returns the currency ticker of the network, ETH when unknown
func (r *Resolver) NetworkSymbol(name string) string {
	if network, ok := r.byName[strings.ToLower(name)]; ok && network.Symbol != "" {
		return network.Symbol
	}
	return domain.DefaultNetworkSymbol
}

// Networks returns a copy of the table, in table order
func (r *Resolver) Networks() []domain.NetworkConfig {
	networks := make([]domain.NetworkConfig, len(r.networks))
	copy(networks, r.networks)
	return networks
}
