package abi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/samber/lo"
	"github.com/witnet/witnet-evm/internal/assets"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// ArtifactSettings maps network name to base artifact -> implementation class
type ArtifactSettings map[string]map[string]string

// Registry serves the bundled framework ABIs and artifact settings
type Registry struct {
	abis     map[string]*abi.ABI
	settings ArtifactSettings
}

var _ usecase.ArtifactCatalog = (*Registry)(nil)

// NewRegistry creates a registry from already parsed tables
func NewRegistry(abis map[string]*abi.ABI, settings ArtifactSettings) *Registry {
	if abis == nil {
		abis = map[string]*abi.ABI{}
	}
	if settings == nil {
		settings = ArtifactSettings{}
	}
	return &Registry{abis: abis, settings: settings}
}

// NewBundledRegistry creates a registry over the embedded ABIs and settings
func NewBundledRegistry() (*Registry, error) {
	abis, err := LoadABIs(assets.ABIs, assets.ABIDir)
	if err != nil {
		return nil, err
	}

	var settings ArtifactSettings
	if err := json.Unmarshal(assets.ArtifactsJSON, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse bundled artifact settings: %w", err)
	}

	return NewRegistry(abis, settings), nil
}

// LoadABIs parses every <Name>.json file found in dir
func LoadABIs(fsys fs.FS, dir string) (map[string]*abi.ABI, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list ABIs: %w", err)
	}

	abis := make(map[string]*abi.ABI, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read ABI %s: %w", entry.Name(), err)
		}

		parsed, err := abi.JSON(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse ABI %s: %w", entry.Name(), err)
		}

		abis[strings.TrimSuffix(entry.Name(), ".json")] = &parsed
	}

	return abis, nil
}

// ABI returns the bundled ABI of an artifact
func (r *Registry) ABI(name string) (*abi.ABI, bool) {
	parsed, ok := r.abis[name]
	return parsed, ok
}

// Settings returns the base -> implementation table of a network, the
// network entries overriding the default ones.
func (r *Registry) Settings(network string) map[string]string {
	return lo.Assign(r.settings[assets.DefaultNetwork], r.settings[network])
}

// BaseClass resolves the base artifact of key on network. A key that is
// itself a base resolves to itself; an implementation resolves to the base
// pointing at it; anything else resolves to itself.
func (r *Registry) BaseClass(network, key string) string {
	settings := r.Settings(network)
	if _, ok := settings[key]; ok {
		return key
	}

	bases := lo.Keys(settings)
	sort.Strings(bases)
	for _, base := range bases {
		if settings[base] == key {
			return base
		}
	}

	return key
}
