package fs

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/samber/lo"
	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/domain/config"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// radonAssetMarker is the field every Radon request, template or modal
// definition carries. Maps without it are namespaces.
const radonAssetMarker = "retrieve"

// RadonAssetsStore reads the project's Radon assets file
type RadonAssetsStore struct {
	path string
}

var _ usecase.RadonAssetsRepository = (*RadonAssetsStore)(nil)

// NewRadonAssetsStore creates a store for the configured assets file
func NewRadonAssetsStore(cfg *config.RuntimeConfig) *RadonAssetsStore {
	return &RadonAssetsStore{path: cfg.AssetsFile}
}

// Exists checks if the assets file is configured and present
func (s *RadonAssetsStore) Exists() bool {
	if s.path == "" {
		return false
	}
	_, err := os.Stat(s.path)
	return !os.IsNotExist(err)
}

// TemplateNames returns the names of every template declared in the file
func (s *RadonAssetsStore) TemplateNames(ctx context.Context) (map[string]bool, error) {
	return s.names(domain.NamespaceTemplates)
}

// ModalNames returns the names of every modal declared in the file
func (s *RadonAssetsStore) ModalNames(ctx context.Context) (map[string]bool, error) {
	return s.names(domain.NamespaceModals)
}

func (s *RadonAssetsStore) names(namespace string) (map[string]bool, error) {
	if !s.Exists() {
		return map[string]bool{}, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read radon assets file: %w", err)
	}

	var assets map[string]any
	if err := decodeByExtension(s.path, data, &assets); err != nil {
		return nil, fmt.Errorf("failed to parse radon assets file: %w", err)
	}

	names := map[string]bool{}
	collectAssetNames(assets[namespace], names)
	return names, nil
}

// collectAssetNames walks nested namespaces down to asset definitions
func collectAssetNames(node any, names map[string]bool) {
	branch, ok := node.(map[string]any)
	if !ok {
		return
	}

	keys := lo.Keys(branch)
	sort.Strings(keys)
	for _, key := range keys {
		child, ok := branch[key].(map[string]any)
		if !ok {
			continue
		}
		if _, isAsset := child[radonAssetMarker]; isAsset {
			names[key] = true
			continue
		}
		collectAssetNames(child, names)
	}
}
