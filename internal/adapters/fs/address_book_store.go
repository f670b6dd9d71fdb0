package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/witnet/witnet-evm/internal/assets"
	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/domain/config"
	"github.com/witnet/witnet-evm/internal/usecase"
	"gopkg.in/yaml.v3"
)

// addressTable is network -> namespace -> (possibly nested) key -> address
type addressTable map[string]map[string]any

// AddressBookStore merges the bundled address table with an optional local
// override file.
type AddressBookStore struct {
	bundled      addressTable
	overridePath string
}

var _ usecase.AddressBookRepository = (*AddressBookStore)(nil)

// NewAddressBookStore creates a store over the embedded address table and
// the configured override file
func NewAddressBookStore(cfg *config.RuntimeConfig) (*AddressBookStore, error) {
	var bundled addressTable
	if err := json.Unmarshal(assets.AddressesJSON, &bundled); err != nil {
		return nil, fmt.Errorf("failed to parse bundled addresses: %w", err)
	}
	return &AddressBookStore{bundled: bundled, overridePath: cfg.AddressesFile}, nil
}

// GetPath returns the path to the override file, empty when none is configured
func (s *AddressBookStore) GetPath() string {
	return s.overridePath
}

// Load returns the address book of network. Layers are applied in order
// bundled default, bundled network, local default, local network; later
// layers win per key and an empty address removes the key.
func (s *AddressBookStore) Load(ctx context.Context, network string) (domain.AddressBook, error) {
	layers := []map[string]any{s.bundled[assets.DefaultNetwork], s.bundled[network]}

	if s.overridePath != "" {
		local, err := readAddressTable(s.overridePath)
		if err != nil {
			return nil, err
		}
		layers = append(layers, local[assets.DefaultNetwork], local[network])
	}

	book := domain.AddressBook{}
	for _, layer := range layers {
		for namespace, entries := range layer {
			flat := flattenAddresses(entries)
			if len(flat) == 0 {
				continue
			}
			merged := lo.Assign(book[namespace], flat)
			book[namespace] = lo.OmitByValues(merged, []string{""})
		}
	}

	return book, nil
}

// readAddressTable decodes a JSON or YAML override file, chosen by extension
func readAddressTable(path string) (addressTable, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("addresses file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read addresses file: %w", err)
	}

	var table addressTable
	if err := decodeByExtension(path, data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse addresses file: %w", err)
	}
	return table, nil
}

// flattenAddresses collects the string leaves of a nested namespace, keyed by
// their own name. Branches are visited in key order so that the last
// duplicate leaf wins deterministically.
func flattenAddresses(node any) map[string]string {
	flat := map[string]string{}

	var walk func(key string, value any)
	walk = func(key string, value any) {
		switch v := value.(type) {
		case string:
			if key != "" {
				flat[key] = v
			}
		case map[string]any:
			keys := lo.Keys(v)
			sort.Strings(keys)
			for _, k := range keys {
				walk(k, v[k])
			}
		}
	}
	walk("", node)

	return flat
}

func decodeByExtension(path string, data []byte, out any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	default:
		decoder := json.NewDecoder(bytes.NewReader(data))
		return decoder.Decode(out)
	}
}
