package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/domain/config"
)

const oracleAddress = "0x77703aE126B971c9946d562F41Dd47071dA00777"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAddressBookStoreBundled(t *testing.T) {
	store, err := NewAddressBookStore(&config.RuntimeConfig{})
	require.NoError(t, err)
	assert.Empty(t, store.GetPath())

	book, err := store.Load(context.Background(), "ethereum:mainnet")
	require.NoError(t, err)

	core := book.Core()
	assert.Equal(t, oracleAddress, core[domain.WitOracle])
	for _, key := range domain.TargetArtifacts {
		assert.Contains(t, core, key)
	}

	t.Run("nested network namespaces are flattened", func(t *testing.T) {
		book, err := store.Load(context.Background(), "ethereum:sepolia")
		require.NoError(t, err)
		assert.Contains(t, book[domain.NamespaceTemplates], "WitOracleRequestTemplatePriceBinance")
	})
}

func TestAddressBookStoreOverride(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	t.Run("json override wins per key", func(t *testing.T) {
		path := writeFile(t, dir, "addresses.json", `{
			"ethereum:mainnet": {
				"core": {
					"WitOracle": "0x1111111111111111111111111111111111111111",
					"WitRandomnessV2": ""
				},
				"modals": {
					"crypto": {"WitOracleRequestModalPrice": "0x2222222222222222222222222222222222222222"}
				}
			},
			"polygon:mainnet": {
				"core": {"WitOracle": "0x3333333333333333333333333333333333333333"}
			}
		}`)

		store, err := NewAddressBookStore(&config.RuntimeConfig{AddressesFile: path})
		require.NoError(t, err)

		book, err := store.Load(ctx, "ethereum:mainnet")
		require.NoError(t, err)

		core := book.Core()
		assert.Equal(t, "0x1111111111111111111111111111111111111111", core[domain.WitOracle])
		assert.NotContains(t, core, domain.WitRandomnessV2, "empty address removes the entry")
		assert.Contains(t, core, domain.WitOracleRadonRegistry, "untouched keys keep bundled values")
		assert.Equal(t, "0x2222222222222222222222222222222222222222", book[domain.NamespaceModals]["WitOracleRequestModalPrice"])
	})

	t.Run("yaml override", func(t *testing.T) {
		path := writeFile(t, dir, "addresses.yaml", `
default:
  core:
    WitPriceFeeds: "0x4444444444444444444444444444444444444444"
`)

		store, err := NewAddressBookStore(&config.RuntimeConfig{AddressesFile: path})
		require.NoError(t, err)

		book, err := store.Load(ctx, "ethereum:mainnet")
		require.NoError(t, err)
		assert.Equal(t, "0x4444444444444444444444444444444444444444", book.Core()[domain.WitPriceFeeds])
	})

	t.Run("missing file", func(t *testing.T) {
		store, err := NewAddressBookStore(&config.RuntimeConfig{AddressesFile: filepath.Join(dir, "nope.json")})
		require.NoError(t, err)

		_, err = store.Load(ctx, "ethereum:mainnet")
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeFile(t, dir, "broken.json", `{"ethereum:mainnet": `)
		store, err := NewAddressBookStore(&config.RuntimeConfig{AddressesFile: path})
		require.NoError(t, err)

		_, err = store.Load(ctx, "ethereum:mainnet")
		assert.Error(t, err)
	})
}

func TestFlattenAddresses(t *testing.T) {
	flat := flattenAddresses(map[string]any{
		"a": "0x01",
		"group": map[string]any{
			"b":      "0x02",
			"deeper": map[string]any{"c": "0x03"},
		},
		"ignored": 42,
	})

	assert.Equal(t, map[string]string{"a": "0x01", "b": "0x02", "c": "0x03"}, flat)
	assert.Empty(t, flattenAddresses(nil))
	assert.Empty(t, flattenAddresses("0x01"), "a bare leaf has no key")
}
