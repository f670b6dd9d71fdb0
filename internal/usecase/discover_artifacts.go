package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/witnet/witnet-evm/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	// maxConcurrentProbes bounds the candidates probed at once
	maxConcurrentProbes = 8

	// maxSuggestions bounds the "did you mean" hints per unmatched filter
	maxSuggestions = 3
)

// DefaultSelection is highlighted when no filter is given
var DefaultSelection = []string{domain.WitOracle}

// DiscoverArtifactsParams contains parameters for discovering artifacts
type DiscoverArtifactsParams struct {
	// Filters select artifacts by case-insensitive key suffix
	Filters []string

	// Templates and Modals also list the request templates and modals
	// deployed on the network
	Templates bool
	Modals    bool
}

// DiscoverArtifactsResult contains the artifacts found live on chain
type DiscoverArtifactsResult struct {
	ChainID   uint64
	Network   string
	Supported bool
	Mainnet   bool
	Symbol    string
	Signer    common.Address

	Artifacts []*domain.ArtifactRecord
	Templates []domain.TemplateRecord
	Modals    []domain.TemplateRecord

	// Selection is the effective list of filters
	Selection []string

	// Suggestions maps each filter matching nothing to close artifact names
	Suggestions map[string][]string
}

// IsSelected reports whether key ends with any selected filter, ignoring case
func (r *DiscoverArtifactsResult) IsSelected(key string) bool {
	return matchesAny(r.Selection, key)
}

// Artifact returns the record of key, if discovered
func (r *DiscoverArtifactsResult) Artifact(key string) (*domain.ArtifactRecord, bool) {
	return lo.Find(r.Artifacts, func(record *domain.ArtifactRecord) bool {
		return record.Key == key
	})
}

// DiscoverArtifacts finds which framework artifacts are deployed on the
// connected network and introspects them
type DiscoverArtifacts struct {
	client      ChainClient
	networks    NetworkResolver
	addresses   AddressBookRepository
	catalog     ArtifactCatalog
	caller      ContractCaller
	wrappers    WrapperFactory
	radonAssets RadonAssetsRepository
	progress    ProgressSink
	log         *slog.Logger
}

// NewDiscoverArtifacts creates a new DiscoverArtifacts use case
func NewDiscoverArtifacts(
	client ChainClient,
	networks NetworkResolver,
	addresses AddressBookRepository,
	catalog ArtifactCatalog,
	caller ContractCaller,
	wrappers WrapperFactory,
	radonAssets RadonAssetsRepository,
	progress ProgressSink,
	log *slog.Logger,
) *DiscoverArtifacts {
	return &DiscoverArtifacts{
		client:      client,
		networks:    networks,
		addresses:   addresses,
		catalog:     catalog,
		caller:      caller,
		wrappers:    wrappers,
		radonAssets: radonAssets,
		progress:    progress,
		log:         log,
	}
}

// candidate is an artifact worth probing
type candidate struct {
	key     string
	address common.Address
	abi     *abi.ABI
}

// Run executes the use case. An unsupported chain yields an empty result
// with Supported unset; only an unreachable gateway or an unreadable
// address book fail.
func (uc *DiscoverArtifacts) Run(ctx context.Context, params DiscoverArtifactsParams) (*DiscoverArtifactsResult, error) {
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "connecting",
		Message: "Connecting to ETH/RPC gateway...",
		Spinner: true,
	})
	defer uc.progress.OnProgress(ctx, ProgressEvent{Stage: "completed"})

	chainID, err := uc.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	result := &DiscoverArtifactsResult{
		ChainID:     chainID,
		Selection:   params.Filters,
		Suggestions: map[string][]string{},
	}
	if len(result.Selection) == 0 {
		result.Selection = DefaultSelection
	}

	network, ok := uc.networks.ResolveNetworkByChainID(chainID)
	if !ok {
		uc.log.Debug("unsupported chain", "chainId", chainID)
		return result, nil
	}
	result.Network = network
	result.Supported = true
	result.Mainnet = uc.networks.IsNetworkMainnet(network)
	result.Symbol = uc.networks.NetworkSymbol(network)

	if signer, err := uc.client.Signer(ctx); err != nil {
		uc.log.Debug("no signer available", "error", err)
	} else {
		result.Signer = signer
	}

	book, err := uc.addresses.Load(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("failed to load addresses of %s: %w", network, err)
	}

	candidates := uc.selectCandidates(network, book.Core())
	result.Artifacts = uc.probe(ctx, candidates)

	if _, hasOracle := result.Artifact(domain.WitOracle); hasOracle {
		for _, record := range result.Artifacts {
			if wrapper, ok := uc.wrappers.NewWrapper(record.Key, record.Address); ok {
				record.Wrapper = wrapper
			}
		}
	}

	if params.Templates {
		result.Templates, err = uc.deployables(ctx, book[domain.NamespaceTemplates], uc.radonAssets.TemplateNames)
		if err != nil {
			return nil, err
		}
	}
	if params.Modals {
		result.Modals, err = uc.deployables(ctx, book[domain.NamespaceModals], uc.radonAssets.ModalNames)
		if err != nil {
			return nil, err
		}
	}

	uc.suggest(result, params.Filters)

	return result, nil
}

// selectCandidates keeps whitelisted keys with a valid address, a
// non-excluded base class and a known ABI, sorted by key
func (uc *DiscoverArtifacts) selectCandidates(network string, core map[string]string) []candidate {
	var candidates []candidate

	for key, hex := range core {
		if !domain.IsTargetArtifact(key) {
			continue
		}

		base := uc.catalog.BaseClass(network, key)
		if domain.IsExcludedBase(base) {
			uc.log.Debug("skipping excluded artifact", "key", key, "base", base)
			continue
		}

		contractABI, ok := uc.catalog.ABI(key)
		if !ok {
			contractABI, ok = uc.catalog.ABI(base)
		}
		if !ok {
			uc.log.Debug("skipping artifact without ABI", "key", key)
			continue
		}

		if !common.IsHexAddress(hex) {
			uc.log.Warn("invalid artifact address", "key", key, "address", hex)
			continue
		}

		candidates = append(candidates, candidate{
			key:     key,
			address: common.HexToAddress(hex),
			abi:     contractABI,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].key < candidates[j].key
	})
	return candidates
}

// probe checks bytecode and introspects every candidate concurrently.
// Each goroutine owns one slot of records.
func (uc *DiscoverArtifacts) probe(ctx context.Context, candidates []candidate) []*domain.ArtifactRecord {
	records := make([]*domain.ArtifactRecord, len(candidates))

	var g errgroup.Group
	g.SetLimit(maxConcurrentProbes)

	for i, c := range candidates {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "probing",
			Current: i + 1,
			Total:   len(candidates),
			Message: fmt.Sprintf("Probing %s...", c.key),
			Spinner: true,
		})

		g.Go(func() error {
			code, err := uc.client.CodeAt(ctx, c.address)
			if err != nil {
				uc.log.Warn("failed to fetch bytecode", "key", c.key, "address", c.address.Hex(), "error", err)
				return nil
			}
			if len(code) == 0 {
				uc.log.Debug("artifact not deployed", "key", c.key, "address", c.address.Hex())
				return nil
			}

			records[i] = uc.introspect(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	found := lo.Compact(records)
	sort.SliceStable(found, func(i, j int) bool {
		return strings.ToLower(found[i].Key) < strings.ToLower(found[j].Key)
	})
	return found
}

// introspect issues the four view calls concurrently; failures fall back
// to defaults and are never propagated
func (uc *DiscoverArtifacts) introspect(ctx context.Context, c candidate) *domain.ArtifactRecord {
	var (
		class        Result[string]
		specs        Result[string]
		isUpgradable Result[bool]
		version      Result[string]
	)

	var g errgroup.Group
	g.Go(func() error {
		class = Attempt(func() (string, error) { return CallOne[string](ctx, uc.caller, c.address, c.abi, "class") })
		return nil
	})
	g.Go(func() error {
		specs = Attempt(func() (string, error) {
			id, err := CallOne[[4]byte](ctx, uc.caller, c.address, c.abi, "specs")
			if err != nil {
				return "", err
			}
			return hexutil.Encode(id[:]), nil
		})
		return nil
	})
	g.Go(func() error {
		isUpgradable = Attempt(func() (bool, error) { return CallOne[bool](ctx, uc.caller, c.address, c.abi, "isUpgradable") })
		return nil
	})
	g.Go(func() error {
		version = Attempt(func() (string, error) { return CallOne[string](ctx, uc.caller, c.address, c.abi, "version") })
		return nil
	})
	_ = g.Wait()

	for name, err := range map[string]error{"class": class.Err, "specs": specs.Err, "isUpgradable": isUpgradable.Err, "version": version.Err} {
		if err != nil {
			uc.log.Debug("introspection call failed", "key", c.key, "method", name, "error", err)
		}
	}

	record := &domain.ArtifactRecord{
		Key:          c.key,
		Address:      c.address,
		Class:        class.Or(c.key),
		InterfaceID:  specs.Or(""),
		IsUpgradable: isUpgradable.Or(false),
	}
	record.SetVersion(version.Or(""))

	return record
}

// deployables lists the entries of a templates or modals namespace, keeping
// only names declared in the local assets file when there is one
func (uc *DiscoverArtifacts) deployables(
	ctx context.Context,
	entries map[string]string,
	declared func(context.Context) (map[string]bool, error),
) ([]domain.TemplateRecord, error) {
	var names map[string]bool
	if uc.radonAssets.Exists() {
		var err error
		if names, err = declared(ctx); err != nil {
			return nil, err
		}
	}

	records := make([]domain.TemplateRecord, 0, len(entries))
	for key, hex := range entries {
		if names != nil && !names[key] {
			continue
		}
		if !common.IsHexAddress(hex) {
			uc.log.Warn("invalid address", "key", key, "address", hex)
			continue
		}
		records = append(records, domain.TemplateRecord{Key: key, Address: common.HexToAddress(hex)})
	}

	sort.Slice(records, func(i, j int) bool {
		return strings.ToLower(records[i].Key) < strings.ToLower(records[j].Key)
	})
	return records, nil
}

// suggest records close names for every filter that matches no listed key
func (uc *DiscoverArtifacts) suggest(result *DiscoverArtifactsResult, filters []string) {
	keys := lo.Map(result.Artifacts, func(r *domain.ArtifactRecord, _ int) string { return r.Key })
	for _, records := range [][]domain.TemplateRecord{result.Templates, result.Modals} {
		keys = append(keys, lo.Map(records, func(r domain.TemplateRecord, _ int) string { return r.Key })...)
	}
	candidates := lo.Uniq(append(keys, domain.TargetArtifacts...))

	for _, filter := range lo.Uniq(filters) {
		if lo.SomeBy(keys, func(key string) bool { return matchesAny([]string{filter}, key) }) {
			continue
		}

		matches := fuzzy.Find(filter, candidates)
		suggestions := make([]string, 0, maxSuggestions)
		for _, match := range matches {
			if len(suggestions) == maxSuggestions {
				break
			}
			suggestions = append(suggestions, match.Str)
		}
		result.Suggestions[filter] = suggestions
	}
}

func matchesAny(filters []string, key string) bool {
	key = strings.ToLower(key)
	for _, filter := range filters {
		if strings.HasSuffix(key, strings.ToLower(filter)) {
			return true
		}
	}
	return false
}
