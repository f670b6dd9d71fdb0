package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/witnet/witnet-evm/internal/domain/config"
)

const (
	// WitFileName is the optional project configuration file
	WitFileName = "witnet.toml"

	// DataDirName holds the local address overrides and Radon assets
	DataDirName = "witnet"

	DefaultRPCHost = "127.0.0.1"
	DefaultRPCPort = 8545
)

// Default local file names, looked up in DataDir when not configured
var (
	defaultAddressesFiles = []string{"addresses.json", "addresses.yaml", "addresses.yml"}
	defaultAssetsFiles    = []string{"assets.json", "assets.yaml", "assets.yml"}
)

// boundFlags lists the flags mirrored into viper when set on the command line
var boundFlags = []string{"debug", "timeout", "host", "port", "rpc-url", "addresses", "assets", "config"}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	loadEnvFiles(projectRoot)

	witFilePath := v.GetString("config")
	if witFilePath == "" {
		witFilePath = filepath.Join(projectRoot, WitFileName)
	}
	witFile, err := loadWitFile(witFilePath)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:  projectRoot,
		DataDir:      filepath.Join(projectRoot, DataDirName),
		Debug:        v.GetBool("debug"),
		Timeout:      v.GetDuration("timeout"),
		ConfigSource: "defaults",
	}
	if witFile != nil {
		cfg.WitFile = witFile
		cfg.ConfigSource = WitFileName
	} else {
		witFile = &config.WitFileConfig{}
	}

	cfg.RPCURL = ResolveRPCURL(
		firstNonEmpty(v.GetString("rpc_url"), witFile.RPC.URL),
		firstNonEmpty(v.GetString("host"), witFile.RPC.Host),
		firstNonZero(v.GetInt("port"), witFile.RPC.Port),
	)

	cfg.AddressesFile = resolveLocalFile(
		projectRoot,
		firstNonEmpty(v.GetString("addresses"), witFile.Paths.Addresses),
		cfg.DataDir,
		defaultAddressesFiles,
	)
	cfg.AssetsFile = resolveLocalFile(
		projectRoot,
		firstNonEmpty(v.GetString("assets"), witFile.Paths.Assets),
		cfg.DataDir,
		defaultAssetsFiles,
	)

	return cfg, nil
}

// ResolveRPCURL returns rpcURL when set, otherwise http://host:port with
// defaults applied.
func ResolveRPCURL(rpcURL, host string, port int) string {
	if rpcURL != "" {
		return rpcURL
	}
	if host == "" {
		host = DefaultRPCHost
	}
	if port == 0 {
		port = DefaultRPCPort
	}
	return fmt.Sprintf("http://%s:%d", host, port)
}

// FindProjectRoot walks up from the current directory looking for witnet.toml
// or a witnet/ directory. Falls back to the current directory.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, WitFileName)); err == nil {
			return dir, nil
		}
		if info, err := os.Stat(filepath.Join(dir, DataDirName)); err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("WITNET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "1m")
	v.SetDefault("debug", false)
	v.SetDefault("project_root", projectRoot)

	return v
}

// BindFlags mirrors the flags changed on the command line into viper, so
// that unset flags never shadow environment or witnet.toml values.
func BindFlags(v *viper.Viper, cmd *cobra.Command) {
	for _, name := range boundFlags {
		if f := cmd.Flag(name); f != nil && f.Changed {
			v.Set(strings.ReplaceAll(name, "-", "_"), f.Value.String())
		}
	}
}

// resolveLocalFile makes configured relative to the project root, or picks
// the first default file present in dataDir. Returns "" when nothing is found.
func resolveLocalFile(projectRoot, configured, dataDir string, defaults []string) string {
	if configured != "" {
		if filepath.IsAbs(configured) {
			return configured
		}
		return filepath.Join(projectRoot, configured)
	}

	for _, name := range defaults {
		path := filepath.Join(dataDir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func firstNonZero(values ...int) int {
	for _, value := range values {
		if value != 0 {
			return value
		}
	}
	return 0
}
