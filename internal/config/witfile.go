package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/witnet/witnet-evm/internal/domain/config"
)

// loadWitFile loads and parses witnet.toml if it exists.
// Returns (nil, nil) when the file does not exist.
func loadWitFile(path string) (*config.WitFileConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var cfg config.WitFileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	// Expand environment variables so secrets can live in .env
	cfg.RPC.URL = os.ExpandEnv(cfg.RPC.URL)
	cfg.RPC.Host = os.ExpandEnv(cfg.RPC.Host)
	cfg.Paths.Addresses = os.ExpandEnv(cfg.Paths.Addresses)
	cfg.Paths.Assets = os.ExpandEnv(cfg.Paths.Assets)

	return &cfg, nil
}

// loadEnvFiles loads .env then .env.local from the project root. Variables
// already present in the environment are never overridden.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				slog.Warn("failed to load env file", "path", envFile, "error", err)
			}
		}
	}
}
