package main

import (
	"flag"
	"fmt"
	"log/slog"

	"RedeemVault/internal/logger"
	"RedeemVault/internal/names"
)

// Config holds the daemon configuration.
type Config struct {
	// DataPath is the directory for persistent storage.
	DataPath string

	// HTTPAddress is the HTTP API listen address.
	HTTPAddress string

	// Self overrides the contract account. It must match the genesis file.
	Self names.Name

	// GenesisPath is the YAML file with keys and asset-system fixtures.
	GenesisPath string

	// RAMRate is the number of RAM bytes bought per whole core token.
	RAMRate string

	// RestorePath is a snapshot loaded into an empty store before startup.
	RestorePath string

	// LegacyPath is a legacy redemption table dump imported at startup.
	LegacyPath string

	// LogLevel is the minimum level written to stdout.
	LogLevel slog.Level
}

// parseFlags parses command-line flags into Config.
func parseFlags(args []string) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("redeemd", flag.ContinueOnError)

	var self, level string

	fs.StringVar(&cfg.DataPath, "data", "./data", "Data directory path")
	fs.StringVar(&cfg.HTTPAddress, "http", ":8080", "HTTP API address")
	fs.StringVar(&self, "self", "", "Contract account (defaults to the genesis contract)")
	fs.StringVar(&cfg.GenesisPath, "genesis", "./genesis.yaml", "Genesis YAML path")
	fs.StringVar(&cfg.RAMRate, "ram-rate", "10000", "RAM bytes per core token")
	fs.StringVar(&cfg.RestorePath, "restore", "", "Snapshot to restore into an empty store")
	fs.StringVar(&cfg.LegacyPath, "legacy", "", "Legacy redemption table dump to import")
	fs.StringVar(&level, "log-level", "info", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if self != "" {
		n, err := names.Parse(self)
		if err != nil {
			return nil, fmt.Errorf("flag -self:\n%w", err)
		}
		cfg.Self = n
	}

	var err error
	if cfg.LogLevel, err = logger.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("flag -log-level:\n%w", err)
	}

	return cfg, nil
}
