package main

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"RedeemVault/internal/api"
	"RedeemVault/internal/assets"
	"RedeemVault/internal/engine"
	"RedeemVault/internal/fault"
	"RedeemVault/internal/genesis"
	"RedeemVault/internal/logger"
	"RedeemVault/internal/migrate"
	"RedeemVault/internal/names"
	"RedeemVault/internal/ramledger"
	"RedeemVault/internal/snapshot"
	"RedeemVault/internal/storage"
)

// Node is a running vault daemon.
type Node struct {
	cfg     *Config
	storage *storage.Storage
	engine  *engine.Engine
	keys    map[names.Name]ed25519.PublicKey // keys are the registered signing keys
	api     *api.Server
}

// NewNode opens storage and brings the contract tables up to date.
func NewNode(cfg *Config) (*Node, error) {
	n := &Node{cfg: cfg}

	gen, err := genesis.Load(cfg.GenesisPath)
	if err != nil {
		return nil, err
	}

	if cfg.Self != 0 && cfg.Self != gen.Contract {
		return nil, fmt.Errorf("-self %s does not match genesis contract %s", cfg.Self, gen.Contract)
	}

	if n.keys, err = gen.Keys(); err != nil {
		return nil, err
	}

	if err := n.initStorage(); err != nil {
		return nil, err
	}

	steps := []func() error{
		n.restoreSnapshot,
		func() error { return n.initEngine(gen.Contract) },
		func() error { return n.bootstrap(gen) },
		n.importLegacy,
	}

	for _, step := range steps {
		if err := step(); err != nil {
			n.Close()
			return nil, err
		}
	}

	return n, nil
}

// initStorage initializes the Pebble storage.
func (n *Node) initStorage() error {
	if err := os.MkdirAll(n.cfg.DataPath, 0755); err != nil {
		return fmt.Errorf("create data directory:\n%w", err)
	}

	db, err := storage.New(filepath.Join(n.cfg.DataPath, "db"))
	if err != nil {
		return fmt.Errorf("init storage:\n%w", err)
	}

	n.storage = db

	return nil
}

// restoreSnapshot loads -restore into the empty store.
func (n *Node) restoreSnapshot() error {
	if n.cfg.RestorePath == "" {
		return nil
	}

	data, err := os.ReadFile(n.cfg.RestorePath)
	if err != nil {
		return fmt.Errorf("read snapshot:\n%w", err)
	}

	info, err := snapshot.Restore(n.storage, data)
	if err != nil {
		return fmt.Errorf("restore snapshot:\n%w", err)
	}

	logger.Info("snapshot restored",
		"entries", info.Entries,
		"checksum", fmt.Sprintf("%x", info.Checksum[:8]),
	)

	return nil
}

// initEngine creates the engine over the opened store.
func (n *Node) initEngine(self names.Name) error {
	market, err := ramledger.NewFixedRateMarket(n.cfg.RAMRate)
	if err != nil {
		return err
	}

	n.engine, err = engine.New(engine.Config{
		Storage: n.storage,
		Self:    self,
		Market:  market,
	})
	if err != nil {
		return fmt.Errorf("init engine:\n%w", err)
	}

	return nil
}

// bootstrap seeds the asset mirror from genesis and runs init, once per store.
func (n *Node) bootstrap(gen *genesis.File) error {
	_, err := n.engine.Config()
	if err == nil {
		logger.Debug("store already initialized, genesis fixtures skipped")
		return nil
	}
	if !errors.Is(err, fault.ErrNotFound) {
		return err
	}

	start := time.Now()

	if err := n.engine.Seed(gen.Apply); err != nil {
		return fmt.Errorf("apply genesis:\n%w", err)
	}

	if err := n.engine.Init(engine.Authorize(n.engine.Self())); err != nil {
		return fmt.Errorf("init contract:\n%w", err)
	}

	logger.Info("genesis applied", "collections", len(gen.Collections), logger.Timed(start))

	return nil
}

// importLegacy imports -legacy into the redemption table.
func (n *Node) importLegacy() error {
	if n.cfg.LegacyPath == "" {
		return nil
	}

	f, err := os.Open(n.cfg.LegacyPath)
	if err != nil {
		return fmt.Errorf("open legacy dump:\n%w", err)
	}
	defer f.Close()

	rows, err := migrate.Parse(f)
	if err != nil {
		return fmt.Errorf("parse legacy dump:\n%w", err)
	}

	var report migrate.Report

	err = n.engine.Seed(func(tx *storage.Tx, l *assets.Ledger) error {
		report, err = migrate.Apply(tx, l, n.engine.Self(), rows, time.Now())
		return err
	})
	if err != nil {
		return fmt.Errorf("import legacy redemptions:\n%w", err)
	}

	for _, s := range report.Skipped {
		logger.Warn("legacy row skipped", "asset", s.AssetID, "reason", s.Reason)
	}

	logger.Info("legacy redemptions imported",
		"imported", len(report.Imported),
		"skipped", len(report.Skipped),
		"counter", report.Counter,
	)

	return nil
}

// Run starts the HTTP API and blocks until a shutdown signal.
func (n *Node) Run() error {
	n.api = api.New(n.cfg.HTTPAddress, n.engine, n.storage, n.keys)
	if err := n.api.Start(); err != nil {
		return fmt.Errorf("start api:\n%w", err)
	}

	return n.waitForShutdown()
}

// waitForShutdown blocks until SIGINT or SIGTERM, then closes the node.
func (n *Node) waitForShutdown() error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", "signal", sig.String())

	return n.Close()
}

// Close shuts down all node components gracefully. Calling it twice is safe.
func (n *Node) Close() error {
	if n.api != nil {
		n.api.Stop()
		n.api = nil
	}

	if n.storage == nil {
		return nil
	}

	db := n.storage
	n.storage = nil

	return db.Close()
}
