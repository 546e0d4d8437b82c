package main

import (
	"fmt"
	"os"

	"RedeemVault/internal/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main entry point with error handling.
func run(args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	logger.Init(os.Stdout, cfg.LogLevel)

	node, err := NewNode(cfg)
	if err != nil {
		return fmt.Errorf("create node:\n%w", err)
	}

	printStartupInfo(node)

	return node.Run()
}

// printStartupInfo displays the node configuration at startup.
func printStartupInfo(n *Node) {
	logger.Info("starting redeemd",
		"contract", n.engine.Self(),
		"http", n.cfg.HTTPAddress,
		"data", n.cfg.DataPath,
		"accounts", len(n.keys),
		"ram_rate", n.cfg.RAMRate,
	)
}
