package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chainsafe/vebal-sync/pkg/app"
	"github.com/chainsafe/vebal-sync/pkg/app/syncer"
	"github.com/chainsafe/vebal-sync/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = syncer.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "vebal-sync: %v\n", err)
		os.Exit(1)
	}
}
