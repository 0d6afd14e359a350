package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chainsafe/bridge-transfer/pkg/app"
	"github.com/chainsafe/bridge-transfer/pkg/app/api"
	"github.com/chainsafe/bridge-transfer/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = api.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Bridge client stopped: %v\n", err)
		os.Exit(1)
	}
}
