// Package main - Entry point for the standalone neoncost report server
package main

import (
	"flag"
	"fmt"
	"os"

	"neoncost/adapters/neon"
	"neoncost/api"
	"neoncost/internal/config"
	"neoncost/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", ":8080", "server address")
	cfgPath := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
		config.Set(cfg)
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}

	apiKey, err := config.APIKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client := neon.NewClient(cfg.Neon.BaseURL, apiKey, cfg.Timeout())
	server := api.NewServer(client, cfg.Neon.OrgID, cfg.Schedule(), version)

	if err := server.Start(*addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		os.Exit(1)
	}
}
