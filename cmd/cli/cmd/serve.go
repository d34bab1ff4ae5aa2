// Package cmd - serve command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"neoncost/adapters/neon"
	"neoncost/api"
	"neoncost/internal/config"
)

var listenAddr string

// serveCmd exposes the report over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the usage report as JSON over HTTP",
	Long: `Start an HTTP server that generates the report on demand.

Endpoints:
  GET /report   full usage and cost report
  GET /health   liveness probe
  GET /version  tool version`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", ":8080", "listen address")
	serveCmd.Flags().StringVar(&orgID, "org-id", "", "organization ID (for org accounts)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cfg := config.Get()

	apiKey, err := config.APIKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	org := orgID
	if org == "" {
		org = cfg.Neon.OrgID
	}

	client := neon.NewClient(cfg.Neon.BaseURL, apiKey, cfg.Timeout())
	server := api.NewServer(client, org, cfg.Schedule(), Version)
	return server.Start(listenAddr)
}
