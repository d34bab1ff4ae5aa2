// Package cmd provides the CLI commands for neoncost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"neoncost/internal/config"
	"neoncost/internal/logging"
)

// Version is the tool version, overridable at build time.
var Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "neoncost",
	Short: "Usage and cost reporting for Neon projects",
	Long: `neoncost fetches consumption metrics from the Neon API, aggregates
them across your projects, prices month-to-date usage under the Launch
plan schedule, and forecasts end-of-month spend.

Set NEON_API_KEY in the environment before running.

Examples:
  neoncost report
  neoncost report --org-id org-example-12345678
  neoncost report --format json
  neoncost serve --listen :8080`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.neoncost.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home + "/.neoncost.yaml"
		}
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("neoncost version " + Version)
	},
}
