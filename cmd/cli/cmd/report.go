// Package cmd - report command
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"neoncost/adapters/neon"
	"neoncost/core/output"
	"neoncost/core/report"
	"neoncost/internal/config"
	"neoncost/internal/logging"
)

var (
	orgID        string
	outputFormat string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a usage and cost report for the current billing period",
	Long: `Fetch consumption metrics for every project, aggregate them, price
month-to-date usage, and forecast end-of-month spend.

Examples:
  neoncost report
  neoncost report --org-id org-example-12345678
  neoncost report --format json`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&orgID, "org-id", "", "organization ID (for org accounts)")
	reportCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (text, json)")
}

func runReport(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	ctx := context.Background()
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

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.Format)
	}
	formatter, err := output.New(format)
	if err != nil {
		return err
	}

	client := neon.NewClient(cfg.Neon.BaseURL, apiKey, cfg.Timeout())

	logging.Info("generating report", zap.String("org_id", org))
	r, err := report.Generate(ctx, client, org, cfg.Schedule(), time.Now().UTC())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	if len(r.Projects) == 0 {
		fmt.Println("No projects found.")
		return nil
	}

	return formatter.Render(os.Stdout, r)
}
