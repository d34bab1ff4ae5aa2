package output

import (
	"fmt"
	"io"
	"strings"

	"neoncost/core/cost"
	"neoncost/core/metrics"
	"neoncost/core/report"
)

const separatorWidth = 60

// TextFormatter renders the human-readable terminal report.
type TextFormatter struct{}

// Format returns the format type
func (f *TextFormatter) Format() Format {
	return FormatText
}

// Render writes the text report to w.
func (f *TextFormatter) Render(w io.Writer, r *report.Report) error {
	p := &printer{w: w}

	p.printf("\nNeon Usage Report - %s\n", r.BillingPeriod.Month)
	p.printf("Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04 UTC"))
	p.printf("Day %d of %d (%.1f%% of month)\n",
		r.BillingPeriod.Day, r.BillingPeriod.DaysInMonth, r.BillingPeriod.ProgressPercent)
	p.separator("=")

	f.renderProjects(p, r)
	f.renderCurrent(p, r)
	f.renderForecast(p, r)
	f.renderPricing(p, r)

	return p.err
}

func (f *TextFormatter) renderProjects(p *printer, r *report.Report) {
	p.separator("-")
	p.printf("\nPER-PROJECT USAGE\n")
	p.separator("-")

	for _, proj := range r.Projects {
		m := proj.Metrics
		cuHours := m[metrics.ComputeTimeSeconds] / 3600
		storageGB := cost.BytesToGB(m[metrics.RootBranchStorageBytes] + m[metrics.ChildBranchesStorageBytes])
		transferGB := cost.BytesToGB(m[metrics.PublicNetworkTransferBytes] + m[metrics.PrivateNetworkTransferBytes])

		p.printf("\n%s (%s)\n", proj.Name, shortID(proj.ID))
		p.printf("  Compute:  %s CU-hours\n", formatNumber(cuHours))
		p.printf("  Storage:  %s GB\n", formatNumber(storageGB))
		p.printf("  Transfer: %s GB\n", formatNumber(transferGB))
		p.printf("  Cost:     %s\n", formatCurrency(proj.Cost))
	}
}

func (f *TextFormatter) renderCurrent(p *printer, r *report.Report) {
	c := r.Costs

	p.separator("-")
	p.printf("\nCURRENT USAGE (Month-to-Date)\n")
	p.separator("-")

	p.printf("\nCompute:\n")
	p.printf("  Usage:  %s CU-hours\n", formatNumber(c.Compute.CUHours))
	p.printf("  Cost:   %s\n", formatCurrency(c.Compute.Cost))

	p.printf("\nStorage:\n")
	p.printf("  Usage:  %s GB (root %s GB, child %s GB)\n",
		formatNumber(c.Storage.GB), formatNumber(c.Storage.RootGB), formatNumber(c.Storage.ChildGB))
	p.printf("  Cost:   %s\n", formatCurrency(c.Storage.Cost))

	p.printf("\nInstant Restore:\n")
	p.printf("  Usage:  %s GB\n", formatNumber(c.InstantRestore.GB))
	p.printf("  Cost:   %s\n", formatCurrency(c.InstantRestore.Cost))

	p.printf("\nData Transfer:\n")
	p.printf("  Usage:     %s GB (public %s GB, private %s GB)\n",
		formatNumber(c.DataTransfer.GB), formatNumber(c.DataTransfer.PublicGB), formatNumber(c.DataTransfer.PrivateGB))
	p.printf("  Included:  %s GB\n", formatNumber(c.DataTransfer.IncludedGB))
	p.printf("  Billable:  %s GB\n", formatNumber(c.DataTransfer.BillableGB))
	p.printf("  Cost:      %s\n", formatCurrency(c.DataTransfer.Cost))

	p.printf("\nExtra Branches:\n")
	p.printf("  Branch-hours: %s\n", formatNumber(c.ExtraBranches.BranchHours))
	p.printf("  Avg count:    %s\n", formatNumber(c.ExtraBranches.AvgBranches))
	p.printf("  Cost:         %s\n", formatCurrency(c.ExtraBranches.Cost))

	p.separator("-")
	p.printf("\nCURRENT TOTAL (Month-to-Date)\n")
	p.printf("  Subtotal:  %s\n", formatCurrency(c.Total.Subtotal))
	p.printf("  Minimum:   %s\n", formatCurrency(c.Total.Minimum))
	p.printf("  TOTAL:     %s\n", formatCurrency(c.Total.Final))
}

func (f *TextFormatter) renderForecast(p *printer, r *report.Report) {
	if r.Forecast == nil {
		return
	}
	fc := r.Forecast

	p.separator("-")
	p.printf("\nFORECAST (End of Month)\n")
	p.separator("-")

	p.printf("\nCompute:        %s (%s CU-hours)\n", formatCurrency(fc.Compute.Cost), formatNumber(fc.Compute.CUHours))
	p.printf("Storage:        %s (%s GB)\n", formatCurrency(fc.Storage.Cost), formatNumber(fc.Storage.GB))
	p.printf("Instant Restore:%s (%s GB)\n", formatCurrency(fc.InstantRestore.Cost), formatNumber(fc.InstantRestore.GB))
	p.printf("Data Transfer:  %s (%s GB)\n", formatCurrency(fc.DataTransfer.Cost), formatNumber(fc.DataTransfer.GB))
	p.printf("Extra Branches: %s\n", formatCurrency(fc.ExtraBranches.Cost))

	p.separator("-")
	p.printf("\nFORECAST TOTAL\n")
	p.printf("  Subtotal:  %s\n", formatCurrency(fc.Total.Subtotal))
	p.printf("  Minimum:   %s\n", formatCurrency(fc.Total.Minimum))
	p.printf("  TOTAL:     %s\n", formatCurrency(fc.Total.Final))
}

func (f *TextFormatter) renderPricing(p *printer, r *report.Report) {
	p.separator("=")
	p.printf("\nPricing based on Neon Launch plan\n")
	p.printf("  Compute: %s/CU-hour\n", formatCurrency(r.Pricing.ComputePerCUHour))
	p.printf("  Storage: %s/GB-month\n", formatCurrency(r.Pricing.StoragePerGBMonth))
	p.printf("  Transfer: %s GB free, then %s/GB\n",
		formatNumber(r.Pricing.DataTransferIncludedGB), formatCurrency(r.Pricing.DataTransferPerGB))
	p.printf("\n")
}

// printer accumulates the first write error so render code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) separator(char string) {
	p.printf("%s\n", strings.Repeat(char, separatorWidth))
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8] + "..."
}
