// Package report assembles a complete usage and cost report for one
// organization: per-project normalized metrics, organization totals, the
// month-to-date cost breakdown, and the end-of-month forecast.
package report

import (
	"context"
	"errors"
	"time"

	"github.com/samber/lo"

	"neoncost/core/cost"
	"neoncost/core/forecast"
	"neoncost/core/metrics"
	"neoncost/core/pricing"
)

// Fetcher supplies project listings and raw consumption records. The Neon
// API client implements it; tests substitute fakes.
type Fetcher interface {
	ListProjects(ctx context.Context, orgID string) ([]metrics.Project, error)
	ConsumptionHistory(ctx context.Context, orgID string, from, to time.Time) ([]metrics.ConsumptionRecord, error)
}

// BillingPeriod describes how far into the current month the report is.
type BillingPeriod struct {
	Month           string  `json:"month"`
	Day             int     `json:"day"`
	DaysInMonth     int     `json:"days_in_month"`
	ProgressPercent float64 `json:"progress_percent"`
}

// ProjectUsage is one project's normalized usage plus its standalone cost
// estimate (compute, storage, and transfer priced as if the project were
// alone; the transfer allowance is applied once org-wide in the totals, so
// per-project costs are indicative only).
type ProjectUsage struct {
	metrics.ProjectUsage
	Cost float64 `json:"cost"`
}

// Report is the complete output handed to the presenters.
type Report struct {
	GeneratedAt   time.Time        `json:"report_date"`
	BillingPeriod BillingPeriod    `json:"billing_period"`
	Projects      []ProjectUsage   `json:"projects"`
	Totals        metrics.Totals   `json:"totals"`
	Costs         cost.Breakdown   `json:"costs"`
	Forecast      *cost.Breakdown  `json:"forecast"`
	Pricing       pricing.Schedule `json:"pricing"`
}

// Generate fetches current-period usage through f and computes the full
// report as of now. A nil Forecast means no days of the period have
// elapsed yet.
func Generate(ctx context.Context, f Fetcher, orgID string, sched pricing.Schedule, now time.Time) (*Report, error) {
	projects, err := f.ListProjects(ctx, orgID)
	if err != nil {
		return nil, err
	}

	from := monthStart(now)
	records, err := f.ConsumptionHistory(ctx, orgID, from, now)
	if err != nil {
		return nil, err
	}

	return Build(projects, records, sched, now)
}

// Build computes a report from already-fetched data. It is pure: identical
// inputs yield identical reports.
func Build(projects []metrics.Project, records []metrics.ConsumptionRecord, sched pricing.Schedule, now time.Time) (*Report, error) {
	now = now.UTC()
	day := now.Day()
	daysInMonth := daysIn(now)

	names := lo.SliceToMap(projects, func(p metrics.Project) (string, string) {
		return p.ID, p.Name
	})

	perProject := lo.Map(records, func(rec metrics.ConsumptionRecord, _ int) metrics.ProjectUsage {
		name, ok := names[rec.ProjectID]
		if !ok || name == "" {
			name = rec.ProjectID
		}
		return metrics.ProjectUsage{
			ID:      rec.ProjectID,
			Name:    name,
			Metrics: metrics.Normalize(rec),
		}
	})

	// Projects without a consumption record still show up, at zero usage.
	seen := lo.SliceToMap(records, func(rec metrics.ConsumptionRecord) (string, struct{}) {
		return rec.ProjectID, struct{}{}
	})
	for _, p := range projects {
		if _, ok := seen[p.ID]; !ok {
			perProject = append(perProject, metrics.ProjectUsage{
				ID:      p.ID,
				Name:    p.Name,
				Metrics: metrics.NewProjectMetrics(),
			})
		}
	}

	totals := metrics.Aggregate(perProject)
	costs := cost.Calculate(totals, day, sched)

	var fc *cost.Breakdown
	projected, err := forecast.Project(costs, day, daysInMonth, sched)
	switch {
	case err == nil:
		fc = &projected
	case errors.Is(err, forecast.ErrNoForecast):
		fc = nil
	default:
		return nil, err
	}

	return &Report{
		GeneratedAt: now,
		BillingPeriod: BillingPeriod{
			Month:           now.Format("January 2006"),
			Day:             day,
			DaysInMonth:     daysInMonth,
			ProgressPercent: float64(day) / float64(daysInMonth) * 100,
		},
		Projects: lo.Map(perProject, func(p metrics.ProjectUsage, _ int) ProjectUsage {
			return ProjectUsage{ProjectUsage: p, Cost: projectCost(p.Metrics, sched)}
		}),
		Totals:   totals,
		Costs:    costs,
		Forecast: fc,
		Pricing:  sched,
	}, nil
}

// projectCost prices a single project's compute, storage, and transfer in
// isolation for the per-project listing.
func projectCost(m metrics.ProjectMetrics, sched pricing.Schedule) float64 {
	cuHours := m[metrics.ComputeTimeSeconds] / 3600
	storageGB := cost.BytesToGB(m[metrics.RootBranchStorageBytes] + m[metrics.ChildBranchesStorageBytes])
	transferGB := cost.BytesToGB(m[metrics.PublicNetworkTransferBytes] + m[metrics.PrivateNetworkTransferBytes])
	billable := transferGB - sched.DataTransferIncludedGB
	if billable < 0 {
		billable = 0
	}
	return cuHours*sched.ComputePerCUHour + storageGB*sched.StoragePerGBMonth + billable*sched.DataTransferPerGB
}

func monthStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func daysIn(now time.Time) int {
	now = now.UTC()
	return time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
