// Package forecast extrapolates month-to-date costs into an end-of-month
// estimate. It is a single-point linear extrapolation that assumes a
// uniform usage rate over the elapsed days; bursty workloads will
// mis-forecast and callers should present the result as an estimate.
package forecast

import (
	"errors"
	"fmt"

	"neoncost/core/cost"
	"neoncost/core/pricing"
)

// ErrNoForecast is returned when no days of the billing period have
// elapsed yet, so no run rate exists. Presenters render this as an absent
// forecast section rather than zeros.
var ErrNoForecast = errors.New("forecast: no elapsed days in billing period")

// Project extrapolates a month-to-date breakdown to the full month.
// Cumulative categories (compute, data transfer) scale by the inverse of
// the elapsed-fraction ratio; point-in-time categories (storage, instant
// restore) and the already-averaged extra-branch rate are held constant.
// The transfer allowance is re-applied to the projected total, not carried
// over from the scaled billable amount.
func Project(current cost.Breakdown, daysElapsed, daysInMonth int, sched pricing.Schedule) (cost.Breakdown, error) {
	if daysInMonth <= 0 {
		return cost.Breakdown{}, fmt.Errorf("forecast: days_in_month must be positive, got %d", daysInMonth)
	}
	if daysElapsed == 0 {
		return cost.Breakdown{}, ErrNoForecast
	}

	ratio := float64(daysElapsed) / float64(daysInMonth)

	f := cost.Breakdown{
		Compute: cost.ComputeItem{
			CUHours: current.Compute.CUHours / ratio,
			Cost:    current.Compute.Cost / ratio,
		},
		Storage:        current.Storage,
		InstantRestore: current.InstantRestore,
		DataTransfer: cost.PriceTransfer(
			current.DataTransfer.GB/ratio,
			current.DataTransfer.PublicGB/ratio,
			current.DataTransfer.PrivateGB/ratio,
			sched,
		),
		ExtraBranches: current.ExtraBranches,
	}
	f.Total = cost.Finalize(&f, sched)
	return f, nil
}
