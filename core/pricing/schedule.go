// Package pricing holds the flat Launch-plan pricing schedule applied to
// aggregated usage. The schedule is an immutable value injected into the
// cost and forecast calculators; it is safe for concurrent reads.
package pricing

import (
	"fmt"
)

// Schedule is a flat pricing schedule. All rates are USD.
type Schedule struct {
	// ComputePerCUHour is the rate per CU-hour of compute.
	ComputePerCUHour float64 `json:"compute_per_cu_hour" yaml:"compute_per_cu_hour"`

	// StoragePerGBMonth is the rate per GB-month of branch storage.
	StoragePerGBMonth float64 `json:"storage_per_gb_month" yaml:"storage_per_gb_month"`

	// DataTransferIncludedGB is the egress allowance included in the plan.
	DataTransferIncludedGB float64 `json:"data_transfer_included_gb" yaml:"data_transfer_included_gb"`

	// DataTransferPerGB is the rate per GB of egress beyond the allowance.
	DataTransferPerGB float64 `json:"data_transfer_per_gb" yaml:"data_transfer_per_gb"`

	// InstantRestorePerGBMonth is the rate per GB-month of restore history.
	InstantRestorePerGBMonth float64 `json:"instant_restore_per_gb_month" yaml:"instant_restore_per_gb_month"`

	// ExtraBranchPerMonth is the rate per extra branch per month.
	ExtraBranchPerMonth float64 `json:"extra_branch_per_month" yaml:"extra_branch_per_month"`

	// MinimumMonthly is the minimum monthly spend.
	MinimumMonthly float64 `json:"minimum_monthly" yaml:"minimum_monthly"`
}

// LaunchPlan returns the Launch plan schedule (2026 list prices).
func LaunchPlan() Schedule {
	return Schedule{
		ComputePerCUHour:         0.106,
		StoragePerGBMonth:        0.35,
		DataTransferIncludedGB:   100,
		DataTransferPerGB:        0.10,
		InstantRestorePerGBMonth: 0.20,
		ExtraBranchPerMonth:      1.50,
		MinimumMonthly:           5.00,
	}
}

// Validate rejects schedules with negative rates or allowances.
func (s Schedule) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"compute_per_cu_hour", s.ComputePerCUHour},
		{"storage_per_gb_month", s.StoragePerGBMonth},
		{"data_transfer_included_gb", s.DataTransferIncludedGB},
		{"data_transfer_per_gb", s.DataTransferPerGB},
		{"instant_restore_per_gb_month", s.InstantRestorePerGBMonth},
		{"extra_branch_per_month", s.ExtraBranchPerMonth},
		{"minimum_monthly", s.MinimumMonthly},
	}
	for _, c := range checks {
		if c.value < 0 {
			return fmt.Errorf("pricing: %s must not be negative, got %v", c.name, c.value)
		}
	}
	return nil
}
