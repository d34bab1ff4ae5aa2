// Package cost turns aggregated usage totals into an itemized monetary
// breakdown under a pricing schedule.
package cost

import (
	"neoncost/core/metrics"
	"neoncost/core/pricing"
)

const (
	secondsPerHour = 3600
	bytesPerGB     = 1 << 30
	hoursPerDay    = 24
)

// ComputeItem is the compute line of a breakdown.
type ComputeItem struct {
	CUHours float64 `json:"cu_hours"`
	Cost    float64 `json:"cost"`
}

// StorageItem is the branch-storage line, with the root/child split kept
// for detailed reporting.
type StorageItem struct {
	GB      float64 `json:"gb"`
	RootGB  float64 `json:"root_gb"`
	ChildGB float64 `json:"child_gb"`
	Cost    float64 `json:"cost"`
}

// InstantRestoreItem is the instant-restore history line.
type InstantRestoreItem struct {
	GB   float64 `json:"gb"`
	Cost float64 `json:"cost"`
}

// DataTransferItem is the egress line. BillableGB is clamped at zero when
// usage sits below the included allowance.
type DataTransferItem struct {
	GB         float64 `json:"gb"`
	PublicGB   float64 `json:"public_gb"`
	PrivateGB  float64 `json:"private_gb"`
	IncludedGB float64 `json:"included_gb"`
	BillableGB float64 `json:"billable_gb"`
	Cost       float64 `json:"cost"`
}

// ExtraBranchesItem is the extra-branches line. AvgBranches is a
// time-averaged branch count derived from branch-hours: a branch active
// for half the elapsed period contributes 0.5.
type ExtraBranchesItem struct {
	BranchHours float64 `json:"branch_hours"`
	AvgBranches float64 `json:"avg_branches"`
	Cost        float64 `json:"cost"`
}

// TotalItem is the summary line: Final is the subtotal floored at the
// plan's minimum monthly spend.
type TotalItem struct {
	Subtotal float64 `json:"subtotal"`
	Minimum  float64 `json:"minimum"`
	Final    float64 `json:"final"`
}

// Breakdown is an itemized cost report. The forecast projector produces
// the same shape, so both month-to-date and end-of-month views share it.
type Breakdown struct {
	Compute        ComputeItem        `json:"compute"`
	Storage        StorageItem        `json:"storage"`
	InstantRestore InstantRestoreItem `json:"instant_restore"`
	DataTransfer   DataTransferItem   `json:"data_transfer"`
	ExtraBranches  ExtraBranchesItem  `json:"extra_branches"`
	Total          TotalItem          `json:"total"`
}

// BytesToGB converts a byte quantity to gigabytes.
func BytesToGB(b float64) float64 {
	return b / bytesPerGB
}

// Calculate prices aggregated usage totals under sched. daysElapsed is the
// number of days elapsed in the billing period and only feeds the
// branch-hours average; zero days yields a zero branch count. Subtotal
// summation follows the fixed category order compute, storage, instant
// restore, data transfer, extra branches.
func Calculate(totals metrics.Totals, daysElapsed int, sched pricing.Schedule) Breakdown {
	var b Breakdown

	cuHours := totals[metrics.ComputeTimeSeconds] / secondsPerHour
	b.Compute = ComputeItem{
		CUHours: cuHours,
		Cost:    cuHours * sched.ComputePerCUHour,
	}

	rootGB := BytesToGB(totals[metrics.RootBranchStorageBytes])
	childGB := BytesToGB(totals[metrics.ChildBranchesStorageBytes])
	storageGB := BytesToGB(totals[metrics.RootBranchStorageBytes] + totals[metrics.ChildBranchesStorageBytes])
	b.Storage = StorageItem{
		GB:      storageGB,
		RootGB:  rootGB,
		ChildGB: childGB,
		Cost:    storageGB * sched.StoragePerGBMonth,
	}

	restoreGB := BytesToGB(totals[metrics.InstantRestoreBytes])
	b.InstantRestore = InstantRestoreItem{
		GB:   restoreGB,
		Cost: restoreGB * sched.InstantRestorePerGBMonth,
	}

	b.DataTransfer = PriceTransfer(
		BytesToGB(totals[metrics.PublicNetworkTransferBytes]+totals[metrics.PrivateNetworkTransferBytes]),
		BytesToGB(totals[metrics.PublicNetworkTransferBytes]),
		BytesToGB(totals[metrics.PrivateNetworkTransferBytes]),
		sched,
	)

	branchHours := totals[metrics.ExtraBranchesHours]
	avgBranches := 0.0
	if daysElapsed > 0 {
		avgBranches = branchHours / (hoursPerDay * float64(daysElapsed))
	}
	b.ExtraBranches = ExtraBranchesItem{
		BranchHours: branchHours,
		AvgBranches: avgBranches,
		Cost:        avgBranches * sched.ExtraBranchPerMonth,
	}

	b.Total = Finalize(&b, sched)
	return b
}

// PriceTransfer prices an egress quantity against the included allowance.
// The forecast projector reuses it to re-clamp projected totals.
func PriceTransfer(gb, publicGB, privateGB float64, sched pricing.Schedule) DataTransferItem {
	billable := gb - sched.DataTransferIncludedGB
	if billable < 0 {
		billable = 0
	}
	return DataTransferItem{
		GB:         gb,
		PublicGB:   publicGB,
		PrivateGB:  privateGB,
		IncludedGB: sched.DataTransferIncludedGB,
		BillableGB: billable,
		Cost:       billable * sched.DataTransferPerGB,
	}
}

// Finalize sums the category costs in fixed order and applies the
// minimum-spend floor.
func Finalize(b *Breakdown, sched pricing.Schedule) TotalItem {
	subtotal := b.Compute.Cost + b.Storage.Cost + b.InstantRestore.Cost + b.DataTransfer.Cost + b.ExtraBranches.Cost
	final := subtotal
	if final < sched.MinimumMonthly {
		final = sched.MinimumMonthly
	}
	return TotalItem{
		Subtotal: subtotal,
		Minimum:  sched.MinimumMonthly,
		Final:    final,
	}
}
