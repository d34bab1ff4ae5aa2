package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"neoncost/core/metrics"
	"neoncost/core/pricing"
)

const gb = float64(1 << 30)

func totalsWith(values map[metrics.Name]float64) metrics.Totals {
	t := make(metrics.Totals, len(metrics.All))
	for _, n := range metrics.All {
		t[n] = 0
	}
	for n, v := range values {
		t[n] = v
	}
	return t
}

func TestCalculateComputeOneCUHour(t *testing.T) {
	b := Calculate(totalsWith(map[metrics.Name]float64{
		metrics.ComputeTimeSeconds: 3600,
	}), 1, pricing.LaunchPlan())

	assert.InDelta(t, 1.0, b.Compute.CUHours, 1e-9)
	assert.InDelta(t, 0.106, b.Compute.Cost, 1e-9)
}

func TestCalculateStorageOneGB(t *testing.T) {
	b := Calculate(totalsWith(map[metrics.Name]float64{
		metrics.RootBranchStorageBytes:    gb / 2,
		metrics.ChildBranchesStorageBytes: gb / 2,
	}), 1, pricing.LaunchPlan())

	assert.InDelta(t, 1.0, b.Storage.GB, 1e-9)
	assert.InDelta(t, 0.5, b.Storage.RootGB, 1e-9)
	assert.InDelta(t, 0.5, b.Storage.ChildGB, 1e-9)
	assert.InDelta(t, 0.35, b.Storage.Cost, 1e-9)
}

func TestCalculateTransferAboveAllowance(t *testing.T) {
	b := Calculate(totalsWith(map[metrics.Name]float64{
		metrics.PublicNetworkTransferBytes:  100 * gb,
		metrics.PrivateNetworkTransferBytes: 50 * gb,
	}), 1, pricing.LaunchPlan())

	assert.InDelta(t, 150.0, b.DataTransfer.GB, 1e-9)
	assert.InDelta(t, 50.0, b.DataTransfer.BillableGB, 1e-9)
	assert.InDelta(t, 5.00, b.DataTransfer.Cost, 1e-9)
}

func TestCalculateTransferBelowAllowanceClampsToZero(t *testing.T) {
	b := Calculate(totalsWith(map[metrics.Name]float64{
		metrics.PublicNetworkTransferBytes: 10 * gb,
	}), 1, pricing.LaunchPlan())

	assert.Zero(t, b.DataTransfer.BillableGB)
	assert.Zero(t, b.DataTransfer.Cost)
}

func TestCalculateZeroUsageHitsMinimum(t *testing.T) {
	b := Calculate(totalsWith(nil), 1, pricing.LaunchPlan())

	assert.Zero(t, b.Total.Subtotal)
	assert.InDelta(t, 5.00, b.Total.Minimum, 1e-9)
	assert.InDelta(t, 5.00, b.Total.Final, 1e-9)
}

func TestCalculateExtraBranchesTimeAverage(t *testing.T) {
	b := Calculate(totalsWith(map[metrics.Name]float64{
		metrics.ExtraBranchesHours: 240,
	}), 10, pricing.LaunchPlan())

	assert.InDelta(t, 1.0, b.ExtraBranches.AvgBranches, 1e-9)
	assert.InDelta(t, 1.50, b.ExtraBranches.Cost, 1e-9)
}

func TestCalculateExtraBranchesZeroDays(t *testing.T) {
	b := Calculate(totalsWith(map[metrics.Name]float64{
		metrics.ExtraBranchesHours: 240,
	}), 0, pricing.LaunchPlan())

	assert.Zero(t, b.ExtraBranches.AvgBranches)
	assert.Zero(t, b.ExtraBranches.Cost)
}

func TestCalculateInstantRestore(t *testing.T) {
	b := Calculate(totalsWith(map[metrics.Name]float64{
		metrics.InstantRestoreBytes: 2 * gb,
	}), 1, pricing.LaunchPlan())

	assert.InDelta(t, 2.0, b.InstantRestore.GB, 1e-9)
	assert.InDelta(t, 0.40, b.InstantRestore.Cost, 1e-9)
}

// Increasing any single metric while holding the rest fixed must never
// decrease its category's cost.
func TestCalculateCostMonotonicity(t *testing.T) {
	sched := pricing.LaunchPlan()
	base := totalsWith(map[metrics.Name]float64{
		metrics.ComputeTimeSeconds:          7200,
		metrics.RootBranchStorageBytes:      3 * gb,
		metrics.ChildBranchesStorageBytes:   gb,
		metrics.InstantRestoreBytes:         gb,
		metrics.PublicNetworkTransferBytes:  120 * gb,
		metrics.PrivateNetworkTransferBytes: 10 * gb,
		metrics.ExtraBranchesHours:          48,
	})
	before := Calculate(base, 5, sched)

	categoryCosts := func(b Breakdown) []float64 {
		return []float64{
			b.Compute.Cost, b.Storage.Cost, b.InstantRestore.Cost,
			b.DataTransfer.Cost, b.ExtraBranches.Cost,
		}
	}

	for _, n := range metrics.All {
		bumped := totalsWith(nil)
		for k, v := range base {
			bumped[k] = v
		}
		bumped[n] *= 2
		after := Calculate(bumped, 5, sched)

		bc, ac := categoryCosts(before), categoryCosts(after)
		for i := range bc {
			assert.GreaterOrEqual(t, ac[i]+1e-12, bc[i], "metric %s, category %d", n, i)
		}
		assert.GreaterOrEqual(t, after.Total.Final+1e-12, before.Total.Final)
	}
}

func TestCalculateMinimumFloorAlwaysHolds(t *testing.T) {
	sched := pricing.LaunchPlan()
	cases := []map[metrics.Name]float64{
		nil,
		{metrics.ComputeTimeSeconds: 3600},
		{metrics.PublicNetworkTransferBytes: 500 * gb},
		{metrics.RootBranchStorageBytes: 100 * gb},
	}
	for _, values := range cases {
		b := Calculate(totalsWith(values), 15, sched)
		assert.GreaterOrEqual(t, b.Total.Final, sched.MinimumMonthly)
	}
}
