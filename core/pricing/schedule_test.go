package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchPlanDefaults(t *testing.T) {
	s := LaunchPlan()

	assert.InDelta(t, 0.106, s.ComputePerCUHour, 1e-9)
	assert.InDelta(t, 0.35, s.StoragePerGBMonth, 1e-9)
	assert.InDelta(t, 100.0, s.DataTransferIncludedGB, 1e-9)
	assert.InDelta(t, 0.10, s.DataTransferPerGB, 1e-9)
	assert.InDelta(t, 0.20, s.InstantRestorePerGBMonth, 1e-9)
	assert.InDelta(t, 1.50, s.ExtraBranchPerMonth, 1e-9)
	assert.InDelta(t, 5.00, s.MinimumMonthly, 1e-9)
}

func TestValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, LaunchPlan().Validate())
}

func TestValidateAcceptsZeroRates(t *testing.T) {
	require.NoError(t, Schedule{}.Validate())
}

func TestValidateRejectsNegativeRate(t *testing.T) {
	s := LaunchPlan()
	s.DataTransferPerGB = -0.10

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_transfer_per_gb")
}
