// Package metrics defines the closed set of billable consumption metrics
// and the pure normalization/aggregation logic that turns raw Neon API
// consumption payloads into per-project and organization-wide totals.
package metrics

// Name identifies a billable quantity reported by the consumption API.
type Name string

const (
	// ComputeTimeSeconds is CU-seconds of compute consumed.
	ComputeTimeSeconds Name = "compute_time_seconds"

	// RootBranchStorageBytes is the storage size of root branches.
	RootBranchStorageBytes Name = "root_branch_storage_bytes"

	// ChildBranchesStorageBytes is the storage size of child branches.
	ChildBranchesStorageBytes Name = "child_branches_storage_bytes"

	// InstantRestoreBytes is the instant-restore (PITR history) size.
	InstantRestoreBytes Name = "instant_restore_bytes"

	// PublicNetworkTransferBytes is egress over the public network.
	PublicNetworkTransferBytes Name = "public_network_transfer_bytes"

	// PrivateNetworkTransferBytes is egress over private links.
	PrivateNetworkTransferBytes Name = "private_network_transfer_bytes"

	// ExtraBranchesHours is accumulated branch-hours beyond the included
	// branch allowance.
	ExtraBranchesHours Name = "extra_branches_hours"
)

// Policy controls how readings of a metric combine across timeframes.
type Policy int

const (
	// Cumulative metrics accrue continuously and are summed across every
	// timeframe in the queried window.
	Cumulative Policy = iota

	// PointInTime metrics are gauges; the most recent timeframe's reading
	// supersedes earlier ones.
	PointInTime
)

// All lists every recognized metric in a fixed order.
var All = []Name{
	ComputeTimeSeconds,
	RootBranchStorageBytes,
	ChildBranchesStorageBytes,
	InstantRestoreBytes,
	PublicNetworkTransferBytes,
	PrivateNetworkTransferBytes,
	ExtraBranchesHours,
}

var policies = map[Name]Policy{
	ComputeTimeSeconds:          Cumulative,
	RootBranchStorageBytes:      PointInTime,
	ChildBranchesStorageBytes:   PointInTime,
	InstantRestoreBytes:         PointInTime,
	PublicNetworkTransferBytes:  Cumulative,
	PrivateNetworkTransferBytes: Cumulative,
	ExtraBranchesHours:          Cumulative,
}

// PolicyOf returns the combination policy for a metric. The second return
// is false for names outside the closed set.
func PolicyOf(n Name) (Policy, bool) {
	p, ok := policies[n]
	return p, ok
}

// ProjectMetrics maps every metric in the closed set to its aggregated
// value for a single project. Every Name in All is always present.
type ProjectMetrics map[Name]float64

// Totals is ProjectMetrics summed across all projects of an organization.
type Totals map[Name]float64

// NewProjectMetrics returns a ProjectMetrics with every known metric
// initialized to zero.
func NewProjectMetrics() ProjectMetrics {
	m := make(ProjectMetrics, len(All))
	for _, n := range All {
		m[n] = 0
	}
	return m
}
