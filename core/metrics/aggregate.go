package metrics

// ProjectUsage pairs a project's identity with its normalized metrics.
type ProjectUsage struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Metrics ProjectMetrics `json:"metrics"`
}

// Aggregate sums per-project metrics into organization-wide totals. The
// per-project slice is left untouched. Callers must not pass the same
// project twice; no deduplication happens here.
func Aggregate(projects []ProjectUsage) Totals {
	totals := make(Totals, len(All))
	for _, n := range All {
		totals[n] = 0
	}
	for _, p := range projects {
		for _, n := range All {
			totals[n] += p.Metrics[n]
		}
	}
	return totals
}
