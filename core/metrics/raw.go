package metrics

// Raw consumption payload shapes as returned by
// GET /consumption_history/projects. Decoding is permissive: every field
// may be absent and defaults to its zero value, so a partial API response
// degrades to zero usage instead of failing the whole report.

// ConsumptionRecord is one project's raw consumption history.
type ConsumptionRecord struct {
	ProjectID string   `json:"project_id"`
	Periods   []Period `json:"periods"`
}

// Period is one billing period. Only the first (current) period of a
// record is consumed.
type Period struct {
	PeriodID    string      `json:"period_id,omitempty"`
	Consumption []Timeframe `json:"consumption"`
}

// Timeframe is one time bucket inside a period, in chronological order.
type Timeframe struct {
	TimeframeStart string          `json:"timeframe_start,omitempty"`
	TimeframeEnd   string          `json:"timeframe_end,omitempty"`
	Metrics        []MetricReading `json:"metrics"`
}

// MetricReading is a single (metric, value) sample within a timeframe.
type MetricReading struct {
	MetricName string  `json:"metric_name"`
	Value      float64 `json:"value"`
}

// Project is the identifier/display-name pair from the projects listing.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
