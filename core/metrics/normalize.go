package metrics

// Normalize flattens a project's raw consumption record into one value per
// metric. Only the first period is read. Timeframes are walked in the
// order the API returned them: Cumulative metrics sum across timeframes,
// PointInTime metrics keep the latest reading (last writer wins). Metrics
// absent from a timeframe keep their running value, and metric names
// outside the closed set are dropped.
func Normalize(rec ConsumptionRecord) ProjectMetrics {
	out := NewProjectMetrics()
	if len(rec.Periods) == 0 {
		return out
	}

	for _, tf := range rec.Periods[0].Consumption {
		for _, reading := range tf.Metrics {
			name := Name(reading.MetricName)
			policy, known := PolicyOf(name)
			if !known {
				continue
			}
			switch policy {
			case Cumulative:
				out[name] += reading.Value
			case PointInTime:
				out[name] = reading.Value
			}
		}
	}
	return out
}
